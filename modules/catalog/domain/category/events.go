package category

type CreatedEvent struct {
	Result *Category
}

type UpdatedEvent struct {
	Result *Category
}

type DeletedEvent struct {
	Result *Category
}
