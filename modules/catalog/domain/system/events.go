package system

type CreatedEvent struct {
	Result *System
}

type UpdatedEvent struct {
	Result *System
}

// DeletedEvent carries the removed system so subscribers can refresh both
// the catalog views and the matrix checkboxes in one pass.
type DeletedEvent struct {
	Result *System
}
