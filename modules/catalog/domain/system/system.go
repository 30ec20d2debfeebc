package system

// System is an IT resource that can be granted to a position. CategoryID
// references a catalog category, or category.UncategorizedID.
type System struct {
	id         int
	name       string
	categoryID int
}

func New(id int, name string, categoryID int) *System {
	return &System{id: id, name: name, categoryID: categoryID}
}

func (s *System) ID() int {
	return s.id
}

func (s *System) Name() string {
	return s.name
}

func (s *System) CategoryID() int {
	return s.categoryID
}
