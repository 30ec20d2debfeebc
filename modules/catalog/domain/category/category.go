package category

// UncategorizedID is the implicit pseudo-category for systems that carry no
// category reference. It never appears in the stored category list.
const UncategorizedID = 0

type Category struct {
	id   int
	name string
}

func New(id int, name string) *Category {
	return &Category{id: id, name: name}
}

func (c *Category) ID() int {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}
