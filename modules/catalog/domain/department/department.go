package department

// Position is a job role owned by exactly one department. Positions are the
// unit the access matrix grants systems to.
type Position struct {
	id   int
	name string
}

func NewPosition(id int, name string) Position {
	return Position{id: id, name: name}
}

func (p Position) ID() int {
	return p.id
}

func (p Position) Name() string {
	return p.name
}

type Department struct {
	id        int
	name      string
	positions []Position
}

type Option func(*Department)

func WithPositions(positions []Position) Option {
	return func(d *Department) {
		d.positions = positions
	}
}

func New(id int, name string, opts ...Option) *Department {
	d := &Department{
		id:   id,
		name: name,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Department) ID() int {
	return d.id
}

func (d *Department) Name() string {
	return d.name
}

func (d *Department) Positions() []Position {
	out := make([]Position, len(d.positions))
	copy(out, d.positions)
	return out
}
