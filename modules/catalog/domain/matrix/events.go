package matrix

// ChangedEvent is published after a single assignment toggle reached disk.
type ChangedEvent struct {
	PositionID int
	SystemID   int
	Enabled    bool
}
