package persistence

import (
	"context"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/matrix"
)

// MatrixRepository persists the position-to-system relation in its own
// file, independent of the catalog document.
type MatrixRepository struct {
	store *Store
}

func NewMatrixRepository(store *Store) *MatrixRepository {
	return &MatrixRepository{store: store}
}

func (r *MatrixRepository) Get(ctx context.Context) (matrix.Assignments, error) {
	return r.store.Matrix().Clone(), nil
}

func (r *MatrixRepository) SystemsForPosition(ctx context.Context, positionID int) ([]int, error) {
	return r.store.Matrix().SystemsFor(positionID), nil
}

// Set records or clears one assignment and re-saves the normalized file,
// even when the toggle was a no-op, so opportunistic pruning of dangling
// ids always reaches disk.
func (r *MatrixRepository) Set(ctx context.Context, positionID, systemID int, enabled bool) error {
	m := r.store.Matrix()
	previous := m.Clone()
	m.Set(positionID, systemID, enabled)
	if err := r.store.SaveMatrix(); err != nil {
		r.restore(previous)
		return err
	}
	return nil
}

// RemoveSystem is the cascade hook for system deletion: the id is dropped
// from every position entry and empty entries are pruned.
func (r *MatrixRepository) RemoveSystem(ctx context.Context, systemID int) error {
	m := r.store.Matrix()
	previous := m.Clone()
	m.RemoveSystem(systemID)
	if err := r.store.SaveMatrix(); err != nil {
		r.restore(previous)
		return err
	}
	return nil
}

// Prune drops ids rejected by keep, typically orphans left by a crash
// between the catalog and matrix writes of a cascade.
func (r *MatrixRepository) Prune(ctx context.Context, keep func(systemID int) bool) error {
	m := r.store.Matrix()
	previous := m.Clone()
	m.Prune(keep)
	if err := r.store.SaveMatrix(); err != nil {
		r.restore(previous)
		return err
	}
	return nil
}

func (r *MatrixRepository) restore(previous matrix.Assignments) {
	m := r.store.Matrix()
	for k := range m {
		delete(m, k)
	}
	for k, v := range previous {
		m[k] = v
	}
}
