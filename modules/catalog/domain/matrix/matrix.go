package matrix

import "sort"

// Assignments is the position-to-system relation. Every value is kept
// normalized: strictly increasing, no duplicates, and no empty entries —
// a position with nothing assigned has no key at all.
type Assignments map[int][]int

// Normalize sorts and deduplicates a system id list.
func Normalize(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// SystemsFor returns a copy of the assigned ids for a position. Unknown
// positions yield an empty list, not an error.
func (a Assignments) SystemsFor(positionID int) []int {
	ids := a[positionID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (a Assignments) Contains(positionID, systemID int) bool {
	for _, id := range a[positionID] {
		if id == systemID {
			return true
		}
	}
	return false
}

// Set adds or removes a single assignment, renormalizing the entry. The
// operation is idempotent; an entry that becomes empty is deleted.
func (a Assignments) Set(positionID, systemID int, enabled bool) {
	current := a[positionID]
	next := make([]int, 0, len(current)+1)
	for _, id := range current {
		if id == systemID {
			continue
		}
		next = append(next, id)
	}
	if enabled {
		next = append(next, systemID)
	}
	next = Normalize(next)
	if len(next) == 0 {
		delete(a, positionID)
		return
	}
	a[positionID] = next
}

// RemoveSystem drops a system id from every position entry, pruning
// entries that become empty. Used by the system-deletion cascade.
func (a Assignments) RemoveSystem(systemID int) {
	for positionID := range a {
		a.Set(positionID, systemID, false)
	}
}

// Prune removes ids that no longer pass the keep predicate. Dangling ids
// from an interrupted cascade are cleaned up here on the next write.
func (a Assignments) Prune(keep func(systemID int) bool) {
	for positionID, ids := range a {
		next := make([]int, 0, len(ids))
		for _, id := range ids {
			if keep(id) {
				next = append(next, id)
			}
		}
		if len(next) == 0 {
			delete(a, positionID)
			continue
		}
		a[positionID] = Normalize(next)
	}
}

func (a Assignments) Clone() Assignments {
	out := make(Assignments, len(a))
	for positionID, ids := range a {
		copied := make([]int, len(ids))
		copy(copied, ids)
		out[positionID] = copied
	}
	return out
}
