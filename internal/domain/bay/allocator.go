package bay

// Allocator decides bay availability from the set of bays referenced by
// active truck visits. It keeps no state of its own: occupancy is always
// recomputed from the caller-supplied snapshot, so there is no second
// source of truth to drift. The write-side exclusivity guarantee lives in
// the visit repository's conditional insert; Allocator gives callers the
// same answer ahead of the write.
type Allocator struct {
	yard []Code
}

func NewAllocator(yard []Code) *Allocator {
	return &Allocator{yard: yard}
}

func (a *Allocator) Yard() []Code {
	out := make([]Code, len(a.yard))
	copy(out, a.yard)
	return out
}

// ListAvailable returns the yard minus the bays held by active visits.
func (a *Allocator) ListAvailable(occupied []Code) []Code {
	taken := make(map[string]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c.String()] = struct{}{}
	}

	free := make([]Code, 0, len(a.yard))
	for _, c := range a.yard {
		if _, ok := taken[c.String()]; !ok {
			free = append(free, c)
		}
	}
	return free
}

// CheckAssign validates that code belongs to the yard and is not held by
// any active visit.
func (a *Allocator) CheckAssign(code Code, occupied []Code) error {
	known := false
	for _, c := range a.yard {
		if c.Equals(code) {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknown
	}

	for _, c := range occupied {
		if c.Equals(code) {
			return ErrOccupied
		}
	}
	return nil
}
