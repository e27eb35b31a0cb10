package gfx

// UnitAllocator hands out texture units up to the driver-reported maximum.
// Units released by destroyed texture arrays return to a free list and are
// reused lowest-first, so unit numbers stay deterministic across
// create/destroy churn. Not safe for concurrent use.
type UnitAllocator struct {
	max  int
	next int
	free []int
}

func NewUnitAllocator(max int) *UnitAllocator {
	return &UnitAllocator{max: max}
}

// Acquire returns the lowest available unit, or ErrTextureUnitsExhausted
// once all max units are live.
func (a *UnitAllocator) Acquire() (int, error) {
	if n := len(a.free); n > 0 {
		best := 0
		for i := 1; i < n; i++ {
			if a.free[i] < a.free[best] {
				best = i
			}
		}
		unit := a.free[best]
		a.free = append(a.free[:best], a.free[best+1:]...)
		return unit, nil
	}
	if a.next >= a.max {
		return 0, ErrTextureUnitsExhausted
	}
	unit := a.next
	a.next++
	return unit, nil
}

// Release returns a unit to the free list. Units that were never acquired,
// or are already free, are ignored.
func (a *UnitAllocator) Release(unit int) {
	if unit < 0 || unit >= a.next {
		return
	}
	for _, f := range a.free {
		if f == unit {
			return
		}
	}
	a.free = append(a.free, unit)
}

// InUse reports how many units are currently acquired.
func (a *UnitAllocator) InUse() int { return a.next - len(a.free) }

// Cap reports the maximum number of units this allocator will hand out.
func (a *UnitAllocator) Cap() int { return a.max }
