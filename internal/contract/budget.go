package contract

import "sync/atomic"

// Budget is a hard ceiling on the number of remote calls issued in one audit
// run. Check-and-increment is atomic so parallel workers cannot overrun the
// ceiling. A nil Budget never limits.
type Budget struct {
	used atomic.Int64
	max  int64
}

// NewBudget returns a Budget with the given ceiling. A ceiling <= 0 means
// unlimited.
func NewBudget(maxCalls int) *Budget {
	return &Budget{max: int64(maxCalls)}
}

// Spend reserves one call against the budget. It returns false once the
// ceiling is reached; the caller must not issue the remote call.
func (b *Budget) Spend() bool {
	if b == nil {
		return true
	}
	for {
		cur := b.used.Load()
		if b.max > 0 && cur >= b.max {
			return false
		}
		if b.used.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Used returns the number of calls issued so far.
func (b *Budget) Used() int {
	if b == nil {
		return 0
	}
	return int(b.used.Load())
}

// Max returns the ceiling, 0 meaning unlimited.
func (b *Budget) Max() int {
	if b == nil {
		return 0
	}
	return int(b.max)
}

// Exhausted reports whether the ceiling has been reached.
func (b *Budget) Exhausted() bool {
	if b == nil {
		return false
	}
	return b.max > 0 && b.used.Load() >= b.max
}
