package date

import "iter"

// Range represents a closed range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
//
// It panics if from is after to: a range is always derived from observed
// min/max dates, so an inverted range is a programming error.
func NewRange(from, to Date) Range {
	if from.After(to) {
		panic("inverted date range " + from.String() + " > " + to.String())
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int { return r.To.Sub(r.From) + 1 }

// All returns an iterator over every day in the range in ascending order.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}

// Extend grows the range to include the given date.
//
// The zero Range is special-cased: extending it yields the single-day range
// [on, on], so a range can be folded from a stream of observed dates.
func (r Range) Extend(on Date) Range {
	if r == (Range{}) {
		return Range{From: on, To: on}
	}
	if on.Before(r.From) {
		r.From = on
	}
	if on.After(r.To) {
		r.To = on
	}
	return r
}

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
