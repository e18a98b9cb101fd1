package wager

import (
	"fmt"
	"iter"

	"github.com/etnz/wager/date"
)

// RateSeries holds one currency's daily USD price over a declared date range.
//
// After construction the series is total over its range: every day in
// [From, To] has a price. Construction fills the holes of the raw provider
// series with a deterministic policy (see NewRateSeries).
type RateSeries struct {
	currency string
	span     date.Range
	rates    date.History[float64]
}

// NewRateSeries gap-fills the raw sparse series over the given range.
//
// Days are visited in ascending order, carrying the last known price:
//   - a day with a raw price records it and becomes the last known price;
//   - a day without one takes the last known price (the asset still has the
//     last traded value);
//   - leading days before the first raw price take the earliest raw price
//     strictly after them, so transactions older than the first observed
//     price point are not valued at zero.
//
// If the raw series holds no price at all, there is no valid price to
// assign and NewRateSeries fails with ErrNoRateData.
func NewRateSeries(currency string, raw *date.History[float64], span date.Range) (*RateSeries, error) {
	s := &RateSeries{currency: currency, span: span}
	var last float64
	known := false
	for on := range span.All() {
		switch price, ok := raw.Get(on); {
		case ok:
			last, known = price, true
			s.rates.Append(on, price)
		case known:
			s.rates.Append(on, last)
		default:
			// Leading gap: no past price yet, take the earliest future one.
			if _, price, ok := raw.Next(on); ok {
				s.rates.Append(on, price)
			} else {
				return nil, fmt.Errorf("%w for %s on %s", ErrNoRateData, currency, on)
			}
		}
	}
	return s, nil
}

// Currency returns the lowercase currency symbol of the series.
func (s *RateSeries) Currency() string { return s.currency }

// Span returns the declared range of the series.
func (s *RateSeries) Span() date.Range { return s.span }

// Values returns an iterator over all day/price pairs in chronological order.
func (s *RateSeries) Values() iter.Seq2[date.Date, float64] {
	return s.rates.Values()
}

// Closest returns the best available price for the target day.
//
// An exact match wins. Otherwise the nearest earlier and nearest later
// entries compete on absolute day distance, the earlier one winning exact
// ties. If only one side has data it is used. An empty series yields
// ErrNoRateAvailable.
//
// The series is total over its range in normal operation, so this is the
// fallback for days outside the range; its determinism is a contract.
func (s *RateSeries) Closest(on date.Date) (float64, error) {
	if price, ok := s.rates.Get(on); ok {
		return price, nil
	}
	prevDay, prevPrice, hasPrev := s.rates.AsOf(on)
	nextDay, nextPrice, hasNext := s.rates.Next(on)
	switch {
	case hasPrev && hasNext:
		if on.Sub(prevDay) <= nextDay.Sub(on) {
			return prevPrice, nil
		}
		return nextPrice, nil
	case hasPrev:
		return prevPrice, nil
	case hasNext:
		return nextPrice, nil
	default:
		return 0, fmt.Errorf("%w for %s near %s", ErrNoRateAvailable, s.currency, on)
	}
}
