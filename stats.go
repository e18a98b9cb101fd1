package wager

import (
	"github.com/etnz/wager/date"
)

// Average days per bucket, accounting for month lengths and leap years.
const (
	daysPerWeek  = 7.0
	daysPerMonth = 30.44
	daysPerYear  = 365.25
)

// CategoryStats summarizes one transaction category (deposits or
// withdrawals) of a valuation.
type CategoryStats struct {
	Count int
	Total Money

	// First and Last by timestamp, over the full valued list.
	First, Last *ValuedTransaction

	// Min and Max by USD amount, among transactions with a positive USD
	// amount only. Nil when that subset is empty: zero-value transactions
	// are excluded from extrema but remain in totals and averages.
	Min, Max *ValuedTransaction

	// Time-bucketed averages of the total over the calendar span.
	AvgPerWeek, AvgPerMonth, AvgPerYear Money

	// ShowYearly gates the display of AvgPerYear: it is only meaningful
	// once the category holds more than a year's worth of transactions.
	ShowYearly bool

	// Span covers the first to the last calendar date of the category.
	Span date.Range
}

// HasExtrema reports whether the category has displayable statistics, that
// is at least one transaction with a positive USD amount.
func (s CategoryStats) HasExtrema() bool { return s.Min != nil }

// NewCategoryStats folds a valuation into its category statistics.
//
// The input list is already sorted by timestamp, so first and last are its
// boundaries. The averages divide the total by the number of weeks, months
// and years in the span; a span shorter than the bucket keeps a divisor of
// one so the average degrades to the plain total.
func NewCategoryStats(v *Valuation) CategoryStats {
	s := CategoryStats{Count: len(v.Transactions), Total: v.Total}
	if s.Count == 0 {
		return s
	}
	s.First = &v.Transactions[0]
	s.Last = &v.Transactions[s.Count-1]
	s.Span = date.NewRange(s.First.Date(), s.Last.Date())

	for i := range v.Transactions {
		tx := &v.Transactions[i]
		if !tx.USD.IsPositive() {
			continue
		}
		if s.Min == nil || tx.USD.LessThan(s.Min.USD) {
			s.Min = tx
		}
		if s.Max == nil || tx.USD.GreaterThan(s.Max.USD) {
			s.Max = tx
		}
	}

	days := float64(s.Span.Days())
	weeks, months, years := 1.0, 1.0, 1.0
	if days >= daysPerWeek {
		weeks = days / daysPerWeek
	}
	if days >= 30 {
		months = days / daysPerMonth
	}
	if days >= 365 {
		years = days / daysPerYear
	}
	s.AvgPerWeek = s.Total.Div(weeks)
	s.AvgPerMonth = s.Total.Div(months)
	s.AvgPerYear = s.Total.Div(years)
	s.ShowYearly = s.Count > 365
	return s
}

// DailyActivity is one day of the merged deposit/withdrawal activity.
type DailyActivity struct {
	Date      date.Date
	Deposited float64 // USD deposited that day
	Withdrawn float64 // USD withdrawn that day
	Balance   float64 // running cumulative withdrawn minus deposited
}

// Summary is the complete aggregate over both transaction categories,
// consumable by any renderer without further computation.
type Summary struct {
	Deposits    CategoryStats
	Withdrawals CategoryStats

	// Net is total withdrawals minus total deposits: positive is a net
	// gain (winnings), negative a net loss.
	Net Money

	// Activity merges the two daily totals over the union of their dates,
	// with the running balance.
	Activity []DailyActivity
}

// NewSummary aggregates the two valued categories into a Summary.
func NewSummary(deposits, withdrawals *Valuation) *Summary {
	s := &Summary{
		Deposits:    NewCategoryStats(deposits),
		Withdrawals: NewCategoryStats(withdrawals),
		Net:         withdrawals.Total.Sub(deposits.Total),
	}
	balance := 0.0
	for on := range date.Iterate(deposits.Daily, withdrawals.Daily) {
		in, _ := deposits.Daily.Get(on)
		out, _ := withdrawals.Daily.Get(on)
		balance += out - in
		s.Activity = append(s.Activity, DailyActivity{
			Date:      on,
			Deposited: in,
			Withdrawn: out,
			Balance:   balance,
		})
	}
	return s
}
