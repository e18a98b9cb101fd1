package wager

import (
	"fmt"
	"slices"

	"github.com/etnz/wager/date"
	"github.com/shopspring/decimal"
)

// Valuation is the result of valuing a list of transactions in USD.
type Valuation struct {
	// Total is the sum of all USD amounts.
	Total Money
	// Transactions is the valued list, sorted ascending by timestamp
	// (stable with respect to input order on ties).
	Transactions []ValuedTransaction
	// Daily accumulates the USD amounts per calendar day.
	Daily *date.History[float64]
}

// Value assigns each transaction its authoritative USD value from the
// gap-filled rate series of its currency, resolved on the transaction's
// calendar day with the nearest-date fallback.
//
// Input transactions are not mutated; each valued transaction is a new
// derived record. A transaction whose rate cannot be resolved is fatal
// (ErrMissingRate).
func Value(txs []Transaction, rates map[string]*RateSeries) (*Valuation, error) {
	v := &Valuation{
		Transactions: make([]ValuedTransaction, 0, len(txs)),
		Daily:        new(date.History[float64]),
	}
	for _, tx := range txs {
		on := tx.Date()
		series, ok := rates[tx.Currency]
		if !ok {
			return nil, fmt.Errorf("%w for %s near %s", ErrMissingRate, tx.Currency, on)
		}
		rate, err := series.Closest(on)
		if err != nil {
			return nil, fmt.Errorf("%w for %s near %s: %v", ErrMissingRate, tx.Currency, on, err)
		}
		usd := USD(tx.Amount.Mul(decimal.NewFromFloat(rate)))
		v.Total = v.Total.Add(usd)
		v.Daily.AppendAdd(on, usd.AsFloat())
		v.Transactions = append(v.Transactions, ValuedTransaction{Transaction: tx, USD: usd})
	}
	slices.SortStableFunc(v.Transactions, func(a, b ValuedTransaction) int {
		return a.Time.Compare(b.Time)
	})
	return v, nil
}
