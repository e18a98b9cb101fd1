package wager

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/wager/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single dated amount of a crypto currency, as exported by
// the gambling site. It is immutable once parsed.
type Transaction struct {
	Amount   decimal.Decimal // non-negative, in Currency units
	Currency string          // lowercase symbol, e.g. "btc"
	Time     time.Time       // full instant, with timezone
}

// Date returns the UTC calendar day of the transaction.
func (t Transaction) Date() date.Date { return date.FromTime(t.Time) }

// ValuedTransaction is a Transaction augmented with its resolved USD value.
// It is created once by the valuation engine and never mutated afterward.
type ValuedTransaction struct {
	Transaction
	USD Money
}

// stakeTimeLayout matches the export timestamp once the parenthesized
// timezone name and the "GMT" marker are stripped, e.g.
// "Fri Oct 04 2024 13:39:39 +0000".
const stakeTimeLayout = "Mon Jan 02 2006 15:04:05 -0700"

// ParseStakeTime parses a timestamp from a gambling site export, like
// "Fri Oct 04 2024 13:39:39 GMT+0000 (Coordinated Universal Time)".
func ParseStakeTime(str string) (time.Time, error) {
	s := str
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(strings.Replace(s, "GMT", "", 1))
	t, err := time.Parse(stakeTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q: %v", ErrMalformedTransaction, str, err)
	}
	return t, nil
}

// NewTransaction validates and builds a Transaction from raw record fields.
func NewTransaction(amount, currency, datetime string) (Transaction, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid amount %q: %v", ErrMalformedTransaction, amount, err)
	}
	if value.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: negative amount %q", ErrMalformedTransaction, amount)
	}
	symbol := strings.ToLower(strings.TrimSpace(currency))
	if symbol == "" {
		return Transaction{}, fmt.Errorf("%w: empty currency", ErrMalformedTransaction)
	}
	on, err := ParseStakeTime(datetime)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{Amount: value, Currency: symbol, Time: on}, nil
}

// DateRanges returns, per currency, the range spanning the min and max
// transaction date observed across all the given transaction lists.
func DateRanges(lists ...[]Transaction) map[string]date.Range {
	ranges := make(map[string]date.Range)
	for _, txs := range lists {
		for _, tx := range txs {
			ranges[tx.Currency] = ranges[tx.Currency].Extend(tx.Date())
		}
	}
	return ranges
}
