// Package renderer turns wager reports into markdown.
package renderer

import (
	"math"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
)

// usd formats a chart-grade float amount as USD.
func usd(value float64) string {
	return money.New(int64(math.Round(value*100)), money.USD).Display()
}

// datetime formats a transaction instant for display.
func datetime(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04:05 PM MST")
}

// price formats a raw exchange rate with full precision.
func price(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
