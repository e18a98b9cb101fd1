// Package cmd implements the CLI application to reconcile gambling
// transactions against historical exchange rates.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/wager"
	"github.com/etnz/wager/coingecko"
	"github.com/etnz/wager/internal/logger"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&ratesCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

// Export file name suffixes used for auto-discovery in the current directory.
const (
	purchasesSuffix   = "-crypto-purchases.csv"
	redemptionsSuffix = "-crypto-redemptions.csv"
)

// discoverCSVs looks for the purchases and redemptions exports in the
// current directory. A file given explicitly always wins.
func discoverCSVs(purchases, redemptions string) (string, string, error) {
	if purchases != "" && redemptions != "" {
		return purchases, redemptions, nil
	}
	entries, err := os.ReadDir(".")
	if err != nil {
		return "", "", err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := filepath.Base(e.Name())
		if purchases == "" && strings.HasSuffix(name, purchasesSuffix) {
			purchases = name
		}
		if redemptions == "" && strings.HasSuffix(name, redemptionsSuffix) {
			redemptions = name
		}
	}
	if purchases == "" || redemptions == "" {
		return "", "", fmt.Errorf("could not find purchases and redemptions CSV files in the current directory, specify them with -p and -r")
	}
	return purchases, redemptions, nil
}

// buildSummary runs the whole pipeline: read both CSVs, fetch the raw price
// series, gap-fill them, value both categories and aggregate.
func buildSummary(purchasesFile, redemptionsFile string) (*wager.Summary, error) {
	purchases, err := wager.ReadTransactionsFile(purchasesFile)
	if err != nil {
		return nil, err
	}
	redemptions, err := wager.ReadTransactionsFile(redemptionsFile)
	if err != nil {
		return nil, err
	}

	ranges := wager.DateRanges(purchases, redemptions)

	supplier := coingecko.NewSupplier(logger.New())
	raw, err := supplier.FetchAll(ranges)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]*wager.RateSeries, len(raw))
	for currency, prices := range raw {
		series, err := wager.NewRateSeries(currency, prices, ranges[currency])
		if err != nil {
			return nil, err
		}
		rates[currency] = series
	}

	deposits, err := wager.Value(purchases, rates)
	if err != nil {
		return nil, err
	}
	withdrawals, err := wager.Value(redemptions, rates)
	if err != nil {
		return nil, err
	}

	return wager.NewSummary(deposits, withdrawals), nil
}
