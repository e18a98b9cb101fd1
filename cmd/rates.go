package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wager"
	"github.com/etnz/wager/coingecko"
	"github.com/etnz/wager/date"
	"github.com/etnz/wager/internal/logger"
	"github.com/etnz/wager/renderer"
	"github.com/google/subcommands"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	currency string
	from     string
	to       string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the gap-filled daily USD prices of a currency" }
func (*ratesCmd) Usage() string {
	return `wgr rates -c <symbol> -from <date> -to <date>

  Fetches the daily USD prices of a currency over a date range and displays
  the gap-filled series exactly as the report valuation would use it.

Usage Examples:
$ wgr rates -c btc -from 2024-10-01 -to 2024-10-31
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency symbol, e.g. btc.")
	f.StringVar(&c.from, "from", "", "First date of the range (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", date.Today().String(), "Last date of the range (YYYY-MM-DD).")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" || c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -from are required")
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}
	if from.After(to) {
		fmt.Fprintf(os.Stderr, "Error: -from %s is after -to %s\n", from, to)
		return subcommands.ExitUsageError
	}

	span := date.NewRange(from, to)
	supplier := coingecko.NewSupplier(logger.New())
	raw, err := supplier.FetchAll(map[string]date.Range{c.currency: span})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	series, err := wager.NewRateSeries(c.currency, raw[c.currency], span)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RatesMarkdown(series))
	return subcommands.ExitSuccess
}
