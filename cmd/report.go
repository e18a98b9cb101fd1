package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wager/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	purchases   string
	redemptions string
	output      string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute and display the win/loss report" }
func (*reportCmd) Usage() string {
	return `wgr report [-p <purchases.csv>] [-r <redemptions.csv>] [-o <file>]

  Values every transaction of both CSV exports in USD at its day's exchange
  rate, and displays deposit/withdrawal statistics, the total winnings or
  losses, and the daily activity.

  Without -p and -r, files ending in ` + purchasesSuffix + ` and
  ` + redemptionsSuffix + ` are picked up from the current directory.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.purchases, "p", "", "Purchases (deposits) CSV file.")
	f.StringVar(&c.redemptions, "r", "", "Redemptions (withdrawals) CSV file.")
	f.StringVar(&c.output, "o", "", "Write the raw markdown report to this file instead of the terminal.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	purchases, redemptions, err := discoverCSVs(c.purchases, c.redemptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	summary, err := buildSummary(purchases, redemptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.SummaryMarkdown(summary)

	if c.output != "" {
		if err := os.WriteFile(c.output, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Results have been written to %s\n", c.output)
		return subcommands.ExitSuccess
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}
