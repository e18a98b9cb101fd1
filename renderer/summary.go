package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/wager"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the win/loss summary to a markdown string.
func SummaryMarkdown(s *wager.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Gambling Win/Loss Report")

	categorySection(doc, "Deposit", s.Deposits)
	categorySection(doc, "Withdrawal", s.Withdrawals)

	doc.H2("Totals")
	result := "Total Winnings (USD)"
	if s.Net.IsNegative() {
		result = "Total Losses (USD)"
	}
	doc.Table(md.TableSet{
		Header: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Total Deposits (USD)", s.Deposits.Total.String()},
			{"Total Withdrawals (USD)", s.Withdrawals.Total.String()},
			{result, s.Net.Abs().String()},
		},
	})

	if len(s.Activity) > 0 {
		doc.H2("Daily Activity")
		table := md.TableSet{Header: []string{"Date", "Deposits", "Withdrawals", "Net Balance"}}
		for _, a := range s.Activity {
			table.Rows = append(table.Rows, []string{
				a.Date.String(), usd(a.Deposited), usd(a.Withdrawn), usd(a.Balance),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// categorySection renders one category's statistics, or a placeholder when
// the category holds no displayable transaction.
func categorySection(doc *md.Markdown, singular string, s wager.CategoryStats) {
	doc.H2(singular + "s")
	if s.Count == 0 || !s.HasExtrema() {
		doc.PlainText(fmt.Sprintf("No %s transactions found.", strings.ToLower(singular)))
		return
	}

	rows := [][]string{
		{"First " + singular, fmt.Sprintf("%s - %s", datetime(s.First.Time), s.First.USD)},
		{"Most Recent " + singular, fmt.Sprintf("%s - %s", datetime(s.Last.Time), s.Last.USD)},
		{"Smallest " + singular, s.Min.USD.String()},
		{"Largest " + singular, s.Max.USD.String()},
		{"Average " + singular + " per Week", s.AvgPerWeek.String()},
		{"Average " + singular + " per Month", s.AvgPerMonth.String()},
	}
	if s.ShowYearly {
		rows = append(rows, []string{"Average " + singular + " per Year", s.AvgPerYear.String()})
	}
	doc.Table(md.TableSet{Header: []string{"Statistic", "Value"}, Rows: rows})
}
