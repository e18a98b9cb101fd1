package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/wager"
	md "github.com/nao1215/markdown"
)

// RatesMarkdown renders a gap-filled rate series as a markdown table.
func RatesMarkdown(s *wager.RateSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(strings.ToUpper(s.Currency()) + " Daily USD Prices")
	doc.PlainText(fmt.Sprintf("Range %s, gap-filled.", s.Span()))

	table := md.TableSet{Header: []string{"Date", "Price (USD)"}}
	for on, p := range s.Values() {
		table.Rows = append(table.Rows, []string{on.String(), price(p)})
	}
	doc.Table(table)

	return doc.String()
}
