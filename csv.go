package wager

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// This file handles reading transactions from the CSV exports
// (amount, currency, date columns).

// ReadTransactions reads transaction records from a CSV stream.
//
// The first row is the header; "amount", "currency" and "date" columns are
// required, extra columns are ignored. Any malformed row is fatal for the
// whole run.
func ReadTransactions(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width is validated against the header below

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file, missing header", ErrMalformedTransaction)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", ErrMalformedTransaction, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range []string{"amount", "currency", "date"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: missing expected column %q", ErrMalformedTransaction, required)
		}
	}

	var txs []Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return txs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTransaction, line, err)
		}
		field := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}
		tx, err := NewTransaction(field("amount"), field("currency"), field("date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
}

// ReadTransactionsFile reads transaction records from a CSV file.
func ReadTransactionsFile(filename string) ([]Transaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return txs, nil
}
