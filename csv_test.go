package wager

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `id,amount,currency,date
1,0.001,BTC,Fri Oct 04 2024 13:39:39 GMT+0000 (Coordinated Universal Time)
2,25.5,usdc,Sat Oct 05 2024 09:00:00 GMT+0000 (Coordinated Universal Time)
`

func TestReadTransactions(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadTransactions() returned error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("len(txs) = %d, want 2", len(txs))
	}
	if txs[0].Currency != "btc" || txs[1].Currency != "usdc" {
		t.Errorf("currencies = %q, %q want btc, usdc", txs[0].Currency, txs[1].Currency)
	}
	if txs[1].Amount.String() != "25.5" {
		t.Errorf("amount = %v, want 25.5", txs[1].Amount)
	}
}

func TestReadTransactions_MissingColumn(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader("amount,date\n1,Fri Oct 04 2024 13:39:39 GMT+0000\n"))
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Errorf("ReadTransactions() error = %v, want ErrMalformedTransaction", err)
	}
	if err == nil || !strings.Contains(err.Error(), "currency") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestReadTransactions_BadRow(t *testing.T) {
	csv := "amount,currency,date\nnot-a-number,btc,Fri Oct 04 2024 13:39:39 GMT+0000\n"
	_, err := ReadTransactions(strings.NewReader(csv))
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Errorf("ReadTransactions() error = %v, want ErrMalformedTransaction", err)
	}
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not identify the faulty line", err)
	}
}

func TestReadTransactions_Empty(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader(""))
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Errorf("ReadTransactions() error = %v, want ErrMalformedTransaction", err)
	}

	// A header-only file is valid and yields no transactions.
	txs, err := ReadTransactions(strings.NewReader("amount,currency,date\n"))
	if err != nil {
		t.Fatalf("ReadTransactions(header only) returned error: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("len(txs) = %d, want 0", len(txs))
	}
}
