package wager

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/wager/date"
)

func TestParseStakeTime(t *testing.T) {
	got, err := ParseStakeTime("Fri Oct 04 2024 13:39:39 GMT+0000 (Coordinated Universal Time)")
	if err != nil {
		t.Fatalf("ParseStakeTime() returned error: %v", err)
	}
	want := time.Date(2024, 10, 4, 13, 39, 39, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseStakeTime() = %v, want %v", got, want)
	}
}

func TestParseStakeTime_Offset(t *testing.T) {
	got, err := ParseStakeTime("Sat Jan 11 2025 02:15:00 GMT+0200 (Eastern European Standard Time)")
	if err != nil {
		t.Fatalf("ParseStakeTime() returned error: %v", err)
	}
	// 02:15+0200 is 00:15 UTC, so the UTC calendar day is the 11th too.
	if want := time.Date(2025, 1, 11, 0, 15, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseStakeTime() = %v, want %v", got, want)
	}
}

func TestParseStakeTime_Invalid(t *testing.T) {
	_, err := ParseStakeTime("tomorrow at noon")
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Errorf("ParseStakeTime() error = %v, want ErrMalformedTransaction", err)
	}
}

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction("0.00042", "BTC", "Fri Oct 04 2024 13:39:39 GMT+0000 (Coordinated Universal Time)")
	if err != nil {
		t.Fatalf("NewTransaction() returned error: %v", err)
	}
	if tx.Currency != "btc" {
		t.Errorf("Currency = %q, want %q (lowercased)", tx.Currency, "btc")
	}
	if tx.Amount.String() != "0.00042" {
		t.Errorf("Amount = %v, want 0.00042", tx.Amount)
	}
	if want := date.New(2024, 10, 4); tx.Date() != want {
		t.Errorf("Date() = %v, want %v", tx.Date(), want)
	}
}

func TestNewTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name                    string
		amount, currency, stamp string
	}{
		{"bad amount", "not-a-number", "btc", "Fri Oct 04 2024 13:39:39 GMT+0000"},
		{"negative amount", "-1", "btc", "Fri Oct 04 2024 13:39:39 GMT+0000"},
		{"empty currency", "1", "  ", "Fri Oct 04 2024 13:39:39 GMT+0000"},
		{"bad date", "1", "btc", "04/10/2024"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(tc.amount, tc.currency, tc.stamp)
			if !errors.Is(err, ErrMalformedTransaction) {
				t.Errorf("NewTransaction() error = %v, want ErrMalformedTransaction", err)
			}
		})
	}
}

func TestDateRanges(t *testing.T) {
	purchases := []Transaction{tx(1, "btc", 5, 8), tx(1, "eth", 2, 8)}
	redemptions := []Transaction{tx(1, "btc", 1, 8), tx(1, "btc", 9, 8)}

	ranges := DateRanges(purchases, redemptions)

	if want := date.NewRange(day(1), day(9)); ranges["btc"] != want {
		t.Errorf("ranges[btc] = %v, want %v", ranges["btc"], want)
	}
	if want := date.NewRange(day(2), day(2)); ranges["eth"] != want {
		t.Errorf("ranges[eth] = %v, want %v", ranges["eth"], want)
	}
	if len(ranges) != 2 {
		t.Errorf("len(ranges) = %d, want 2", len(ranges))
	}
}
