package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestFromTime(t *testing.T) {
	// 23:30 in UTC+2 is 21:30 UTC, still the same day.
	loc := time.FixedZone("CEST", 2*60*60)
	on := FromTime(time.Date(2024, 10, 4, 23, 30, 0, 0, loc))
	if want := New(2024, 10, 4); on != want {
		t.Errorf("FromTime() = %v, want %v", on, want)
	}

	// 00:30 in UTC-2 is 02:30 UTC, same day.
	loc = time.FixedZone("W2", -2*60*60)
	on = FromTime(time.Date(2024, 10, 4, 0, 30, 0, 0, loc))
	if want := New(2024, 10, 4); on != want {
		t.Errorf("FromTime() = %v, want %v", on, want)
	}

	// 23:30 in UTC-2 is 01:30 UTC the next day.
	on = FromTime(time.Date(2024, 10, 4, 23, 30, 0, 0, loc))
	if want := New(2024, 10, 5); on != want {
		t.Errorf("FromTime() = %v, want %v", on, want)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{New(2024, 10, 5), New(2024, 10, 1), 4},
		{New(2024, 10, 1), New(2024, 10, 5), -4},
		{New(2024, 10, 1), New(2024, 10, 1), 0},
		{New(2025, 3, 1), New(2025, 2, 28), 1},
		{New(2024, 3, 1), New(2024, 2, 28), 2}, // leap year
	}
	for _, tc := range tests {
		if got := tc.a.Sub(tc.b); got != tc.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	on, err := Parse("2024-7-1")
	if err != nil {
		t.Fatalf("Parse(2024-7-1) returned error: %v", err)
	}
	if want := New(2024, 7, 1); on != want {
		t.Errorf("Parse(2024-7-1) = %v, want %v", on, want)
	}

	if _, err := Parse("not a date"); err == nil {
		t.Errorf("Parse(not a date) want error, got nil")
	}
}
