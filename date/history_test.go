package date

import (
	"slices"
	"testing"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}
}

func TestAppendAdd(t *testing.T) {
	h := new(History[float64])
	on := New(2024, 10, 4)

	h.AppendAdd(on, 10)
	h.AppendAdd(on, 5)
	h.AppendAdd(on.Add(1), 1)

	if h.Len() != 2 {
		t.Fatalf("History.Len() = %v want 2", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 15 {
		t.Errorf("Get(%v) = %v, %v want 15, true", on, v, ok)
	}
}

func TestAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, 10, 1), 1.0)
	h.Append(New(2024, 10, 5), 5.0)

	tests := []struct {
		name    string
		day     Date
		wantDay Date
		wantVal float64
		wantOK  bool
	}{
		{"exact", New(2024, 10, 1), New(2024, 10, 1), 1.0, true},
		{"between", New(2024, 10, 3), New(2024, 10, 1), 1.0, true},
		{"after last", New(2024, 10, 9), New(2024, 10, 5), 5.0, true},
		{"before first", New(2024, 9, 30), Date{}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			day, v, ok := h.AsOf(tc.day)
			if day != tc.wantDay || v != tc.wantVal || ok != tc.wantOK {
				t.Errorf("AsOf(%v) = %v, %v, %v want %v, %v, %v", tc.day, day, v, ok, tc.wantDay, tc.wantVal, tc.wantOK)
			}
		})
	}
}

func TestNext(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, 10, 1), 1.0)
	h.Append(New(2024, 10, 5), 5.0)

	tests := []struct {
		name    string
		day     Date
		wantDay Date
		wantVal float64
		wantOK  bool
	}{
		{"before first", New(2024, 9, 30), New(2024, 10, 1), 1.0, true},
		{"on first", New(2024, 10, 1), New(2024, 10, 5), 5.0, true},
		{"between", New(2024, 10, 3), New(2024, 10, 5), 5.0, true},
		{"on last", New(2024, 10, 5), Date{}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			day, v, ok := h.Next(tc.day)
			if day != tc.wantDay || v != tc.wantVal || ok != tc.wantOK {
				t.Errorf("Next(%v) = %v, %v, %v want %v, %v, %v", tc.day, day, v, ok, tc.wantDay, tc.wantVal, tc.wantOK)
			}
		})
	}
}

func TestIterate(t *testing.T) {
	a := new(History[float64])
	a.Append(New(2024, 10, 1), 1)
	a.Append(New(2024, 10, 3), 3)
	b := new(History[float64])
	b.Append(New(2024, 10, 2), 2)
	b.Append(New(2024, 10, 3), 30)

	var got []Date
	for on := range Iterate(a, b) {
		got = append(got, on)
	}
	want := []Date{New(2024, 10, 1), New(2024, 10, 2), New(2024, 10, 3)}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v, want %v", got, want)
	}
}
