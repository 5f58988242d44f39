package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"45.50", 4550, true},
		{"45,50", 4550, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestCoerceCentsIsTotal(t *testing.T) {
	cases := []struct {
		in  string
		out int64
	}{
		{"45,50", 4550},
		{"45.50", 4550},
		{"80", 8000},
		{" 12.3 ", 1230},
		{"", 0},
		{"garbage", 0},
		{"-5", 0},
		{"1.2.3", 0},
		{"NaN", 0},
		{"nan", 0},
		{"Inf", 0},
		{"+Inf", 0},
		{"-Inf", 0},
		{"1e300", 0},
		{"92233720368547758.08", 0}, // would overflow int64 cents
	}
	for _, tc := range cases {
		if got := CoerceCents(tc.in); got.Cents != tc.out {
			t.Fatalf("%q expected %d cents, got %d", tc.in, tc.out, got.Cents)
		}
		if CoerceCents(tc.in).Cents < 0 {
			t.Fatalf("%q coerced to a negative amount", tc.in)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		out   string
	}{
		{4550, "45.50"},
		{5, "0.05"},
		{0, "0.00"},
		{-1230, "-12.30"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.out {
			t.Fatalf("%d expected %q, got %q", tc.cents, tc.out, got)
		}
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	// A comma-decimal cell written back must read as the same amount.
	m := CoerceCents("45,50")
	if m.Cents != 4550 {
		t.Fatalf("expected 4550, got %d", m.Cents)
	}
	if back := CoerceCents(m.String()); back != m {
		t.Fatalf("round trip lost precision: %v -> %v", m, back)
	}
}
