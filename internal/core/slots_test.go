package core

import "testing"

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots(8, 22, 30)
	if len(slots) != 29 {
		t.Fatalf("expected 29 slots, got %d", len(slots))
	}
	if slots[0] != "08:00" || slots[len(slots)-1] != "22:00" {
		t.Fatalf("unexpected bounds: %s .. %s", slots[0], slots[len(slots)-1])
	}
	seen := map[string]bool{}
	for i, s := range slots {
		if seen[s] {
			t.Fatalf("duplicate slot %s", s)
		}
		seen[s] = true
		if i > 0 && slots[i-1] >= s {
			t.Fatalf("slots out of order at %d: %s >= %s", i, slots[i-1], s)
		}
	}
}

func TestGenerateSlotsEdges(t *testing.T) {
	if got := GenerateSlots(22, 8, 30); got != nil {
		t.Fatalf("close < open should be empty, got %v", got)
	}
	if got := GenerateSlots(8, 22, 0); got != nil {
		t.Fatalf("zero interval should be empty, got %v", got)
	}
	got := GenerateSlots(9, 9, 30)
	if len(got) != 1 || got[0] != "09:00" {
		t.Fatalf("single-hour day: %v", got)
	}
}

func TestNormalizeSlot(t *testing.T) {
	cases := []struct{ in, out string }{
		{"14:30", "14:30"},
		{"14", "14:00"},
		{"14.0", "14:00"},
		{"9", "09:00"},
		{"", ""},
		{"25", "25"},
		{"manhã", "manhã"},
	}
	for _, tc := range cases {
		if got := NormalizeSlot(tc.in); got != tc.out {
			t.Fatalf("%q expected %q, got %q", tc.in, tc.out, got)
		}
	}
}
