package core

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateSlots produces the valid appointment start times for a
// business day: every "HH:MM" from openHour:00 to closeHour:00
// inclusive, stepped by intervalMin minutes. Closing before opening or a
// non-positive interval yields an empty grid.
func GenerateSlots(openHour, closeHour, intervalMin int) []string {
	if intervalMin <= 0 || closeHour < openHour {
		return nil
	}
	var slots []string
	for m := openHour * 60; m <= closeHour*60; m += intervalMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// NormalizeSlot repairs legacy time cells. Older sheets stored some
// slots as bare numbers ("14", "14.0"); those become "14:00". Cells
// already containing a colon pass through unchanged.
func NormalizeSlot(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, ":") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	hour := int(f)
	if hour < 0 || hour > 23 {
		return s
	}
	return fmt.Sprintf("%02d:00", hour)
}
