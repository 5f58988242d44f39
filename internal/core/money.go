// Package core holds the domain types and the pure business rules:
// money parsing, the slot grid, appointment conflicts and the daily
// summary. Nothing in here touches the store or the network.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal. Both dot (45.50) and comma (45,50)
// separators are accepted. It is the strict parser used for user input:
// empty, malformed, negative or zero amounts are rejected.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	intPart, fracPart, found := strings.Cut(s, ".")
	if found && strings.Contains(fracPart, ".") {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	cents := iv*100 + frac
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// CoerceCents is the total counterpart of ParseDecimalToCents, used for
// spreadsheet cells of unknown provenance. Whitespace is trimmed, a
// decimal comma is normalized to a dot, and anything that still fails to
// parse as a non-negative number becomes zero. It never fails: a
// corrupted cell contributes nothing instead of breaking a load.
func CoerceCents(s string) Money {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	// ParseFloat also accepts NaN, infinities and huge exponents;
	// converting those to int64 is implementation-defined, so they
	// coerce to zero like any other corrupted cell.
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= maxCoercibleAmount {
		return Money{}
	}
	return Money{Cents: int64(f*100.0 + 0.5)}
}

// maxCoercibleAmount bounds CoerceCents input so the cents conversion
// cannot overflow int64.
const maxCoercibleAmount = float64(1<<63-1) / 100

// String formats the amount with two decimals and a dot separator, the
// form written back to the store ("45.50").
func (m Money) String() string {
	neg := m.Cents < 0
	c := m.Cents
	if neg {
		c = -c
	}
	s := fmt.Sprintf("%d.%02d", c/100, c%100)
	if neg {
		return "-" + s
	}
	return s
}
