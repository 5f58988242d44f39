package google

import (
	"fmt"
	"strings"

	"registro/internal/sheets"
)

// parseValues converts the API's raw cell grid into rows keyed by the
// header. The sheet's own first row wins as the header when it looks
// like one; otherwise the canonical fallback header is used and every
// row is treated as data. Fully empty rows are dropped.
func parseValues(values [][]any, fallback []string) []sheets.Row {
	if len(values) == 0 {
		return nil
	}

	header := toStrings(values[0])
	data := values[1:]
	if !looksLikeHeader(header, fallback) {
		header = fallback
		data = values
	}

	var rows []sheets.Row
	for _, raw := range data {
		cells := toStrings(raw)
		row := make(sheets.Row, len(header))
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			if v != "" {
				empty = false
			}
			row[col] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// looksLikeHeader accepts the sheet's first row as a header when it
// shares at least one canonical column name.
func looksLikeHeader(first, canonical []string) bool {
	for _, c := range canonical {
		for _, h := range first {
			if strings.EqualFold(h, c) {
				return true
			}
		}
	}
	return false
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
