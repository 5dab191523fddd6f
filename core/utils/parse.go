package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Lenient numeric parsers for spreadsheet cells. A cell that fails to parse
// as the expected type yields nil ("field unset") instead of an error, so a
// single malformed cell never fails a whole row conversion.

// ParseUint64 parses a cell as an unsigned integer, nil on failure.
func ParseUint64(s string) *uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseUint32 parses a cell as a 32-bit unsigned integer, nil on failure.
func ParseUint32(s string) *uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return nil
	}
	u := uint32(v)
	return &u
}

// ParseInt parses a cell as a signed integer, nil on failure.
func ParseInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// ToString converts an arbitrary decoded JSON cell to its string form.
// The values API usually returns strings, but numeric and boolean cells
// arrive untyped.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Cell returns the cell at index i, or the empty string when the row is
// shorter than expected. Rows from the ledger are ragged: trailing empty
// cells are routinely omitted by the values API.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// CellPtr returns a pointer to the cell at index i, nil when absent.
// Unlike Cell, an existing empty cell still yields a non-nil pointer, which
// keeps the "present but empty" and "absent" cases distinct.
func CellPtr(row []string, i int) *string {
	if i < 0 || i >= len(row) {
		return nil
	}
	s := row[i]
	return &s
}
