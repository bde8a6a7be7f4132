package grid

import "fmt"

// The empty markers accepted in puzzle input. Any of these tokens
// normalizes to an empty cell before the core ever sees it.
var emptyMarkers = map[string]struct{}{
	"0":  {},
	"NA": {},
	".":  {},
	"":   {},
}

// IsEmptyToken reports whether tok is one of the recognized empty
// markers: "0", "NA", ".", or the empty string.
func IsEmptyToken(tok string) bool {
	_, ok := emptyMarkers[tok]
	return ok
}

// ParseToken maps an input token to a cell value. It returns the digit
// and empty=false for "1".."9", empty=true for a recognized empty
// marker, and an error for anything else.
func ParseToken(tok string) (d Digit, empty bool, err error) {
	if IsEmptyToken(tok) {
		return 0, true, nil
	}
	if len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9' {
		return tok[0] - '0', false, nil
	}
	return 0, false, fmt.Errorf("illegal cell value %q", tok)
}

// FromTokens builds a Grid from a 9x9 token matrix. Tokens must already
// be normalized; the matrix is expected to have passed validation, so
// any shape or value problem is reported as a plain error.
func FromTokens(rows [][]string) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return Grid{}, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return Grid{}, fmt.Errorf("row %d: expected %d columns, got %d", r, Size, len(row))
		}
		for c, tok := range row {
			d, empty, err := ParseToken(tok)
			if err != nil {
				return Grid{}, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			if !empty {
				g[r][c] = d
			}
		}
	}
	return g, nil
}
