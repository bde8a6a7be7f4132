// Package validator checks a raw puzzle token matrix before solving.
//
// Check runs once on normalized input tokens and collects every
// distinct failure category. Solving must not proceed while the
// returned list is non-empty. A well-formed but unsatisfiable puzzle
// passes validation; unsatisfiability is the solver's verdict, not a
// format error.
package validator

import (
	"github.com/scottrsm/sudogo/internal/grid"
)

// Check validates a raw token matrix and returns the distinct failure
// categories found, each at most once.
//
// The checks, in reporting order: shape (9x9), value domain (digits
// 1..9 or an empty marker), row duplicates, column duplicates, block
// duplicates. When the shape is wrong, block checks are skipped because
// their index math assumes a 9x9 grid; row and column duplicate checks
// still run over the indices that exist.
func Check(rows [][]string) []*Error {
	var errs []*Error

	shapeOK := len(rows) == grid.Size
	var ragged []int
	for i, row := range rows {
		if len(row) != grid.Size {
			shapeOK = false
			ragged = append(ragged, i)
		}
	}
	if !shapeOK {
		errs = append(errs, newShapeError(len(rows), ragged))
	}

	if bad := illegalLiterals(rows); len(bad) > 0 {
		errs = append(errs, newIllegalValueError(bad))
	}

	if hasRowDuplicate(rows) {
		errs = append(errs, newDuplicateError(CategoryRowDuplicate, "row"))
	}
	if hasColumnDuplicate(rows) {
		errs = append(errs, newDuplicateError(CategoryColumnDuplicate, "column"))
	}
	if shapeOK && hasBlockDuplicate(rows) {
		errs = append(errs, newDuplicateError(CategoryBlockDuplicate, "block"))
	}

	return errs
}

// illegalLiterals returns the distinct offending tokens, in first-seen
// order.
func illegalLiterals(rows [][]string) []string {
	var bad []string
	seen := map[string]struct{}{}
	for _, row := range rows {
		for _, tok := range row {
			if _, _, err := grid.ParseToken(tok); err == nil {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			bad = append(bad, tok)
		}
	}
	return bad
}

// digitAt parses the token at (r, c), returning 0 for empty markers,
// illegal tokens, and out-of-range indices. Duplicate checks only care
// about legally assigned digits.
func digitAt(rows [][]string, r, c int) grid.Digit {
	if r >= len(rows) || c >= len(rows[r]) {
		return 0
	}
	d, empty, err := grid.ParseToken(rows[r][c])
	if err != nil || empty {
		return 0
	}
	return d
}

func hasRowDuplicate(rows [][]string) bool {
	for r := range rows {
		var seen uint16
		for c := range rows[r] {
			d := digitAt(rows, r, c)
			if d == 0 {
				continue
			}
			bit := uint16(1) << d
			if seen&bit != 0 {
				return true
			}
			seen |= bit
		}
	}
	return false
}

func hasColumnDuplicate(rows [][]string) bool {
	for c := 0; c < grid.Size; c++ {
		var seen uint16
		for r := range rows {
			d := digitAt(rows, r, c)
			if d == 0 {
				continue
			}
			bit := uint16(1) << d
			if seen&bit != 0 {
				return true
			}
			seen |= bit
		}
	}
	return false
}

// hasBlockDuplicate assumes a valid 9x9 shape.
func hasBlockDuplicate(rows [][]string) bool {
	for br := 0; br < grid.Size; br += grid.BlockSize {
		for bc := 0; bc < grid.Size; bc += grid.BlockSize {
			var seen uint16
			for dr := 0; dr < grid.BlockSize; dr++ {
				for dc := 0; dc < grid.BlockSize; dc++ {
					d := digitAt(rows, br+dr, bc+dc)
					if d == 0 {
						continue
					}
					bit := uint16(1) << d
					if seen&bit != 0 {
						return true
					}
					seen |= bit
				}
			}
		}
	}
	return false
}
