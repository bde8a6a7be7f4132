package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies a class of puzzle validation failure. Each
// category is reported at most once per Check call, no matter how many
// cells trigger it.
type Category string

const (
	// CategoryShape indicates the grid is not exactly 9 rows by 9 columns.
	CategoryShape Category = "SHAPE_ERROR"

	// CategoryIllegalValue indicates an assigned token outside 1..9 that
	// is not a recognized empty marker.
	CategoryIllegalValue Category = "ILLEGAL_VALUE"

	// CategoryRowDuplicate indicates a row with two equal assigned digits.
	CategoryRowDuplicate Category = "ROW_DUPLICATE"

	// CategoryColumnDuplicate indicates a column with two equal assigned digits.
	CategoryColumnDuplicate Category = "COLUMN_DUPLICATE"

	// CategoryBlockDuplicate indicates a 3x3 block with two equal assigned digits.
	CategoryBlockDuplicate Category = "BLOCK_DUPLICATE"
)

// Error describes one validation failure category on an input grid.
type Error struct {
	// Category identifies the failure class.
	Category Category `json:"category"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Literals holds the offending input tokens for illegal-value
	// errors; empty for other categories.
	Literals []string `json:"literals,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Literals) > 0 {
		return fmt.Sprintf("%s: %s (values: %s)", e.Category, e.Message, strings.Join(e.Literals, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// IsCategory reports whether err is a validation Error of the given
// category. Uses errors.As to handle wrapped errors.
func IsCategory(err error, cat Category) bool {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Category == cat
	}
	return false
}

func newShapeError(rows int, ragged []int) *Error {
	msg := fmt.Sprintf("grid is not 9x9 (rows=%d)", rows)
	if len(ragged) > 0 {
		msg = fmt.Sprintf("grid is not 9x9 (rows=%d, rows with wrong width: %v)", rows, ragged)
	}
	return &Error{
		Category: CategoryShape,
		Message:  msg,
	}
}

func newIllegalValueError(literals []string) *Error {
	return &Error{
		Category: CategoryIllegalValue,
		Message:  "assigned values must be digits 1..9 or an empty marker",
		Literals: literals,
	}
}

func newDuplicateError(cat Category, unit string) *Error {
	return &Error{
		Category: cat,
		Message:  fmt.Sprintf("a %s contains the same digit twice", unit),
	}
}
