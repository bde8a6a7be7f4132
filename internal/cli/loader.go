package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"github.com/scottrsm/sudogo/internal/gridio"
	"github.com/scottrsm/sudogo/internal/validator"
)

// readPuzzleFile reads a puzzle file into a raw token matrix. Errors
// are reported through the formatter and returned as ExitErrors: a
// missing file is a command error, distinct from format problems.
func readPuzzleFile(formatter *OutputFormatter, path string) ([][]string, error) {
	rows, err := gridio.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		msg := fmt.Sprintf("puzzle file not found: %s", path)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return nil, NewExitError(ExitCommandError, msg)
	}
	if err != nil {
		msg := fmt.Sprintf("reading puzzle file %s: %v", path, err)
		_ = formatter.Error(ErrCodeReadFailed, msg, nil)
		return nil, NewExitError(ExitCommandError, msg)
	}
	return rows, nil
}

// outputPuzzleErrors reports validator findings and returns the
// invalid-format ExitError. A malformed puzzle is a format problem,
// never confused with an unsolvable one.
func outputPuzzleErrors(formatter *OutputFormatter, errs []*validator.Error) error {
	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeBadPuzzle, "puzzle failed validation", errs)
	} else {
		fmt.Fprintf(formatter.Writer, "Invalid puzzle (%d problem(s)):\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(formatter.Writer, "  %s\n", e.Error())
		}
	}
	return NewExitError(ExitBadPuzzle, fmt.Sprintf("puzzle failed validation with %d error(s)", len(errs)))
}

// newRunID returns a UUIDv7 for correlating a solve run across output,
// logs, and the archive. V7 is time-ordered, so archive IDs sort by
// creation time.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy failure only; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
