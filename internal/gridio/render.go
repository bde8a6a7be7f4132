package gridio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scottrsm/sudogo/internal/grid"
)

const borderLine = "+-------+-------+-------+"

// Render formats a grid as bordered terminal text. Empty cells render
// as '.'.
func Render(g grid.Grid) string {
	var b strings.Builder
	for r := 0; r < grid.Size; r++ {
		if r%grid.BlockSize == 0 {
			b.WriteString(borderLine)
			b.WriteByte('\n')
		}
		for c := 0; c < grid.Size; c++ {
			if c%grid.BlockSize == 0 {
				b.WriteString("| ")
			}
			b.WriteByte(cellChar(g.At(r, c)))
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(borderLine)
	b.WriteByte('\n')
	return b.String()
}

func cellChar(d grid.Digit) byte {
	if d == 0 {
		return '.'
	}
	return '0' + d
}

// Rows returns the grid as nine comma-separated strings, one per row.
// Empty cells become empty fields.
func Rows(g grid.Grid) []string {
	rows := make([]string, grid.Size)
	for r := 0; r < grid.Size; r++ {
		fields := make([]string, grid.Size)
		for c := 0; c < grid.Size; c++ {
			if d := g.At(r, c); d != 0 {
				fields[c] = string(rune('0' + d))
			}
		}
		rows[r] = strings.Join(fields, ",")
	}
	return rows
}

// WriteCSV writes the grid as comma-separated rows.
func WriteCSV(w io.Writer, g grid.Grid) error {
	for _, row := range Rows(g) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the grid as a comma-separated file.
func WriteFile(path string, g grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteCSV(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
