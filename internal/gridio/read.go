// Package gridio reads and writes puzzle grids as comma-separated text
// and renders them as bordered terminal output.
//
// Reading produces a raw token matrix for the validator, not a Grid:
// shape and value problems must survive parsing so they can be reported
// as validation errors instead of dying inside the CSV reader.
package gridio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Read parses comma-separated puzzle text into a raw token matrix.
// Each token is whitespace-trimmed and NFC-normalized so visually
// identical input compares equal against the empty-marker set.
//
// A line without commas is treated as one token per character, so the
// compact "530070000" puzzle form is accepted alongside CSV.
func Read(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape errors belong to the validator
	cr.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading puzzle: %w", err)
		}
		if len(record) == 1 && len(record[0]) > 1 {
			record = splitCompact(record[0])
		}
		row := make([]string, len(record))
		for i, tok := range record {
			row[i] = normalizeToken(tok)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile reads a puzzle file. A missing file surfaces as the
// underlying fs error so callers can distinguish it from format
// problems.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func normalizeToken(tok string) string {
	return norm.NFC.String(strings.TrimSpace(tok))
}

func splitCompact(line string) []string {
	runes := []rune(strings.TrimSpace(line))
	toks := make([]string, len(runes))
	for i, r := range runes {
		toks[i] = string(r)
	}
	return toks
}
