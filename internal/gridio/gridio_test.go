package gridio

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottrsm/sudogo/internal/grid"
)

var puzzle = grid.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solution = grid.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestRead_CSVWithMarkers(t *testing.T) {
	// All four empty markers in one row, mixed with digits.
	input := "5,0,NA,.,,3,7,NA,.\n" + strings.Repeat(",,,,,,,,\n", 8)
	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 9)
	assert.Equal(t, []string{"5", "0", "NA", ".", "", "3", "7", "NA", "."}, rows[0])

	g, err := grid.FromTokens(rows)
	require.NoError(t, err)
	assert.Equal(t, grid.Digit(5), g.At(0, 0))
	assert.Equal(t, grid.Digit(3), g.At(0, 5))
	for _, c := range []int{1, 2, 3, 4, 7, 8} {
		assert.True(t, g.Empty(0, c), "column %d should be empty", c)
	}
}

func TestRead_TrimsWhitespace(t *testing.T) {
	rows, err := Read(strings.NewReader("5 , 3 ,NA , . ,7,8,9,1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "3", "NA", ".", "7", "8", "9", "1", "2"}, rows[0])
}

func TestRead_CompactForm(t *testing.T) {
	input := "530070000\n600195000\n098000060\n800060003\n400803001\n700020006\n060000280\n000419005\n000080079\n"
	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 9)

	g, err := grid.FromTokens(rows)
	require.NoError(t, err)
	assert.Equal(t, puzzle, g)
}

func TestRead_RaggedRowsSurvive(t *testing.T) {
	// Shape problems must reach the validator, not fail the parser.
	rows, err := Read(strings.NewReader("1,2,3\n4,5\n"))
	require.NoError(t, err)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRender_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "render_puzzle", []byte(Render(puzzle)))
	g.Assert(t, "render_solution", []byte(Render(solution)))
}

func TestRows(t *testing.T) {
	rows := Rows(puzzle)
	require.Len(t, rows, 9)
	assert.Equal(t, "5,3,,,7,,,,", rows[0])
	assert.Equal(t, ",,,,8,,,7,9", rows[8])
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, solution))

	rows, err := Read(&buf)
	require.NoError(t, err)
	g, err := grid.FromTokens(rows)
	require.NoError(t, err)
	assert.Equal(t, solution, g)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(path, solution))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	g, err := grid.FromTokens(rows)
	require.NoError(t, err)
	assert.Equal(t, solution, g)
}
