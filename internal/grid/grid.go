package grid

// Size is the side length of a grid; BlockSize is the side length of a
// 3x3 block.
const (
	Size      = 9
	BlockSize = 3
)

// Digit is a legal Sudoku cell value, 1..9.
type Digit = uint8

// Grid is a 9x9 Sudoku board. A cell holds a digit 1..9 or 0 for empty.
//
// Grid is an array type: assigning one Grid to another copies all 81
// cells, so each copy is independently mutable.
type Grid [Size][Size]Digit

// At returns the digit at (row, col), 0 if the cell is empty.
func (g *Grid) At(row, col int) Digit {
	return g[row][col]
}

// Empty reports whether the cell at (row, col) is unassigned.
func (g *Grid) Empty(row, col int) bool {
	return g[row][col] == 0
}

// Set assigns d to the cell at (row, col). d must be in 1..9.
func (g *Grid) Set(row, col int, d Digit) {
	g[row][col] = d
}

// Clear reverts the cell at (row, col) to empty.
func (g *Grid) Clear(row, col int) {
	g[row][col] = 0
}

// EmptyCount returns the number of unassigned cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Solved reports whether every cell is assigned.
func (g *Grid) Solved() bool {
	return g.EmptyCount() == 0
}

// Legal reports whether no row, column, or block contains the same
// assigned digit twice. Empty cells are ignored.
func (g *Grid) Legal() bool {
	for i := 0; i < Size; i++ {
		var row, col uint16
		for j := 0; j < Size; j++ {
			if d := g[i][j]; d != 0 {
				bit := uint16(1) << d
				if row&bit != 0 {
					return false
				}
				row |= bit
			}
			if d := g[j][i]; d != 0 {
				bit := uint16(1) << d
				if col&bit != 0 {
					return false
				}
				col |= bit
			}
		}
	}
	for br := 0; br < Size; br += BlockSize {
		for bc := 0; bc < Size; bc += BlockSize {
			var seen uint16
			for dr := 0; dr < BlockSize; dr++ {
				for dc := 0; dc < BlockSize; dc++ {
					d := g[br+dr][bc+dc]
					if d == 0 {
						continue
					}
					bit := uint16(1) << d
					if seen&bit != 0 {
						return false
					}
					seen |= bit
				}
			}
		}
	}
	return true
}

// Candidates returns the candidate set for the empty cell at (row, col):
// the digits 1..9 not assigned anywhere in its row, its column, or its
// containing 3x3 block. The block is (row/3, col/3).
//
// The result is meaningful only for an empty cell.
func (g *Grid) Candidates(row, col int) CandidateSet {
	s := fullCandidates
	for i := 0; i < Size; i++ {
		s = s.without(g[row][i])
		s = s.without(g[i][col])
	}
	br, bc := (row/BlockSize)*BlockSize, (col/BlockSize)*BlockSize
	for dr := 0; dr < BlockSize; dr++ {
		for dc := 0; dc < BlockSize; dc++ {
			s = s.without(g[br+dr][bc+dc])
		}
	}
	return s
}
