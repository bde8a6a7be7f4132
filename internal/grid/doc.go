// Package grid holds the 9x9 Sudoku cell model and candidate derivation.
//
// A Grid is a fixed 9x9 array of cells; each cell is either an assigned
// digit 1..9 or empty (stored as 0). External empty markers ("0", "NA",
// ".", "") are normalized at the token layer and never appear inside a
// Grid.
//
// Candidate sets are derived on demand from the row, column, and 3x3
// block of a cell. They are never persisted - at this fixed size a full
// recomputation is cheaper than incremental maintenance.
//
// Grid is a plain array type, so assignment produces an independent
// deep copy. The solver relies on this for its branch ownership rules.
package grid
