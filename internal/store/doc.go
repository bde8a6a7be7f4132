// Package store archives solve runs in SQLite.
//
// Each solve run is one row: the puzzle, its outcome, the solution when
// one exists, and the search diagnostics. The archive is append-only;
// records are identified by UUIDv7 run IDs, so insertion order and ID
// order agree.
//
// The database is opened with WAL mode and a single-writer connection
// limit, which keeps concurrent `history` reads safe while a solve is
// being recorded.
package store
