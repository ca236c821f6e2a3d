package matrix

import "errors"

// Sentinel errors for matrix construction and mutation. FromGrid panics
// with ErrRaggedGrid (fatal tier); the mutation methods return the other
// sentinels and tests match them via errors.Is.
var (
	// ErrRaggedGrid indicates a construction literal whose rows differ in length.
	ErrRaggedGrid = errors.New("matrix: all rows must have the same length")
	// ErrRowMismatch indicates an appended row whose length differs from the column count.
	ErrRowMismatch = errors.New("matrix: row length does not match column count")
	// ErrColMismatch indicates an appended column whose length differs from the row count.
	ErrColMismatch = errors.New("matrix: column length does not match row count")
	// ErrIndexOutOfRange indicates a row or column index outside valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)
