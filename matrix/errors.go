// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape is not positive.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaN signals a NaN value where a number or ±Inf is required.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNegativeCycle indicates a cycle of negative total cost; shortest
	// distances are undefined along it.
	ErrNegativeCycle = errors.New("matrix: negative cycle")
)
