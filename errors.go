package moye

import "errors"

// Sentinel errors for the moye layout algebra, one per kind named in the
// taxonomy. Call sites return these directly or wrap them with fmt.Errorf
// and %w, so errors.Is matches them either way.
var (
	// ErrShapeMismatch is the error MakeLayout panics with when a shape and
	// stride tree fail the congruence check at layout construction.
	ErrShapeMismatch = errors.New("moye: shape and stride are not congruent")

	// ErrDivisibility is returned when shape_div (or an operation built on
	// it, such as composition) is asked to divide non-divisible static
	// integers.
	ErrDivisibility = errors.New("moye: shape_div: operands are not evenly divisible")

	// ErrRecast is returned when recast is asked to convert between element
	// sizes that are not a whole multiple of one another.
	ErrRecast = errors.New("moye: recast: element sizes are not integer multiples")

	// ErrRankMismatch is returned when a tile argument names more modes
	// than the layout it divides or composes against has.
	ErrRankMismatch = errors.New("moye: rank mismatch between layout and tile")

	// ErrOutOfBounds names a 1-D coordinate that exceeds the size of the
	// layout it indexes. No function in this package returns it:
	// Layout.Index does not check bounds.
	ErrOutOfBounds = errors.New("moye: coordinate out of bounds")

	// ErrInvalidSlice names a slice coordinate whose wildcard pattern is
	// inconsistent with the layout's mode tree. No function in this
	// package returns it: Slice and Dice do not validate the coordinate.
	ErrInvalidSlice = errors.New("moye: slice coordinate does not match layout shape")

	// ErrNegativeStride is returned by Composition when either operand
	// carries a negative-stride mode. The source library's composition
	// is untested against negative strides ("cosize, negative stride is
	// not supported"); this package rejects rather than silently
	// miscomputes.
	ErrNegativeStride = errors.New("moye: composition does not support negative strides")
)
