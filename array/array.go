package array

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/moye"
)

// MoYeArray pairs an [Engine] with a [moye.Layout]: indexing A[c] evaluates
// layout(c) to a linear offset and returns the engine's element at that
// offset. A is the library's tensor abstraction — everything a kernel
// reads or writes through is a MoYeArray, whether backed by an owning
// stack buffer or a view into someone else's memory.
type MoYeArray[T any] struct {
	engine Engine[T]
	layout moye.Layout
}

// NewOwning builds a MoYeArray backed by a fresh, zero-valued ArrayEngine
// sized to layout's cosize, the buffer length the layout can address.
func NewOwning[T any](layout moye.Layout) *MoYeArray[T] {
	return &MoYeArray[T]{engine: NewArrayEngine[T](int(layout.Cosize().Value())), layout: layout}
}

// NewView builds a non-owning MoYeArray over base with the given layout.
func NewView[T any](layout moye.Layout, base []T) MoYeArray[T] {
	return MoYeArray[T]{engine: NewViewEngine(base), layout: layout}
}

// Layout returns A's layout.
func (A *MoYeArray[T]) Layout() moye.Layout { return A.layout }

// Engine returns A's storage engine.
func (A *MoYeArray[T]) Engine() Engine[T] { return A.engine }

// Size returns the number of logical coordinates A's layout accepts.
func (A *MoYeArray[T]) Size() int64 { return A.layout.Size().Value() }

// At evaluates layout(coord) to a linear offset and returns the element
// there. coord must not contain a wildcard; use [View] for slicing
// coordinates.
func (A *MoYeArray[T]) At(coord moye.IntTuple) T {
	return A.engine.Data()[A.layout.Index(coord).Value()]
}

// Set evaluates layout(coord) to a linear offset and stores v there.
func (A *MoYeArray[T]) Set(coord moye.IntTuple, v T) {
	A.engine.Data()[A.layout.Index(coord).Value()] = v
}

// View returns a non-owning MoYeArray over the modes coord leaves
// wildcarded (via [moye.Underscore]), with the base pointer advanced by
// the linear offset the fixed (non-wildcard) coordinates select. If coord
// is entirely wildcards, View returns an equivalent non-owning array over
// the same layout with no offset, matching the identity case the source
// library's view() gives an all-placeholder slice.
func View[T any](A *MoYeArray[T], coord moye.IntTuple) MoYeArray[T] {
	sliced, offset := moye.SliceAndOffset(A.layout, coord)
	base := A.engine.Data()[int(offset.Value()):]
	return MoYeArray[T]{engine: NewViewEngine(base), layout: sliced}
}

// sizeOfBits returns the size in bits of one T, the same comparison
// [moye.Recast] uses to choose between Upcast, Downcast, and identity.
func sizeOfBits[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero)) * 8
}

// Recast reinterprets A's element type as NewT, recasting its layout via
// [moye.Recast]. The backing bytes are reinterpreted in place (an
// unsafe.Slice reinterpretation of the same memory, the Go equivalent of
// the source library's reinterpret_cast of the underlying pointer) rather
// than copied.
func Recast[NewT, OldT any](A *MoYeArray[OldT]) (MoYeArray[NewT], error) {
	oldBits, newBits := sizeOfBits[OldT](), sizeOfBits[NewT]()
	newLayout, err := moye.Recast(A.layout, oldBits, newBits)
	if err != nil {
		return MoYeArray[NewT]{}, fmt.Errorf("array: recast: %w", err)
	}

	oldBase := A.engine.Data()
	if len(oldBase) == 0 {
		return MoYeArray[NewT]{engine: NewViewEngine[NewT](nil), layout: newLayout}, nil
	}
	totalBytes := int64(len(oldBase)) * (oldBits / 8)
	newLen := totalBytes / (newBits / 8)

	newBase := unsafe.Slice((*NewT)(unsafe.Pointer(&oldBase[0])), newLen)
	return MoYeArray[NewT]{engine: NewViewEngine(newBase), layout: newLayout}, nil
}

// Similar returns a new owning array with the same layout as A but
// element type NewT.
func Similar[NewT, OldT any](A *MoYeArray[OldT]) *MoYeArray[NewT] {
	return NewOwning[NewT](A.layout)
}

// MakeFragmentLike returns an owning array shaped like A: a layout
// congruent to A's shape, compact on mode 0, with every other top-level
// mode ordered by A's own original stride order for a fully static,
// rank >= 2 layout. The contract for mixed static/dynamic inputs is left
// undefined upstream, so those (and rank < 2 shapes) fall back to the
// plain compact column-major layout the source library itself uses for
// dynamic inputs — see DESIGN.md.
func MakeFragmentLike[T any](A *MoYeArray[T]) *MoYeArray[T] {
	return NewOwning[T](moye.MakeFragmentLikeLayout(A.layout))
}

func (A *MoYeArray[T]) String() string {
	return fmt.Sprintf("MoYeArray[%T]{%s}", *new(T), A.layout)
}
