package moye

import "fmt"

// Layout is a (Shape, Stride) pair: a compile-time composable function
// from a hierarchical logical coordinate to a single linear index. Shape
// and Stride must be congruent trees; a leaf's stride is how many
// elements to advance in memory for each unit step along that leaf's
// extent.
type Layout struct {
	shape  Shape
	stride Stride
}

// MakeLayout builds a Layout from an explicit shape and stride. The two
// must be congruent (same tree shape); MakeLayout panics otherwise, since
// a malformed layout is a programmer error in every call site this
// package has, not a recoverable input condition.
func MakeLayout(shape Shape, stride Stride) Layout {
	if !Congruent(shape, stride) {
		panic(fmt.Errorf("%w: shape %s vs stride %s", ErrShapeMismatch, shape, stride))
	}
	return Layout{shape: shape, stride: stride}
}

// MakeLayoutColMajor builds a Layout from shape alone, filling in a
// column-major compact stride.
func MakeLayoutColMajor(shape Shape) Layout {
	return Layout{shape: shape, stride: CompactColMajor(shape)}
}

// MakeLayoutRowMajor builds a Layout from shape alone, filling in a
// row-major compact stride.
func MakeLayoutRowMajor(shape Shape) Layout {
	return Layout{shape: shape, stride: CompactRowMajor(shape)}
}

// Shape returns L's shape tree.
func (L Layout) Shape() Shape { return L.shape }

// Stride returns L's stride tree.
func (L Layout) Stride() Stride { return L.stride }

// Rank returns the number of top-level modes in L.
func (L Layout) Rank() int { return L.shape.Rank() }

// Depth returns the deepest nesting level among L's modes.
func (L Layout) Depth() int { return L.shape.Depth() }

// Size returns the total number of logical coordinates L accepts: the
// product of every extent in its shape.
func (L Layout) Size() Int { return Size(L.shape) }

// Cosize returns one past the largest linear index L can produce: L(size(L)-1)+1.
// Cosize is the minimum buffer length a storage engine must allocate to
// back L safely.
func (L Layout) Cosize() Int {
	sz := L.Size().Value()
	if sz == 0 {
		return Zero()
	}
	last := indexOfColexOffset(L, sz-1)
	return AddInt(last, One())
}

// Sublayout returns the Layout of L's i'th top-level mode.
func (L Layout) Sublayout(i int) Layout {
	return Layout{shape: L.shape.Get(i), stride: L.stride.Get(i)}
}

// Flatten returns L with every level of hierarchy removed: a rank-N
// layout whose N modes are L's leaves in depth-first order.
func (L Layout) Flatten() Layout {
	return Layout{shape: L.shape.FlattenTuple(), stride: L.stride.FlattenTuple()}
}

// indexOfColexOffset computes the 0-based linear index of the coordinate
// that is offs steps into L's colexicographic (first-mode-fastest)
// enumeration. This underlies both Cosize (offs = size-1) and Index when
// given a bare integer coordinate.
func indexOfColexOffset(L Layout, offs int64) Int {
	leavesShape := L.shape.Flatten()
	leavesStride := L.stride.Flatten()
	rem := offs
	total := Zero()
	for i := range leavesShape {
		ext := leavesShape[i].Value()
		if ext == 0 {
			continue
		}
		c := rem % ext
		rem /= ext
		total = AddInt(total, MulInt(StaticInt(c), leavesStride[i]))
	}
	return total
}

// Index evaluates L at a hierarchical coordinate, returning the 0-based
// linear index. coord dispatches on shape, the same way the source
// library's operator() overloads on the kind of coordinate it is handed:
//
//   - a leaf coordinate against a rank>1 layout is treated as a single
//     1-based colexicographic offset into L's full coordinate space
//     (L.Flatten() semantics), exactly as L(i) means in the source
//     library when i is an integer rather than a tuple.
//   - a tuple coordinate whose rank matches L's rank is applied mode by
//     mode, recursively.
//
// Every leaf coordinate value is 1-based: a leaf with extent n accepts
// values in [1, n].
func (L Layout) Index(coord IntTuple) Int {
	if coord.leaf {
		if L.shape.leaf {
			return MulInt(SubInt(coord.value, One()), L.stride.value)
		}
		// Integer coordinate against a hierarchical layout: colexicographic
		// offset into the flattened coordinate space.
		return indexOfColexOffset(L, coord.value.Value()-1)
	}
	if L.shape.leaf {
		panic("moye: tuple coordinate against a leaf (rank-0) layout")
	}
	cc := coord.Children()
	if len(cc) != L.Rank() {
		panic(fmt.Errorf("%w: coordinate rank %d vs layout rank %d", ErrRankMismatch, len(cc), L.Rank()))
	}
	total := Zero()
	for i, c := range cc {
		total = AddInt(total, L.Sublayout(i).Index(c))
	}
	return total
}

func (L Layout) String() string {
	return fmt.Sprintf("%s:%s", L.shape, L.stride)
}
