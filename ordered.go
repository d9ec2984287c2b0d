package moye

import "sort"

// mode is a flattened (extent, stride) pair used internally by coalesce,
// complement, and composition, all of which reason about L one leaf mode
// at a time rather than through its hierarchy.
type mode struct {
	shape  Int
	stride Int
}

// modesOf flattens L into its leaf (shape, stride) pairs in depth-first
// order.
func modesOf(L Layout) []mode {
	shapes := L.shape.Flatten()
	strides := L.stride.Flatten()
	out := make([]mode, len(shapes))
	for i := range shapes {
		out[i] = mode{shape: shapes[i], stride: strides[i]}
	}
	return out
}

// layoutFromModes rebuilds a flat (rank-len(modes)) Layout from a mode
// slice, the inverse of modesOf.
func layoutFromModes(modes []mode) Layout {
	shapeLeaves := make([]IntTuple, len(modes))
	strideLeaves := make([]IntTuple, len(modes))
	for i, m := range modes {
		shapeLeaves[i] = Leaf(m.shape)
		strideLeaves[i] = Leaf(m.stride)
	}
	return Layout{shape: Node(shapeLeaves...), stride: Node(strideLeaves...)}
}

// sortByStrideAsc returns a copy of modes ordered by ascending stride,
// the canonical ordering complement's gap-filling algorithm walks modes
// in (ties broken by original position for a stable sort, matching the
// source library's std::stable_sort-based order_by_stride).
func sortByStrideAsc(modes []mode) []mode {
	out := make([]mode, len(modes))
	copy(out, modes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].stride.Value() < out[j].stride.Value()
	})
	return out
}

// MakeOrderedLayout builds a Layout with shape's extents but with strides
// assigned by the rank of each leaf position in order (an IntTuple of the
// same shape giving each leaf's sort key): the leaf whose order value is
// smallest gets the smallest stride, extents accumulate in that order the
// way compactStride accumulates in left-to-right order. This is used to
// build a layout congruent to shape whose memory order follows an
// explicit permutation rather than plain column- or row-major.
func MakeOrderedLayout(shape Shape, order IntTuple) Layout {
	shapeLeaves := shape.Flatten()
	orderLeaves := order.Flatten()
	n := len(shapeLeaves)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return orderLeaves[idx[a]].Value() < orderLeaves[idx[b]].Value()
	})

	strideLeaves := make([]Int, n)
	acc := One()
	for _, i := range idx {
		strideLeaves[i] = acc
		acc = MulInt(acc, shapeLeaves[i])
	}

	strideNodes := make([]IntTuple, n)
	for i, v := range strideLeaves {
		strideNodes[i] = Leaf(v)
	}
	return Layout{shape: shape, stride: reshapeLike(shape, strideNodes)}
}

// allStatic reports whether every leaf of t is a compile-time-known Int.
func allStatic(t IntTuple) bool {
	for _, v := range t.Flatten() {
		if !v.IsStatic() {
			return false
		}
	}
	return true
}

// MakeFragmentLikeLayout returns the layout array.MakeFragmentLike builds
// its owning fragment from: mode 0 keeps its place first (its own compact
// column-major sub-order), and for a fully static layout of rank >= 2 the
// remaining top-level modes are ordered by the ascending value of their
// own smallest original stride, matching the source library's
// fragment-layout ordering for higher-rank static layouts. A layout that
// is not fully static, or has rank < 2, falls back to the plain compact
// column-major layout over its shape — the contract for mixed
// static/dynamic inputs is left undefined upstream (see DESIGN.md), so
// this takes the same fallback the source library itself uses for
// dynamic inputs.
func MakeFragmentLikeLayout(L Layout) Layout {
	shape := L.shape
	if shape.leaf || shape.Rank() < 2 || !allStatic(shape) || !allStatic(L.stride) {
		return MakeLayoutColMajor(shape)
	}

	n := shape.Rank()
	repStride := make([]int64, n)
	for i := 0; i < n; i++ {
		leaves := L.stride.Get(i).Flatten()
		min := leaves[0].Value()
		for _, v := range leaves[1:] {
			if v.Value() < min {
				min = v.Value()
			}
		}
		repStride[i] = min
	}

	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}
	sort.SliceStable(rest, func(a, b int) bool { return repStride[rest[a]] < repStride[rest[b]] })

	rankOf := make([]int, n)
	for pos, i := range rest {
		rankOf[i] = pos + 1
	}

	orderNodes := make([]IntTuple, n)
	for i := 0; i < n; i++ {
		orderNodes[i] = RepeatLike(shape.Get(i), StaticInt(int64(rankOf[i])))
	}
	return MakeOrderedLayout(shape, Node(orderNodes...))
}

// reshapeLike rebuilds a tree congruent to shape from a flat, depth-first
// ordered list of leaves, the inverse of IntTuple.Flatten used wherever an
// algorithm computes a flat answer but must hand back a hierarchical one.
func reshapeLike(shape IntTuple, leaves []IntTuple) IntTuple {
	i := 0
	var build func(t IntTuple) IntTuple
	build = func(t IntTuple) IntTuple {
		if t.leaf {
			v := leaves[i]
			i++
			return v
		}
		cs := t.Children()
		out := make([]IntTuple, len(cs))
		for j, c := range cs {
			out[j] = build(c)
		}
		return Node(out...)
	}
	return build(shape)
}
