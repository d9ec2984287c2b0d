package moye

// MakeLayoutConcat concatenates modes: the result's shape is
// (shape(L1), shape(L2), ...) and likewise for stride, the constructor
// make_layout(L1, L2, ...) uses to build a layout out of independently
// built sub-layouts (the product family returns its answer in this form).
func MakeLayoutConcat(layouts ...Layout) Layout {
	shapes := make([]IntTuple, len(layouts))
	strides := make([]IntTuple, len(layouts))
	for i, L := range layouts {
		shapes[i] = L.shape
		strides[i] = L.stride
	}
	return Layout{shape: Node(shapes...), stride: Node(strides...)}
}

// AppendLayout returns L with sub padded onto the end as a new top-level
// mode, the layout-level lift of Append.
func AppendLayout(L, sub Layout) Layout {
	return Layout{shape: Append(L.shape, sub.shape), stride: Append(L.stride, sub.stride)}
}

// PrependLayout returns L with sub inserted as a new leading top-level
// mode.
func PrependLayout(L, sub Layout) Layout {
	return Layout{shape: Prepend(L.shape, sub.shape), stride: Prepend(L.stride, sub.stride)}
}

// ReplaceLayout returns L with its i'th top-level mode replaced by sub.
func ReplaceLayout(L Layout, i int, sub Layout) Layout {
	return Layout{shape: Replace(L.shape, i, sub.shape), stride: Replace(L.stride, i, sub.stride)}
}

// GroupLayout returns L with top-level modes [begin, end) folded into a
// single nested mode, the layout-level lift of Group.
func GroupLayout(L Layout, begin, end int) Layout {
	return Layout{shape: Group(L.shape, begin, end), stride: Group(L.stride, begin, end)}
}

// TransposeLayout returns L with its two top-level axes swapped; L's shape
// must be a rank-2 tuple of equal-rank tuples, the same constraint
// IntTuple's Transpose imposes.
func TransposeLayout(L Layout) Layout {
	return Layout{shape: Transpose(L.shape), stride: Transpose(L.stride)}
}
