package moye

// Shape is a semantic alias for IntTuple used wherever a tree describes
// extents rather than strides. The two are structurally identical; the
// alias exists purely so signatures read the way layout algebra prose
// conventionally does: shapes and strides, not two IntTuples.
type Shape = IntTuple

// Stride is a semantic alias for IntTuple used wherever a tree describes
// per-mode strides.
type Stride = IntTuple

// Size returns the total element count spanned by shape: the product of
// every leaf extent. The empty shape and a leaf of 1 both have size 1.
func Size(shape Shape) Int {
	leaves := shape.Flatten()
	acc := One()
	for _, v := range leaves {
		acc = MulInt(acc, v)
	}
	return acc
}

// CompactColMajor returns the column-major (left-to-right, fastest-varying
// first) compact stride congruent to shape: each leaf's stride is the
// running product of every extent to its left. This is the default stride
// a bare Shape-only layout is given, matching the source library's
// make_layout(shape) overload.
func CompactColMajor(shape Shape) Stride {
	return compactStride(shape, One(), false)
}

// CompactRowMajor returns the row-major (right-to-left, fastest-varying
// last) compact stride congruent to shape: each leaf's stride is the
// running product of every extent to its right.
func CompactRowMajor(shape Shape) Stride {
	return compactStride(shape, One(), true)
}

// compactStride walks shape left-to-right (or right-to-left when rowMajor)
// accumulating a running product, assigning each leaf the product of the
// extents already visited. It returns a tree congruent to shape.
func compactStride(shape Shape, start Int, rowMajor bool) Stride {
	acc := start
	return compactStrideRec(shape, &acc, rowMajor)
}

func compactStrideRec(shape Shape, acc *Int, rowMajor bool) Stride {
	if shape.leaf {
		s := *acc
		*acc = MulInt(*acc, shape.value)
		return Leaf(s)
	}
	cs := shape.Children()
	out := make([]IntTuple, len(cs))
	if rowMajor {
		for i := len(cs) - 1; i >= 0; i-- {
			out[i] = compactStrideRec(cs[i], acc, rowMajor)
		}
	} else {
		for i := range cs {
			out[i] = compactStrideRec(cs[i], acc, rowMajor)
		}
	}
	return Node(out...)
}

// ShapeDivTuple divides the congruent tuple a by b leaf-wise, returning a
// tuple congruent to a (and to b, when b is not a scalar standing in for
// all of a). It is the tuple-level lift of ShapeDiv.
func ShapeDivTuple(a, b IntTuple) (IntTuple, error) {
	if a.leaf && b.leaf {
		v, err := ShapeDiv(a.value, b.value)
		if err != nil {
			return IntTuple{}, err
		}
		return Leaf(v), nil
	}
	if b.leaf {
		// A scalar b divides every leaf of a by the same amount.
		cs := a.Children()
		out := make([]IntTuple, len(cs))
		for i, c := range cs {
			v, err := ShapeDivTuple(c, b)
			if err != nil {
				return IntTuple{}, err
			}
			out[i] = v
		}
		return Node(out...), nil
	}
	if a.leaf {
		return IntTuple{}, ErrRankMismatch
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return IntTuple{}, ErrRankMismatch
	}
	out := make([]IntTuple, len(ac))
	for i := range ac {
		v, err := ShapeDivTuple(ac[i], bc[i])
		if err != nil {
			return IntTuple{}, err
		}
		out[i] = v
	}
	return Node(out...), nil
}
