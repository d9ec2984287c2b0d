package moye

// Composition computes A∘B: the layout congruent to B's shape whose
// Index function is Index_B followed by Index_A, i.e. (A∘B)(c) =
// A(B(c)). Composition is the operation every tiling primitive in this
// package (local_tile, logical_divide, ...) is ultimately built from.
//
// When B's shape is a leaf (B is a single integer mode s:d), composition
// reduces to composing that one mode against A's flattened leaves: skip
// past the first d elements of A's colexicographic domain, then take the
// next s elements walking A's remaining modes one at a time. When B is
// hierarchical, each of its top-level modes is composed against all of A
// independently and reassembled with B's own tuple structure.
//
// Composition reports ErrDivisibility if the skip offset or the take
// count doesn't land on a mode boundary of A, the condition under which
// A∘B cannot be expressed as a static layout at all.
func Composition(A, B Layout) (Layout, error) {
	if err := rejectNegativeStrides(A); err != nil {
		return Layout{}, err
	}
	if err := rejectNegativeStrides(B); err != nil {
		return Layout{}, err
	}
	if B.shape.leaf {
		modes, err := composeOneMode(A, B.shape.value, B.stride.value)
		if err != nil {
			return Layout{}, err
		}
		return layoutFromModes(modes).maybeUnwrap(), nil
	}
	n := B.Rank()
	shapeParts := make([]IntTuple, n)
	strideParts := make([]IntTuple, n)
	for i := range n {
		sub, err := Composition(A, B.Sublayout(i))
		if err != nil {
			return Layout{}, err
		}
		shapeParts[i] = sub.shape
		strideParts[i] = sub.stride
	}
	return Layout{shape: Node(shapeParts...), stride: Node(strideParts...)}, nil
}

// maybeUnwrap returns L's single leaf directly, unwrapped from its
// enclosing Node, when L has exactly one flattened mode. composeOneMode
// always builds a flat Node even for a single-mode result; unwrapping
// here keeps Composition's output shape a plain leaf in that common case,
// matching how a (4:4) input composes to a (4:4) leaf output rather than
// a rank-1 tuple of one.
func (L Layout) maybeUnwrap() Layout {
	if L.shape.Rank() == 1 {
		return Layout{shape: L.shape.Get(0), stride: L.stride.Get(0)}
	}
	return L
}

// rejectNegativeStrides reports ErrNegativeStride if any flattened leaf
// of L carries a negative stride; composition's skip/take arithmetic
// assumes non-negative strides throughout (see ErrNegativeStride).
func rejectNegativeStrides(L Layout) error {
	for _, m := range modesOf(L) {
		if m.stride.Value() < 0 {
			return ErrNegativeStride
		}
	}
	return nil
}

// composeOneMode composes the single integer mode (s:d) against A,
// returning the resulting flattened modes.
//
// Phase 1 (skip) walks A's flattened leaves consuming whole modes while
// the remaining skip count d covers the mode's full extent (remaining >=
// ai): that mode contributes nothing to the output and is dropped
// entirely. The first mode the skip count does not fully cover (remaining
// < ai) is cut: its extent shrinks to ai/remaining and its stride scales
// up by remaining, becoming the first element of the residual mode list
// fed to phase 2. Every later mode of A is carried into that residual
// list untouched.
//
// Phase 2 (take, see composeUnitStride) walks the residual list taking
// whole modes until the take count s is satisfied, dividing s down by
// each mode's extent as it is fully consumed.
func composeOneMode(A Layout, s, d Int) ([]mode, error) {
	leaves := modesOf(A)
	remaining := d
	extend := Zero()
	var rest []mode

	i := 0
	for i < len(leaves) {
		ai := leaves[i].shape
		di := leaves[i].stride
		extend = MulInt(ai, di)

		if remaining.Value() == 0 {
			// B's stride is 0: every coordinate maps to A(0) == 0.
			return []mode{{shape: s, stride: Zero()}}, nil
		}
		if remaining.Value() < ai.Value() {
			newShape, err := ShapeDiv(ai, remaining)
			if err != nil {
				return nil, err
			}
			rest = append(rest, mode{shape: newShape, stride: MulInt(di, remaining)})
			rest = append(rest, leaves[i+1:]...)
			break
		}

		var err error
		remaining, err = ShapeDiv(remaining, ai)
		if err != nil {
			return nil, err
		}
		i++
	}

	return composeUnitStride(s, rest, extend)
}

// composeUnitStride walks rest, a list of modes already positioned at the
// correct starting offset, taking elements until s of them are consumed.
// A mode that only partially satisfies the remaining need is truncated to
// exactly that remaining extent (no further division required); a mode
// that is fully consumed divides the remaining need down by its extent
// and composeUnitStride continues to the next mode.
//
// If rest is exhausted before s is satisfied, a virtual trailing mode
// (remaining : extend) is emitted, extrapolating A's geometric stride
// pattern past its last real mode — the same extrapolation complement
// performs for the stride of its own trailing gap-filling mode.
func composeUnitStride(s Int, rest []mode, extend Int) ([]mode, error) {
	remaining := s
	var out []mode

	idx := 0
	for remaining.Value() > 1 && idx < len(rest) {
		m := rest[idx]
		ai := m.shape
		if remaining.Value() <= ai.Value() {
			out = append(out, mode{shape: remaining, stride: m.stride})
			remaining = One()
			break
		}
		out = append(out, mode{shape: ai, stride: m.stride})
		extend = MulInt(ai, m.stride)

		var err error
		remaining, err = ShapeDiv(remaining, ai)
		if err != nil {
			return nil, err
		}
		idx++
	}

	if remaining.Value() > 1 {
		out = append(out, mode{shape: remaining, stride: extend})
	}
	if len(out) == 0 {
		out = append(out, mode{shape: One(), stride: Zero()})
	}
	return out, nil
}
