package moye

// Coalesce merges adjacent modes of L that are contiguous in memory and
// drops modes of extent 1, producing the simplest layout that is
// function-equivalent to L (same Index result for every coordinate, under
// the colexicographic flattening both sides agree on).
//
// The fold runs right to left over L's flattened leaves, the same
// direction the source library's coalesce uses: two modes (s_i, d_i) and
// the already-folded mode to its right (s_r, d_r) merge into a single
// mode (s_i*s_r, d_i) exactly when d_r == s_i*d_i, i.e. the outer mode's
// stride lands precisely where the inner mode's reach ends.
func Coalesce(L Layout) Layout {
	leaves := modesOf(L)

	var acc []mode
	for i := len(leaves) - 1; i >= 0; i-- {
		m := leaves[i]
		if m.shape.Value() == 1 {
			continue
		}
		if len(acc) == 0 {
			acc = []mode{m}
			continue
		}
		front := acc[0]
		if front.stride.Value() == m.shape.Value()*m.stride.Value() {
			acc[0] = mode{
				shape:  MulInt(m.shape, front.shape),
				stride: m.stride,
			}
			continue
		}
		acc = append([]mode{m}, acc...)
	}

	if len(acc) == 0 {
		return Layout{shape: Leaf(One()), stride: Leaf(Zero())}
	}
	if len(acc) == 1 {
		return Layout{shape: Leaf(acc[0].shape), stride: Leaf(acc[0].stride)}
	}
	return layoutFromModes(acc)
}

// Filter removes every mode of L whose stride is 0 (a broadcast mode that
// contributes no information to the index function) by collapsing its
// extent to 1, then coalesces the result. Filter is the operation
// max_common_layout uses to discard the non-injective modes a caller's
// layout may carry before reasoning about its image.
func Filter(L Layout) Layout {
	leaves := modesOf(L)
	out := make([]mode, len(leaves))
	for i, m := range leaves {
		if m.stride.Value() == 0 {
			out[i] = mode{shape: One(), stride: m.stride}
		} else {
			out[i] = m
		}
	}
	return Coalesce(layoutFromModes(out))
}
