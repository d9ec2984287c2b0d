package moye

// Complement returns the layout B such that concatenating A and B (as
// independent modes) produces a layout whose image is exactly [0,
// target), with no overlaps and no gaps other than what target forces.
// Complement is the construction logical_product, logical_divide and
// left_inverse use to fill in "everything A's layout doesn't already cover."
//
// The algorithm sorts A's flattened modes by ascending stride, then walks
// them tracking the reach of everything seen so far (current_stride,
// initially 1): each mode's stride must sit exactly current_stride *
// (some integer) past the previous reach, contributing a gap-filling mode
// of that size at the current stride before the reach advances past the
// mode itself (current_stride becomes stride*shape). A zero-stride or
// size-1 mode is transparent to A's image and is skipped entirely. A
// final mode fills up to target with ceil(target/reach) elements — the
// one place this algorithm tolerates an inexact fit, since target is a
// requested buffer size rather than a property of A.
//
// Complement reports ErrDivisibility if a mode's stride does not land on
// a multiple of the current reach, meaning A's modes overlap or are
// listed out of the order this layout's strides actually imply.
func Complement(A Layout, target Int) (Layout, error) {
	sorted := sortByStrideAsc(modesOf(A))

	var resultModes []mode
	currentStride := One()
	for _, m := range sorted {
		if m.shape.Value() == 1 || m.stride.Value() == 0 {
			continue
		}
		gapShape, err := ShapeDiv(m.stride, currentStride)
		if err != nil {
			return Layout{}, err
		}
		resultModes = append(resultModes, mode{shape: gapShape, stride: currentStride})
		currentStride = MulInt(m.stride, m.shape)
	}

	trailingShape := CeilDiv(target, currentStride)
	resultModes = append(resultModes, mode{shape: trailingShape, stride: currentStride})

	return Coalesce(layoutFromModes(resultModes)), nil
}
