package moye

// LogicalDivide splits A into a rank-2 layout (Inside, Outside): Inside
// addresses one B-shaped tile of A, Outside addresses which tile. It is
// computed as composition(A, (B, complement(B, size(A)))) — B supplies
// the tile's own coordinate space, and complement(B, size(A)) supplies
// everything B's tile leaves uncovered, i.e. the tile-index space.
//
// B is treated as a single tiler over the whole of A's flattened domain,
// not mode-by-mode; use [ZippedDivide] or [TiledDivide] to divide each of
// A's top-level modes by a correspondingly-ranked tiler.
func LogicalDivide(A, B Layout) (Layout, error) {
	comp, err := Complement(B, Size(A.shape))
	if err != nil {
		return Layout{}, err
	}
	combined := Layout{
		shape:  Node(B.shape, comp.shape),
		stride: Node(B.stride, comp.stride),
	}
	return Composition(A, combined)
}

// perModeDivide runs [LogicalDivide] independently on each of A's
// top-level modes against the correspondingly-indexed mode of B, the
// step [ZippedDivide] and [TiledDivide] share before they differ in how
// they reassemble the per-mode (inside, outside) results.
func perModeDivide(A, B Layout) ([]Layout, error) {
	n := A.Rank()
	if B.Rank() != n {
		return nil, ErrRankMismatch
	}
	out := make([]Layout, n)
	for i := range n {
		d, err := LogicalDivide(A.Sublayout(i), B.Sublayout(i))
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// ZippedDivide divides each of A's top-level modes by the corresponding
// mode of B (tilers must match A's rank), then zips every mode's inside
// part into one tuple and every mode's outside part into another,
// returning a rank-2 layout (AllInside, AllOutside). This is the
// partition local_tile performs when it hands a thread block one
// contiguous (Inside) view indexed by (Outside) tile coordinates.
func ZippedDivide(A, B Layout) (Layout, error) {
	divided, err := perModeDivide(A, B)
	if err != nil {
		return Layout{}, err
	}
	insideShape := make([]IntTuple, len(divided))
	insideStride := make([]IntTuple, len(divided))
	outsideShape := make([]IntTuple, len(divided))
	outsideStride := make([]IntTuple, len(divided))
	for i, d := range divided {
		inside := d.Sublayout(0)
		outside := d.Sublayout(1)
		insideShape[i], insideStride[i] = inside.shape, inside.stride
		outsideShape[i], outsideStride[i] = outside.shape, outside.stride
	}
	return Layout{
		shape:  Node(Node(insideShape...), Node(outsideShape...)),
		stride: Node(Node(insideStride...), Node(outsideStride...)),
	}, nil
}

// TiledDivide divides each of A's top-level modes by the corresponding
// mode of B exactly like [ZippedDivide], but keeps every mode's inside
// part zipped into a single leading tuple while leaving each mode's
// outside part as its own separate top-level mode (rank = 1+rank(A))
// instead of zipping them together. This suits a caller that wants to
// index one tile axis at a time rather than through a single combined
// tile-index tuple.
func TiledDivide(A, B Layout) (Layout, error) {
	divided, err := perModeDivide(A, B)
	if err != nil {
		return Layout{}, err
	}
	n := len(divided)
	insideShape := make([]IntTuple, n)
	insideStride := make([]IntTuple, n)
	shapeParts := make([]IntTuple, 1+n)
	strideParts := make([]IntTuple, 1+n)
	for i, d := range divided {
		inside := d.Sublayout(0)
		outside := d.Sublayout(1)
		insideShape[i], insideStride[i] = inside.shape, inside.stride
		shapeParts[1+i], strideParts[1+i] = outside.shape, outside.stride
	}
	shapeParts[0] = Node(insideShape...)
	strideParts[0] = Node(insideStride...)
	return Layout{shape: Node(shapeParts...), stride: Node(strideParts...)}, nil
}
