package moye

// LogicalProduct tiles B copies of A arranged according to B's own shape
// and stride, returning a rank-2 layout whose first mode is A unchanged
// and whose second mode is B mapped through the "gaps" A leaves behind:
// complement(A, size(A)*size(B)) composed with B. This is the operation
// every other product in this file builds on.
func LogicalProduct(A, B Layout) (Layout, error) {
	target := MulInt(Size(A.shape), Size(B.shape))
	comp, err := Complement(A, target)
	if err != nil {
		return Layout{}, err
	}
	tiled, err := Composition(comp, B)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		shape:  Node(A.shape, tiled.shape),
		stride: Node(A.stride, tiled.stride),
	}, nil
}

// filler returns the stride-0, shape-1 mode used to pad a product's
// shorter operand out to the other's rank, the same identity mode
// RepeatLike and Filter treat as contributing nothing to a layout's
// image.
func filler() Layout { return Layout{shape: Leaf(One()), stride: Leaf(Zero())} }

// pairModes combines an A-repeat and a B-tile layout into a single mode
// by stacking them as a rank-2 node in the given order, without
// coalescing: blocked_product wants (A_i, B_i); raked_product wants
// (B_i, A_i), interleaving at the opposite granularity.
func pairModes(first, second Layout) Layout {
	return Layout{
		shape:  Node(first.shape, second.shape),
		stride: Node(first.stride, second.stride),
	}
}

// productByMode computes logical_product(A, B) and then re-pairs its two
// top-level modes rank by rank (padding the shorter operand with filler
// modes), calling combine(aMode, bMode) to build each output mode. This
// is the shared spine of [BlockedProduct] and [RakedProduct], which
// differ only in which operand of the pair comes first.
func productByMode(A, B Layout, combine func(aMode, bMode Layout) Layout) (Layout, error) {
	lp, err := LogicalProduct(A, B)
	if err != nil {
		return Layout{}, err
	}
	tiled := lp.Sublayout(1)

	rA, rB := A.Rank(), tiled.Rank()
	n := max(rA, rB)

	shapeParts := make([]IntTuple, n)
	strideParts := make([]IntTuple, n)
	for i := range n {
		aMode := filler()
		if i < rA {
			aMode = A.Sublayout(i)
		}
		bMode := filler()
		if i < rB {
			bMode = tiled.Sublayout(i)
		}
		merged := combine(aMode, bMode)
		shapeParts[i] = merged.shape
		strideParts[i] = merged.stride
	}
	return Layout{shape: Node(shapeParts...), stride: Node(strideParts...)}, nil
}

// BlockedProduct tiles B copies of A the way [LogicalProduct] does, but
// reshapes the result so each output mode pairs up A's i'th mode with the
// i'th mode of B's tiling, the arrangement a blocked (non-interleaved)
// partition of threads-over-values wants: mode i reads as "this many
// blocks of A, then this many tiles of B." The pair is kept as a rank-2
// mode even when the two sit contiguously in memory; it is not coalesced.
func BlockedProduct(A, B Layout) (Layout, error) {
	return productByMode(A, B, pairModes)
}

// RakedProduct tiles B copies of A like [BlockedProduct], but interleaves
// at the opposite granularity: each output mode pairs the tile mode
// before the block mode, producing the "raked" (striped) arrangement
// where consecutive tile elements are adjacent rather than consecutive
// block elements.
func RakedProduct(A, B Layout) (Layout, error) {
	return productByMode(A, B, func(aMode, bMode Layout) Layout {
		return pairModes(bMode, aMode)
	})
}
