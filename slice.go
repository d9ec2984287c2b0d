package moye

// sliceTrees walks shape/stride in lockstep with coord and collects the
// kept sub-trees: a leaf of coord that is Underscore() keeps its
// corresponding shape/stride subtree whole; a concrete leaf drops it. A
// nested coord that only partially matches (some wildcard descendants,
// some concrete) contributes a single kept mode that is itself a node of
// whatever survived one level down, which is how slicing a tile coordinate
// against a hierarchical mode produces a hierarchical result.
func sliceTrees(shape, stride, coord IntTuple, keepWild bool) (kept []IntTuple, keptStride []IntTuple) {
	if coord.leaf {
		if coord.value.IsWild() == keepWild {
			return []IntTuple{shape}, []IntTuple{stride}
		}
		return nil, nil
	}
	cc := coord.Children()
	var ks, kd []IntTuple
	for i, c := range cc {
		subKS, subKD := sliceTrees(shape.Get(i), stride.Get(i), c, keepWild)
		switch len(subKS) {
		case 0:
		case 1:
			ks = append(ks, subKS[0])
			kd = append(kd, subKD[0])
		default:
			ks = append(ks, Node(subKS...))
			kd = append(kd, Node(subKD...))
		}
	}
	return ks, kd
}

func treesToLayout(shapes, strides []IntTuple) Layout {
	if len(shapes) == 1 {
		return Layout{shape: shapes[0], stride: strides[0]}
	}
	return Layout{shape: Node(shapes...), stride: Node(strides...)}
}

// Slice returns the sub-layout of L selected by coord's Underscore()
// placeholders: a mode survives, in full, wherever coord carries a
// wildcard in that position, and is dropped wherever coord carries a
// concrete coordinate. coord must be congruent (or weakly congruent) to
// L's shape.
func Slice(L Layout, coord IntTuple) Layout {
	ks, kd := sliceTrees(L.shape, L.stride, coord, true)
	if len(ks) == 0 {
		return Layout{shape: Leaf(One()), stride: Leaf(Zero())}
	}
	return treesToLayout(ks, kd)
}

// Dice returns the dual of Slice: the sub-layout of the modes coord pins
// down with a concrete coordinate, dropping the wildcard modes. Composing
// Slice(L, c) and Dice(L, c) partitions L's modes into exactly two groups.
func Dice(L Layout, coord IntTuple) Layout {
	ks, kd := sliceTrees(L.shape, L.stride, coord, false)
	if len(ks) == 0 {
		return Layout{shape: Leaf(One()), stride: Leaf(Zero())}
	}
	return treesToLayout(ks, kd)
}

// resolveWildcards returns coord with every Underscore() leaf replaced by
// v, leaving concrete leaves untouched.
func resolveWildcards(coord IntTuple, v Int) IntTuple {
	if coord.leaf {
		if coord.value.IsWild() {
			return Leaf(v)
		}
		return coord
	}
	cs := coord.Children()
	out := make([]IntTuple, len(cs))
	for i, c := range cs {
		out[i] = resolveWildcards(c, v)
	}
	return Node(out...)
}

// SliceAndOffset returns the same sub-layout Slice does, paired with the
// linear offset L reaches at coord once every wildcard is pinned to
// position 1 (the first element along that mode). This is what view and
// local_tile/local_partition use to turn "keep these modes, fix the rest
// at this coordinate" into a (layout, base-pointer-adjustment) pair.
func SliceAndOffset(L Layout, coord IntTuple) (Layout, Int) {
	sliced := Slice(L, coord)
	resolved := resolveWildcards(coord, One())
	return sliced, L.Index(resolved)
}
