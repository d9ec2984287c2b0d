package moye

import "testing"

func TestMakeLayoutConcat(t *testing.T) {
	L1 := mustLayout(lf(2), lf(1))
	L2 := mustLayout(nd(lf(3), lf(4)), nd(lf(2), lf(6)))
	got := MakeLayoutConcat(L1, L2)
	if want := "(2,(3,4)):(1,(2,6))"; got.String() != want {
		t.Fatalf("concat = %s, want %s", got, want)
	}
}

func TestAppendPrependReplaceLayout(t *testing.T) {
	L := mustLayout(nd(lf(2), lf(3)), nd(lf(1), lf(2)))
	sub := mustLayout(lf(4), lf(6))

	if got, want := AppendLayout(L, sub).String(), "(2,3,4):(1,2,6)"; got != want {
		t.Fatalf("append layout = %s, want %s", got, want)
	}
	if got, want := PrependLayout(L, sub).String(), "(4,2,3):(6,1,2)"; got != want {
		t.Fatalf("prepend layout = %s, want %s", got, want)
	}
	if got, want := ReplaceLayout(L, 1, sub).String(), "(2,4):(1,6)"; got != want {
		t.Fatalf("replace layout = %s, want %s", got, want)
	}
}

func TestGroupAndTransposeLayout(t *testing.T) {
	L := mustLayout(nd(lf(2), lf(3), lf(4)), nd(lf(1), lf(2), lf(6)))
	g := GroupLayout(L, 1, 3)
	if want := "(2,(3,4)):(1,(2,6))"; g.String() != want {
		t.Fatalf("group layout = %s, want %s", g, want)
	}

	T := mustLayout(nd(nd(lf(1), lf(2)), nd(lf(3), lf(4))), nd(nd(lf(10), lf(20)), nd(lf(30), lf(40))))
	got := TransposeLayout(T)
	if want := "((1,3),(2,4)):((10,30),(20,40))"; got.String() != want {
		t.Fatalf("transpose layout = %s, want %s", got, want)
	}
}

func TestSliceAndDice(t *testing.T) {
	L := mustLayout(nd(lf(2), lf(3), lf(4)), nd(lf(1), lf(2), lf(6)))
	coord := nd(Leaf(Underscore()), lf(2), Leaf(Underscore()))

	sliced := Slice(L, coord)
	if want := "(2,4):(1,6)"; sliced.String() != want {
		t.Fatalf("slice = %s, want %s", sliced, want)
	}

	diced := Dice(L, coord)
	if want := "3:2"; diced.String() != want {
		t.Fatalf("dice = %s, want %s", diced, want)
	}
}

func TestSliceAndOffset(t *testing.T) {
	L := mustLayout(nd(lf(2), lf(3), lf(4)), nd(lf(1), lf(2), lf(6)))
	// Fix mode 1 at coordinate 2 (1-based), keep modes 0 and 2.
	coord := nd(Leaf(Underscore()), lf(2), Leaf(Underscore()))
	sliced, offset := SliceAndOffset(L, coord)
	if want := "(2,4):(1,6)"; sliced.String() != want {
		t.Fatalf("sliced layout = %s, want %s", sliced, want)
	}
	// Offset is L evaluated with the wildcards pinned to 1: mode1=2 (already
	// fixed), mode0=1, mode2=1 -> (1-1)*1 + (2-1)*2 + (1-1)*6 = 2.
	if want := int64(2); offset.Value() != want {
		t.Fatalf("offset = %d, want %d", offset.Value(), want)
	}
}

func TestSliceAllWildcardIsIdentity(t *testing.T) {
	L := mustLayout(nd(lf(2), lf(3)), nd(lf(1), lf(2)))
	coord := nd(Leaf(Underscore()), Leaf(Underscore()))
	sliced, offset := SliceAndOffset(L, coord)
	if sliced.String() != L.String() {
		t.Fatalf("slicing with all wildcards should be identity: got %s, want %s", sliced, L)
	}
	if offset.Value() != 0 {
		t.Fatalf("offset = %d, want 0", offset.Value())
	}
}
