package moye

import "testing"

func TestIntTupleRankDepthFlatten(t *testing.T) {
	tr := nd(lf(2), nd(lf(3), lf(4)), lf(5))
	if got, want := tr.Rank(), 3; got != want {
		t.Fatalf("rank = %d, want %d", got, want)
	}
	if got, want := tr.Depth(), 2; got != want {
		t.Fatalf("depth = %d, want %d", got, want)
	}
	flat := tr.Flatten()
	want := []int64{2, 3, 4, 5}
	if len(flat) != len(want) {
		t.Fatalf("flatten length = %d, want %d", len(flat), len(want))
	}
	for i, v := range want {
		if flat[i].Value() != v {
			t.Fatalf("flatten[%d] = %d, want %d", i, flat[i].Value(), v)
		}
	}
}

func TestCongruentAndWeaklyCongruent(t *testing.T) {
	a := nd(lf(2), nd(lf(3), lf(4)))
	b := nd(lf(9), nd(lf(1), lf(1)))
	if !Congruent(a, b) {
		t.Fatal("expected a and b to be congruent (same tree shape)")
	}
	c := nd(lf(2), lf(3), lf(4))
	if Congruent(a, c) {
		t.Fatal("expected a and c to not be congruent (different arity)")
	}
	if !WeaklyCongruent(lf(1), a) {
		t.Fatal("a leaf is weakly congruent to any shape")
	}
	if WeaklyCongruent(a, lf(1)) {
		t.Fatal("a non-leaf is not weakly congruent to a leaf")
	}
}

func TestHasWildcard(t *testing.T) {
	withWild := nd(lf(1), Leaf(Underscore()))
	if !HasWildcard(withWild) {
		t.Fatal("expected wildcard to be found")
	}
	withoutWild := nd(lf(1), lf(2))
	if HasWildcard(withoutWild) {
		t.Fatal("expected no wildcard")
	}
}

func TestInsertRemoveReplace(t *testing.T) {
	tr := nd(lf(1), lf(2), lf(3))
	ins := Insert(tr, 1, lf(9))
	if got, want := ins.String(), "(1,9,2,3)"; got != want {
		t.Fatalf("insert = %s, want %s", got, want)
	}
	rm := Remove(tr, 1)
	if got, want := rm.String(), "(1,3)"; got != want {
		t.Fatalf("remove = %s, want %s", got, want)
	}
	rep := Replace(tr, 1, lf(9))
	if got, want := rep.String(), "(1,9,3)"; got != want {
		t.Fatalf("replace = %s, want %s", got, want)
	}
}

func TestAppendPrependGroup(t *testing.T) {
	tr := nd(lf(1), lf(2))
	if got, want := Append(tr, lf(3)).String(), "(1,2,3)"; got != want {
		t.Fatalf("append = %s, want %s", got, want)
	}
	if got, want := Prepend(tr, lf(0)).String(), "(0,1,2)"; got != want {
		t.Fatalf("prepend = %s, want %s", got, want)
	}
	g := Group(nd(lf(1), lf(2), lf(3), lf(4)), 1, 3)
	if got, want := g.String(), "(1,(2,3),4)"; got != want {
		t.Fatalf("group = %s, want %s", got, want)
	}
}

func TestTranspose(t *testing.T) {
	tr := nd(nd(lf(1), lf(2), lf(3)), nd(lf(4), lf(5), lf(6)))
	got := Transpose(tr).String()
	want := "((1,4),(2,5),(3,6))"
	if got != want {
		t.Fatalf("transpose = %s, want %s", got, want)
	}
}

func TestEscan(t *testing.T) {
	tr := nd(lf(2), lf(3), lf(4))
	out := Escan(tr, MulInt, One())
	want := []int64{1, 2, 6}
	for i, v := range want {
		if out[i].Value() != v {
			t.Fatalf("escan[%d] = %d, want %d", i, out[i].Value(), v)
		}
	}
}

func TestRepeatLike(t *testing.T) {
	shape := nd(lf(2), nd(lf(3), lf(4)))
	got := RepeatLike(shape, Zero())
	want := nd(lf(0), nd(lf(0), lf(0)))
	if got.String() != want.String() {
		t.Fatalf("repeat_like = %s, want %s", got, want)
	}
}

func TestIntStaticDynamicPropagation(t *testing.T) {
	s := StaticInt(2)
	d := DynInt(3)
	if !AddInt(s, s).IsStatic() {
		t.Fatal("static+static should be static")
	}
	if AddInt(s, d).IsStatic() {
		t.Fatal("static+dynamic should be dynamic")
	}
	if AddInt(d, d).IsStatic() {
		t.Fatal("dynamic+dynamic should be dynamic")
	}
}

func TestShapeDivExactAndError(t *testing.T) {
	q, err := ShapeDiv(StaticInt(12), StaticInt(4))
	if err != nil {
		t.Fatalf("ShapeDiv: %v", err)
	}
	if q.Value() != 3 {
		t.Fatalf("12/4 = %d, want 3", q.Value())
	}
	if _, err := ShapeDiv(StaticInt(12), StaticInt(5)); err == nil {
		t.Fatal("expected ErrDivisibility for 12/5")
	}
}

func TestShapeDivByZeroExtent(t *testing.T) {
	q, err := ShapeDiv(StaticInt(7), Zero())
	if err != nil {
		t.Fatalf("ShapeDiv by zero extent: %v", err)
	}
	if q.Value() != 7 {
		t.Fatalf("shape_div(7,0) = %d, want 7 (passthrough)", q.Value())
	}
}

func TestCompactColMajorAndRowMajor(t *testing.T) {
	shape := nd(lf(2), lf(3), lf(4))
	cm := CompactColMajor(shape)
	if got, want := cm.String(), "(1,2,6)"; got != want {
		t.Fatalf("compact_col_major = %s, want %s", got, want)
	}
	rm := CompactRowMajor(shape)
	if got, want := rm.String(), "(12,4,1)"; got != want {
		t.Fatalf("compact_row_major = %s, want %s", got, want)
	}
}

func TestSizeOfShape(t *testing.T) {
	shape := nd(lf(2), nd(lf(3), lf(4)))
	if got, want := Size(shape).Value(), int64(24); got != want {
		t.Fatalf("size = %d, want %d", got, want)
	}
}

func TestMakeOrderedLayout(t *testing.T) {
	shape := nd(lf(2), lf(3), lf(4))
	order := nd(lf(2), lf(0), lf(1))
	L := MakeOrderedLayout(shape, order)
	if !Congruent(L.Shape(), L.Stride()) {
		t.Fatalf("ordered layout not congruent: %s", L)
	}
	// order says mode1 (extent 3) varies fastest, then mode2 (extent 4),
	// then mode0 (extent 2) slowest: strides should be (12,1,3).
	if got, want := L.String(), "(2,3,4):(12,1,3)"; got != want {
		t.Fatalf("make_ordered_layout = %s, want %s", got, want)
	}
}
