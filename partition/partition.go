package partition

import (
	"fmt"

	"github.com/gogpu/moye"
	"github.com/gogpu/moye/array"
)

// Tile returns a non-owning view of A restricted to the tile at coord,
// under an equal partitioning of A's layout into tiler-shaped blocks —
// the array-level local_tile a kernel calls once per thread block to get
// its own contiguous slice of a global tensor.
func Tile[T any](A *array.MoYeArray[T], tiler moye.Layout, coord moye.IntTuple) (array.MoYeArray[T], error) {
	zipped, err := moye.ZippedDivide(A.Layout(), tiler)
	if err != nil {
		return array.MoYeArray[T]{}, fmt.Errorf("partition: local_tile: %w", err)
	}
	whole := array.NewView[T](zipped, A.Engine().Data())
	sliceCoord := moye.Node(moye.Leaf(moye.Underscore()), coord)
	return array.View(&whole, sliceCoord), nil
}

// Partition returns a non-owning view of A selecting the column of its
// tiler-shaped tile that threadLayout maps threadID to — one thread's
// share of one tile, the array-level local_partition.
func Partition[T any](A *array.MoYeArray[T], threadLayout moye.Layout, threadID moye.IntTuple) (array.MoYeArray[T], error) {
	tiler := moye.MakeLayoutColMajor(threadLayout.Shape())
	zipped, err := moye.ZippedDivide(A.Layout(), tiler)
	if err != nil {
		return array.MoYeArray[T]{}, fmt.Errorf("partition: local_partition: %w", err)
	}
	whole := array.NewView[T](zipped, A.Engine().Data())
	linear := moye.AddInt(threadLayout.Index(threadID), moye.One())
	sliceCoord := moye.Node(moye.Leaf(linear), moye.Leaf(moye.Underscore()))
	return array.View(&whole, sliceCoord), nil
}
