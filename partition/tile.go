// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package partition implements local_tile and local_partition, the
// tile-partitioning primitives that drive how threads carve a global
// tensor into per-thread views: [LocalTile] splits a layout into a grid
// of equal tiles and selects one by tile coordinate; [LocalPartition]
// further splits one tile among threads and selects one thread's column.
// [Tile] and [Partition] lift both to [array.MoYeArray], the level a
// kernel actually calls them at.
package partition

import "github.com/gogpu/moye"

// LocalTile divides L into a grid of tiler-shaped tiles via
// [moye.ZippedDivide], then selects the tile at coord (a coordinate into
// the across-tiles mode), returning that one tile's own layout. coord's
// rank must match tiler's rank.
func LocalTile(L, tiler moye.Layout, coord moye.IntTuple) (moye.Layout, error) {
	zipped, err := moye.ZippedDivide(L, tiler)
	if err != nil {
		return moye.Layout{}, err
	}
	sliceCoord := moye.Node(moye.Leaf(moye.Underscore()), coord)
	return moye.Slice(zipped, sliceCoord), nil
}

// LocalPartition divides L into tiles shaped like threadLayout's shape,
// then selects the column of the inside-tile mode that threadLayout maps
// threadID to: threadLayout is evaluated at threadID to get a linear
// position within one tile, which becomes the (1-based) coordinate
// [moye.Slice] fixes the inside mode to.
func LocalPartition(L, threadLayout moye.Layout, threadID moye.IntTuple) (moye.Layout, error) {
	tiler := moye.MakeLayoutColMajor(threadLayout.Shape())
	zipped, err := moye.ZippedDivide(L, tiler)
	if err != nil {
		return moye.Layout{}, err
	}
	linear := moye.AddInt(threadLayout.Index(threadID), moye.One())
	sliceCoord := moye.Node(moye.Leaf(linear), moye.Leaf(moye.Underscore()))
	return moye.Slice(zipped, sliceCoord), nil
}
