// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package moye implements the hierarchical layout algebra at the core of a
// GPU tensor-programming library modeled after CUTLASS/CuTe.
//
// A [Layout] is a compile-time composable map from a hierarchical logical
// coordinate space to a single linear index into a flat memory buffer. The
// package provides the shape/stride primitives the layout is built from
// ([IntTuple], compact strides, coordinate conversion) and the algebra that
// composes layouts together: [Coalesce], [Composition], [Complement],
// [LogicalProduct], [LogicalDivide], [RightInverse], and friends.
//
// # Architecture
//
// moye follows the gogpu/gg split between CPU-independent algorithms and
// GPU backends: the algebra in this package never touches a pointer or a
// device, it only manipulates shape and stride trees. Client packages
// apply a Layout to actual storage:
//
//   - [github.com/gogpu/moye/array] pairs a Layout with an owning or
//     non-owning element buffer (MoYeArray).
//   - [github.com/gogpu/moye/partition] carves a Layout into per-tile or
//     per-thread sub-layouts (local_tile, local_partition).
//   - [github.com/gogpu/moye/execenv] supplies the execution-environment
//     capabilities (shared memory, thread indexing, barriers) that a GPU
//     kernel built on top of this algebra needs, backed by the gogpu GPU
//     stack.
//
// # Key components
//
//   - [Int] and [IntTuple]: compile-time-aware integers and the
//     hierarchical tuples shapes and strides are built from.
//   - [Layout]: the (shape, stride) pair and its evaluation, slicing, and
//     mode-editing operations.
//   - The algebra: [Coalesce], [Filter], [Composition], [Complement],
//     [LogicalProduct]/[BlockedProduct]/[RakedProduct],
//     [LogicalDivide]/[ZippedDivide]/[TiledDivide], [RightInverse]/
//     [LeftInverse], [MaxCommonLayout], [Upcast]/[Downcast]/[Recast].
//
// # Coordinate convention
//
// Coordinates passed to [Layout.Index] are 1-based (matching the source
// library's Julia heritage): a coordinate leaf ranges over [1, extent].
// The linear index returned is 0-based and ready to use directly as a
// pointer offset — it is not further adjusted. Mixing the two
// conventions is the single most common source of off-by-one bugs when
// porting tiling code from the source library; every worked example in
// this package's tests was checked against that library's own output.
package moye
