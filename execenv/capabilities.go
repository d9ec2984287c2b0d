// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package execenv binds the layout algebra to an execution environment: the
// capabilities a kernel author needs beyond the pure algebra — shared-memory
// allocation, thread/block indexing, barriers, and the vectorized/async copy
// intrinsic selection max_common_vector drives. Two implementations ship:
// [GPUEnvironment], backed by a real gogpu device and compute pass, and
// [SimEnvironment], backed by a CPU goroutine pool, for exercising tiling and
// partitioning logic without a GPU present.
package execenv

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/moye"
	"github.com/gogpu/moye/array"
)

// Environment is the set of capabilities a kernel driver needs to provide:
// an allocator for on-chip shared memory, the thread/block coordinates a
// kernel invocation runs under, and the barriers that order memory
// visibility between threads.
type Environment interface {
	// AllocSharedBytes returns n freshly zeroed bytes of shared storage,
	// living for as long as the enclosing launch — backed by on-chip
	// shared memory on a real device, by an ordinary heap slice in
	// simulation. [AllocShared] builds the typed view kernels actually
	// want on top of this; Go has no generic interface methods, so the
	// byte-level primitive lives on the interface and the typed
	// reinterpretation lives in a free function, the same split
	// [array.Recast] uses for its own unsafe width change.
	AllocSharedBytes(n int) ([]byte, error)

	// GridDim and BlockDim return the dispatch's configured shape: how
	// many blocks are in the grid, and how many threads are in a block.
	GridDim() (x, y, z uint32)
	BlockDim() (x, y, z uint32)

	// ThreadID and BlockID return the calling thread's coordinates within
	// its block and the grid. These are meaningful only where the
	// environment actually runs per-thread Go code, i.e. [SimEnvironment];
	// [GPUEnvironment] has no host-side notion of an individual GPU
	// thread (that index exists only inside the compiled shader, which is
	// out of this library's scope) and returns the zero value.
	ThreadID() uint32
	BlockID() (x, y, z uint32)

	// SyncThreads blocks the calling thread until every thread in its
	// block has reached the same call.
	SyncThreads()

	// CPAsyncWait blocks until all previously issued asynchronous copies
	// have completed and are visible to subsequent reads.
	CPAsyncWait()
}

// CopyStrategy is the intrinsic a core selects to move data from src to
// dst, chosen from layout shape alone (max_common_vector) plus which
// address spaces are involved.
type CopyStrategy int

const (
	// CopyScalar moves one element at a time; chosen when no common
	// vectorizable sub-layout exists between src and dst.
	CopyScalar CopyStrategy = iota
	// CopyVectorized moves as many elements per instruction as the vector
	// width SelectCopyStrategy returns alongside it.
	CopyVectorized
	// CopyAsync issues an asynchronous (cp.async-style) copy, preferred
	// whenever the source is global memory and the destination is
	// shared memory, on top of whatever vector width applies.
	CopyAsync
)

func (s CopyStrategy) String() string {
	switch s {
	case CopyVectorized:
		return "vectorized"
	case CopyAsync:
		return "async"
	default:
		return "scalar"
	}
}

// MaxCommonVector returns size(max_common_layout(A, B)): the widest run of
// contiguous elements a single vectorized instruction can move between
// layouts A and B.
func MaxCommonVector(A, B moye.Layout) int64 {
	return moye.MaxCommonLayout(A, B).Size().Value()
}

// SelectCopyStrategy picks a [CopyStrategy] and vector width for copying
// src to dst: async whenever srcIsGlobal and dstIsShared, vectorized
// whenever max_common_vector(src, dst) exceeds one element, scalar
// otherwise. This decision is driven entirely by layouts and address-space
// flags, not by which [Environment] happens to be in use, so it lives here
// rather than on either environment implementation.
func SelectCopyStrategy(src, dst moye.Layout, srcIsGlobal, dstIsShared bool) (CopyStrategy, int64) {
	width := MaxCommonVector(src, dst)
	switch {
	case srcIsGlobal && dstIsShared:
		return CopyAsync, width
	case width > 1:
		return CopyVectorized, width
	default:
		return CopyScalar, width
	}
}

// AllocShared allocates layout.Cosize() elements of T from env's shared
// storage and returns a [array.MoYeArray] view over them under layout — the
// concrete realization of alloc_shared(T, count).
func AllocShared[T any](env Environment, layout moye.Layout) (array.MoYeArray[T], error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	n := int(layout.Cosize().Value())
	raw, err := env.AllocSharedBytes(n * width)
	if err != nil {
		return array.MoYeArray[T]{}, fmt.Errorf("execenv: alloc_shared: %w", err)
	}
	if len(raw) == 0 {
		return array.NewView[T](layout, nil), nil
	}
	base := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	return array.NewView[T](layout, base), nil
}
