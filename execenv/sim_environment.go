// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package execenv

import (
	"fmt"
	"sync"

	"github.com/gogpu/moye/internal/parallel"
)

// simBlock is the state one simulated thread block shares: its dispatch
// shape, its shared-memory arena, and a reusable barrier every thread in
// the block waits on at SyncThreads.
type simBlock struct {
	gridDim  [3]uint32
	blockDim [3]uint32
	blockID  [3]uint32

	mu      sync.Mutex
	cond    *sync.Cond
	arrived int
	size    int
	gen     int

	sharedMu sync.Mutex
	shared   [][]byte
}

func newSimBlock(gridDim, blockDim, blockID [3]uint32) *simBlock {
	b := &simBlock{gridDim: gridDim, blockDim: blockDim, blockID: blockID,
		size: int(blockDim[0]) * int(blockDim[1]) * int(blockDim[2])}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// barrier implements a classic generation-counted reusable barrier: each
// arriving goroutine waits until the gen it observed on arrival advances,
// which only the last arriver causes.
func (b *simBlock) barrier() {
	b.mu.Lock()
	defer b.mu.Unlock()
	myGen := b.gen
	b.arrived++
	if b.arrived == b.size {
		b.arrived = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for b.gen == myGen {
		b.cond.Wait()
	}
}

func (b *simBlock) allocBytes(n int) []byte {
	buf := make([]byte, n)
	b.sharedMu.Lock()
	b.shared = append(b.shared, buf)
	b.sharedMu.Unlock()
	return buf
}

// SimEnvironment is one simulated GPU thread's [Environment]: a CPU
// goroutine's view of its thread/block coordinates and the block-shared
// state ([simBlock]) it barriers and allocates against. It is what a
// kernel function written against this library actually runs under when
// driven by [RunGrid], letting tiling and partitioning logic be exercised
// without a GPU device; RunGrid hands each simulated thread of each block
// to a [parallel.WorkerPool] as one work item.
type SimEnvironment struct {
	block    *simBlock
	threadID uint32
	local    [3]uint32
}

var _ Environment = (*SimEnvironment)(nil)

func (e *SimEnvironment) AllocSharedBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("execenv: alloc_shared: negative size %d", n)
	}
	return e.block.allocBytes(n), nil
}

func (e *SimEnvironment) GridDim() (x, y, z uint32) {
	g := e.block.gridDim
	return g[0], g[1], g[2]
}

func (e *SimEnvironment) BlockDim() (x, y, z uint32) {
	b := e.block.blockDim
	return b[0], b[1], b[2]
}

func (e *SimEnvironment) ThreadID() uint32 { return e.threadID }

func (e *SimEnvironment) BlockID() (x, y, z uint32) {
	id := e.block.blockID
	return id[0], id[1], id[2]
}

func (e *SimEnvironment) SyncThreads() { e.block.barrier() }

// CPAsyncWait has nothing to wait on in simulation: every shared-memory
// write from this goroutine is already visible to others the instant it
// happens, Go's memory model notwithstanding data races on the same
// address — callers still race exactly as they would on a real device if
// they skip SyncThreads between a write and a dependent read.
func (e *SimEnvironment) CPAsyncWait() {}

// RunGrid dispatches a grid of gridDim blocks, each of blockDim threads,
// running kernel once per simulated thread on pool — the CPU-side
// counterpart to a real device's DispatchWorkgroups. A kernel that panics
// leaves its block's barrier permanently unreached by the surviving
// threads of that block; RunGrid does not recover from that, the same way
// a real device's lockup is not something the host driver can paper over.
func RunGrid(pool *parallel.WorkerPool, gridDim, blockDim [3]uint32, kernel func(env *SimEnvironment)) error {
	numBlocks := int(gridDim[0]) * int(gridDim[1]) * int(gridDim[2])
	numThreads := int(blockDim[0]) * int(blockDim[1]) * int(blockDim[2])
	if numBlocks == 0 || numThreads == 0 {
		return nil
	}

	work := make([]func(), 0, numBlocks*numThreads)
	for bz := uint32(0); bz < gridDim[2]; bz++ {
		for by := uint32(0); by < gridDim[1]; by++ {
			for bx := uint32(0); bx < gridDim[0]; bx++ {
				block := newSimBlock(gridDim, blockDim, [3]uint32{bx, by, bz})
				for t := 0; t < numThreads; t++ {
					env := &SimEnvironment{block: block, threadID: uint32(t)}
					work = append(work, func() { kernel(env) })
				}
			}
		}
	}
	pool.ExecuteAll(work)
	return nil
}
