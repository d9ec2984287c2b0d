// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package execenv

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// defaultSharedBufferUsage mirrors the storage-buffer usage combination
// internal/gpu/render_session.go builds its compute buffers with: readable
// and writable by shaders, and a valid destination for the host's initial
// upload.
const defaultSharedBufferUsage = gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst | gputypes.BufferUsageCopySrc

// GPUEnvironmentConfig configures a [GPUEnvironment] with the same
// validate-then-default construction pattern used throughout the gogpu
// stack: zero values are filled in rather than rejected, and only
// genuinely invalid combinations return an error.
type GPUEnvironmentConfig struct {
	// Device provides the GPU device, queue, and adapter this environment
	// dispatches against. Required.
	Device gpucontext.DeviceProvider

	// GridDim and BlockDim set the dispatch shape. Each axis defaults to 1
	// if left zero.
	GridDim  [3]uint32
	BlockDim [3]uint32

	// ComputePass, if set, is the already-begun compute pass encoder
	// [GPUEnvironment.DispatchWorkgroups] forwards to. Left nil, dispatch
	// calls are a no-op, the same way ThreadID/BlockID have no host-side
	// value on a real device.
	ComputePass *core.CoreComputePassEncoder

	// SharedBufferUsage is the usage flags a real allocator would create
	// AllocSharedBytes's backing buffer with. Defaults to
	// defaultSharedBufferUsage.
	SharedBufferUsage gputypes.BufferUsage
}

// GPUEnvironment is the production [Environment], backed by a real device
// reached through [gpucontext.DeviceProvider] — received from the host
// application rather than created here, the same way a renderer receives
// its device rather than opening one itself. Shared memory is modeled as
// host-visible bytes the device-side compute pass is expected to bind as
// its workgroup-shared storage; that binding is the kernel compiler's job,
// out of this library's scope. GPUEnvironment's contribution is the
// layout-driven bookkeeping (size, strategy selection) a launch needs
// before it can hand off to that compiler.
type GPUEnvironment struct {
	device      gpucontext.DeviceProvider
	grid        [3]uint32
	block       [3]uint32
	computePass *core.CoreComputePassEncoder
	sharedUsage gputypes.BufferUsage

	mu     sync.Mutex
	shared [][]byte
}

var _ Environment = (*GPUEnvironment)(nil)

// NewGPUEnvironment validates cfg, applies defaults, and returns a ready
// GPUEnvironment.
func NewGPUEnvironment(cfg GPUEnvironmentConfig) (*GPUEnvironment, error) {
	if cfg.Device == nil {
		return nil, fmt.Errorf("execenv: device is required")
	}
	grid, block := cfg.GridDim, cfg.BlockDim
	for i := range grid {
		if grid[i] == 0 {
			grid[i] = 1
		}
		if block[i] == 0 {
			block[i] = 1
		}
	}
	usage := cfg.SharedBufferUsage
	if usage == 0 {
		usage = defaultSharedBufferUsage
	}
	return &GPUEnvironment{
		device:      cfg.Device,
		grid:        grid,
		block:       block,
		computePass: cfg.ComputePass,
		sharedUsage: usage,
	}, nil
}

// AllocSharedBytes returns n zeroed host-visible bytes. A production
// compute pass binds these to the compiled shader's workgroup-shared
// variable; GPUEnvironment itself only tracks the allocation's lifetime,
// the bookkeeping a launch needs before handing off to the shader
// compiler that actually creates the on-chip resource.
func (e *GPUEnvironment) AllocSharedBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("execenv: alloc_shared: negative size %d", n)
	}
	buf := make([]byte, n)
	e.mu.Lock()
	e.shared = append(e.shared, buf)
	e.mu.Unlock()
	return buf, nil
}

func (e *GPUEnvironment) GridDim() (x, y, z uint32)  { return e.grid[0], e.grid[1], e.grid[2] }
func (e *GPUEnvironment) BlockDim() (x, y, z uint32) { return e.block[0], e.block[1], e.block[2] }

// ThreadID and BlockID have no host-side value for a real device: see
// [Environment].
func (e *GPUEnvironment) ThreadID() uint32          { return 0 }
func (e *GPUEnvironment) BlockID() (x, y, z uint32) { return 0, 0, 0 }

// SyncThreads is a shader-internal barrier the host cannot observe or
// trigger; it is a no-op here. The compiled kernel issues the real
// barrier instruction itself.
func (e *GPUEnvironment) SyncThreads() {}

// CPAsyncWait is a no-op on the host: it does not end or otherwise touch
// the configured compute pass. Like SyncThreads, the real wait is issued
// inside the compiled kernel.
func (e *GPUEnvironment) CPAsyncWait() {}

// Device returns the underlying device handle.
func (e *GPUEnvironment) Device() gpucontext.DeviceProvider { return e.device }

// SharedBufferUsage returns the usage flags a real allocator creates
// AllocSharedBytes's backing buffer with.
func (e *GPUEnvironment) SharedBufferUsage() gputypes.BufferUsage { return e.sharedUsage }

// DispatchWorkgroups dispatches x*y*z workgroups on the configured
// compute pass, the ThreadGrid realization of the grid [GridDim] and
// [BlockDim] describe — grounded directly on
// internal/gpu/compute_pass.go's ComputePassEncoder.DispatchWorkgroups,
// which forwards to the same core.CoreComputePassEncoder.Dispatch call.
// A nil ComputePass (the zero-value GPUEnvironment, or one built without
// one) makes this a no-op, matching ThreadID/BlockID's host-side zero
// value for capabilities a real device only exposes inside the compiled
// shader.
func (e *GPUEnvironment) DispatchWorkgroups(x, y, z uint32) {
	if e.computePass == nil {
		return
	}
	e.computePass.Dispatch(x, y, z)
}
