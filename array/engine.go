// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package array implements MoYeArray, the (engine, layout) pair that is
// moye's tensor abstraction: a [moye.Layout] paired with either an owning,
// stack-allocated element buffer ([ArrayEngine]) or a non-owning pointer
// into someone else's storage ([ViewEngine]).
package array

import "fmt"

// Engine is the storage half of a MoYeArray: something that can hand back
// a mutable slice of T to index into. ArrayEngine and ViewEngine are the
// two engines this package ships; [github.com/gogpu/moye/execenv] adds no
// third one, and builds its shared-memory arrays as ViewEngine views over
// the byte storage its Environment allocates.
type Engine[T any] interface {
	// Data returns the full backing slice the engine owns or views. Index
	// arithmetic against a [moye.Layout]'s Index result happens in the
	// caller, not here — Engine only exposes raw storage.
	Data() []T
}

// ArrayEngine is a fixed-capacity element buffer that exclusively owns
// its storage. The source library's ArrayEngine<T,N> fixes N as a
// compile-time template parameter; Go has no const generics to express
// that, so capacity is carried as an ordinary field set once at
// construction and never resized afterwards — the owning contract is
// enforced by never exposing a grow/append operation, not by the type
// system. An ArrayEngine is created on a function's stack frame (an
// ordinary Go value, possibly heap-promoted by escape analysis) and
// needs no explicit destructor; any ViewEngine derived from it must not
// outlive it — see [Preserve].
type ArrayEngine[T any] struct {
	buf []T
}

// NewArrayEngine returns a zero-valued ArrayEngine with exactly capacity
// elements.
func NewArrayEngine[T any](capacity int) *ArrayEngine[T] {
	return &ArrayEngine[T]{buf: make([]T, capacity)}
}

// Data returns the engine's backing buffer.
func (e *ArrayEngine[T]) Data() []T { return e.buf }

// Capacity returns the engine's fixed element count.
func (e *ArrayEngine[T]) Capacity() int { return len(e.buf) }

func (e *ArrayEngine[T]) String() string {
	return fmt.Sprintf("ArrayEngine[%T; %d]", *new(T), e.Capacity())
}

// ViewEngine is a non-owning pointer to a contiguous run of T elements,
// generic over whatever address space base came from (host heap/stack,
// or — via execenv — GPU global/shared memory). ViewEngine has no
// lifecycle of its own: the storage it views must outlive it, which for a
// ViewEngine sliced out of an ArrayEngine means the frame that owns the
// ArrayEngine must still be live (see [Preserve]).
type ViewEngine[T any] struct {
	base []T
}

// NewViewEngine wraps base (not copied) as a non-owning view.
func NewViewEngine[T any](base []T) ViewEngine[T] { return ViewEngine[T]{base: base} }

// Data returns the viewed slice.
func (e ViewEngine[T]) Data() []T { return e.base }

func (e ViewEngine[T]) String() string {
	return fmt.Sprintf("ViewEngine[%T; %d]", *new(T), len(e.base))
}
