package array

import "github.com/gogpu/moye"

// Preserve runs fn with a non-owning view of e's buffer, under layout,
// confining that view's reachability to fn's lexical scope. This is
// moye's answer to the source library's @gc_preserve macro: Go's runtime
// already keeps e's backing array alive for as long as anything derived
// from it is reachable, so the hazard Preserve guards against isn't
// garbage collection — it's a caller stashing a ViewEngine sliced from e
// somewhere that outlives e's owning stack frame. Routing every view
// through Preserve's callback keeps that reachability lexically scoped
// instead.
//
// fn receives the array's full, unsliced view; it is responsible for any
// further slicing via [View] inside its own scope.
func Preserve[T any](e *ArrayEngine[T], layout moye.Layout, fn func(MoYeArray[T])) {
	view := MoYeArray[T]{engine: NewViewEngine(e.Data()), layout: layout}
	fn(view)
}
