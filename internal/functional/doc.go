// Package functional implements the view-inverse layer of tensor
// functionalization: for every supported view operation it provides a pure
// function that reconstructs an updated base tensor from the pre-mutation
// base, the post-mutation view and the view's original forward arguments.
//
// For a view b = op(a, args) and a mutation b -> b', each inverse satisfies
//
//	op(inverse(a, b', args), args) == b'
//
// while every element of a not aliased by the view is preserved unchanged.
// Inverse functions never mutate their inputs and always return a freshly
// computed tensor; a functionalization dispatcher adopts the result as the
// new base.
//
// All inverses share one calling convention: the first parameter is the
// base, the second the mutated view, and the remaining parameters mirror
// the forward operation's own parameter list. The Request/Registry API
// packages that convention into tagged request variants so inverses can be
// dispatched from a single homogeneous table.
package functional
