package functional

import (
	"github.com/pkg/errors"

	"github.com/reflow-ml/reflow/internal/tensor"
)

// InverseFunc reconstructs an updated base from the pre-mutation base, the
// post-mutation view and the recorded forward arguments.
type InverseFunc func(base, mutatedView *tensor.RawTensor, req Request) (*tensor.RawTensor, error)

// Registry maps view-operation kinds to their inverse functions. All
// inverses share the InverseFunc signature, so a functionalization
// dispatcher can look one up by the operation identity it recorded and
// call it mechanically.
type Registry struct {
	funcs map[Kind]InverseFunc
}

// Register binds an inverse function to a view-operation kind, replacing
// any previous binding.
func (r *Registry) Register(k Kind, fn InverseFunc) {
	r.funcs[k] = fn
}

// Lookup returns the inverse function registered for a kind.
func (r *Registry) Lookup(k Kind) (InverseFunc, bool) {
	fn, ok := r.funcs[k]
	return fn, ok
}

// Apply dispatches a recorded view request to its registered inverse.
func (r *Registry) Apply(base, mutatedView *tensor.RawTensor, req Request) (*tensor.RawTensor, error) {
	fn, ok := r.funcs[req.Kind()]
	if !ok {
		return nil, errors.Errorf("no inverse registered for view operation %q", req.Kind())
	}
	return fn(base, mutatedView, req)
}

// adapt lifts a typed inverse into the homogeneous InverseFunc signature,
// checking that the request payload matches the registered kind.
func adapt[A Request](fn func(base, mutatedView *tensor.RawTensor, args A) (*tensor.RawTensor, error)) InverseFunc {
	return func(base, mutatedView *tensor.RawTensor, req Request) (*tensor.RawTensor, error) {
		args, ok := req.(A)
		if !ok {
			return nil, errors.Errorf("request payload %T does not match view operation %q", req, req.Kind())
		}
		return fn(base, mutatedView, args)
	}
}

// NewRegistry returns a registry with every supported view-operation
// inverse registered, plus the explicit not-supported entries.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[Kind]InverseFunc)}

	r.Register(KindAlias, adapt(func(base, view *tensor.RawTensor, _ Alias) (*tensor.RawTensor, error) {
		return AliasInverse(base, view)
	}))
	r.Register(KindDetach, adapt(func(base, view *tensor.RawTensor, _ Detach) (*tensor.RawTensor, error) {
		return DetachInverse(base, view)
	}))
	r.Register(KindViewAsReal, adapt(func(base, view *tensor.RawTensor, _ ViewAsReal) (*tensor.RawTensor, error) {
		return ViewAsRealInverse(base, view)
	}))
	r.Register(KindViewAsComplex, adapt(func(base, view *tensor.RawTensor, _ ViewAsComplex) (*tensor.RawTensor, error) {
		return ViewAsComplexInverse(base, view)
	}))
	r.Register(KindConj, adapt(func(base, view *tensor.RawTensor, _ Conj) (*tensor.RawTensor, error) {
		return ConjInverse(base, view)
	}))
	r.Register(KindNegView, adapt(func(base, view *tensor.RawTensor, _ NegView) (*tensor.RawTensor, error) {
		return NegViewInverse(base, view)
	}))
	r.Register(KindReshapeAlias, adapt(func(base, view *tensor.RawTensor, a ReshapeAlias) (*tensor.RawTensor, error) {
		return ReshapeAliasInverse(base, view, a.Size, a.Stride)
	}))
	r.Register(KindView, adapt(func(base, view *tensor.RawTensor, a View) (*tensor.RawTensor, error) {
		return ViewInverse(base, view, a.Size)
	}))
	r.Register(KindViewDType, adapt(func(base, view *tensor.RawTensor, a ViewDType) (*tensor.RawTensor, error) {
		return ViewDTypeInverse(base, view, a.DType)
	}))
	r.Register(KindT, adapt(func(base, view *tensor.RawTensor, _ T) (*tensor.RawTensor, error) {
		return TInverse(base, view)
	}))
	r.Register(KindTranspose, adapt(func(base, view *tensor.RawTensor, a Transpose) (*tensor.RawTensor, error) {
		return TransposeInverse(base, view, a.Dim0, a.Dim1)
	}))
	r.Register(KindPermute, adapt(func(base, view *tensor.RawTensor, a Permute) (*tensor.RawTensor, error) {
		return PermuteInverse(base, view, a.Dims)
	}))
	r.Register(KindSqueeze, adapt(func(base, view *tensor.RawTensor, _ Squeeze) (*tensor.RawTensor, error) {
		return SqueezeInverse(base, view)
	}))
	r.Register(KindSqueezeDim, adapt(func(base, view *tensor.RawTensor, a SqueezeDim) (*tensor.RawTensor, error) {
		return SqueezeDimInverse(base, view, a.Dim)
	}))
	r.Register(KindUnsqueeze, adapt(func(base, view *tensor.RawTensor, a Unsqueeze) (*tensor.RawTensor, error) {
		return UnsqueezeInverse(base, view, a.Dim)
	}))
	r.Register(KindDiagonal, adapt(func(base, view *tensor.RawTensor, a Diagonal) (*tensor.RawTensor, error) {
		return DiagonalInverse(base, view, a.Offset, a.Dim1, a.Dim2)
	}))
	r.Register(KindSelect, adapt(func(base, view *tensor.RawTensor, a Select) (*tensor.RawTensor, error) {
		return SelectInverse(base, view, a.Dim, a.Index)
	}))
	r.Register(KindSlice, adapt(func(base, view *tensor.RawTensor, a Slice) (*tensor.RawTensor, error) {
		return SliceInverse(base, view, a.Dim, a.Start, a.End, a.Step)
	}))
	r.Register(KindUnbind, adapt(func(base, view *tensor.RawTensor, a Unbind) (*tensor.RawTensor, error) {
		return UnbindInverse(base, view, a.Index, a.Dim)
	}))
	r.Register(KindSplit, adapt(func(base, view *tensor.RawTensor, a Split) (*tensor.RawTensor, error) {
		return SplitInverse(base, view, a.Index, a.SplitSize, a.Dim)
	}))
	r.Register(KindSplitWithSizes, adapt(func(base, view *tensor.RawTensor, a SplitWithSizes) (*tensor.RawTensor, error) {
		return SplitWithSizesInverse(base, view, a.Index, a.Sizes, a.Dim)
	}))
	r.Register(KindExpand, adapt(func(base, view *tensor.RawTensor, a Expand) (*tensor.RawTensor, error) {
		return ExpandInverse(base, view, a.Size, a.Implicit)
	}))
	r.Register(KindUnfold, adapt(func(base, view *tensor.RawTensor, a Unfold) (*tensor.RawTensor, error) {
		return UnfoldInverse(base, view, a.Dimension, a.Size, a.Step)
	}))

	// Explicit not-supported entries: these fail deterministically rather
	// than falling through to the unknown-kind error, so callers can
	// distinguish "must never be functionalized" from a wiring bug.
	r.Register(KindFwPrimal, adapt(func(base, view *tensor.RawTensor, a FwPrimal) (*tensor.RawTensor, error) {
		return FwPrimalInverse(base, view, a.Level)
	}))
	r.Register(KindAsStrided, adapt(func(base, view *tensor.RawTensor, a AsStrided) (*tensor.RawTensor, error) {
		return AsStridedInverse(base, view, a.Size, a.Stride, a.StorageOffset)
	}))
	r.Register(KindSparseIndices, adapt(func(base, view *tensor.RawTensor, _ SparseIndices) (*tensor.RawTensor, error) {
		return SparseIndicesInverse(base, view)
	}))
	r.Register(KindSparseValues, adapt(func(base, view *tensor.RawTensor, _ SparseValues) (*tensor.RawTensor, error) {
		return SparseValuesInverse(base, view)
	}))
	r.Register(KindIndices, adapt(func(base, view *tensor.RawTensor, _ Indices) (*tensor.RawTensor, error) {
		return IndicesInverse(base, view)
	}))
	r.Register(KindValues, adapt(func(base, view *tensor.RawTensor, _ Values) (*tensor.RawTensor, error) {
		return ValuesInverse(base, view)
	}))
	r.Register(KindCrowIndices, adapt(func(base, view *tensor.RawTensor, _ CrowIndices) (*tensor.RawTensor, error) {
		return CrowIndicesInverse(base, view)
	}))
	r.Register(KindColIndices, adapt(func(base, view *tensor.RawTensor, _ ColIndices) (*tensor.RawTensor, error) {
		return ColIndicesInverse(base, view)
	}))

	return r
}

// defaultRegistry serves the package-level Apply.
var defaultRegistry = NewRegistry()

// Apply dispatches a recorded view request through the default registry.
func Apply(base, mutatedView *tensor.RawTensor, req Request) (*tensor.RawTensor, error) {
	return defaultRegistry.Apply(base, mutatedView, req)
}
