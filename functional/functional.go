// Package functional provides the public API for tensor functionalization
// view inverses: pure functions that reconstruct an updated base tensor
// from a pre-mutation base, a post-mutation view and the view operation's
// original forward arguments, plus the tagged-request registry that lets a
// functionalization dispatcher invoke them from a single homogeneous table.
package functional

import (
	"github.com/reflow-ml/reflow/internal/functional"
	"github.com/reflow-ml/reflow/internal/tensor"
)

// RawTensor is the tensor representation inverses operate on.
type RawTensor = tensor.RawTensor

// ErrNotSupported reports that a view-operation kind cannot be inverted.
// Check with errors.Is.
var ErrNotSupported = functional.ErrNotSupported

// Kind identifies a view-operation family.
type Kind = functional.Kind

// View-operation kinds.
const (
	KindAlias          Kind = functional.KindAlias
	KindDetach         Kind = functional.KindDetach
	KindViewAsReal     Kind = functional.KindViewAsReal
	KindViewAsComplex  Kind = functional.KindViewAsComplex
	KindConj           Kind = functional.KindConj
	KindNegView        Kind = functional.KindNegView
	KindReshapeAlias   Kind = functional.KindReshapeAlias
	KindView           Kind = functional.KindView
	KindViewDType      Kind = functional.KindViewDType
	KindT              Kind = functional.KindT
	KindTranspose      Kind = functional.KindTranspose
	KindPermute        Kind = functional.KindPermute
	KindSqueeze        Kind = functional.KindSqueeze
	KindSqueezeDim     Kind = functional.KindSqueezeDim
	KindUnsqueeze      Kind = functional.KindUnsqueeze
	KindDiagonal       Kind = functional.KindDiagonal
	KindSelect         Kind = functional.KindSelect
	KindSlice          Kind = functional.KindSlice
	KindUnbind         Kind = functional.KindUnbind
	KindSplit          Kind = functional.KindSplit
	KindSplitWithSizes Kind = functional.KindSplitWithSizes
	KindExpand         Kind = functional.KindExpand
	KindUnfold         Kind = functional.KindUnfold
	KindFwPrimal       Kind = functional.KindFwPrimal
	KindAsStrided      Kind = functional.KindAsStrided
	KindSparseIndices  Kind = functional.KindSparseIndices
	KindSparseValues   Kind = functional.KindSparseValues
	KindIndices        Kind = functional.KindIndices
	KindValues         Kind = functional.KindValues
	KindCrowIndices    Kind = functional.KindCrowIndices
	KindColIndices     Kind = functional.KindColIndices
)

// Request is one recorded view operation: a tagged variant carrying the
// exact arguments the forward operation took.
type Request = functional.Request

// Tagged request variants, one per view-operation family.
type (
	// Alias is the alias() view.
	Alias = functional.Alias
	// Detach is the detach() view.
	Detach = functional.Detach
	// ViewAsReal is the view_as_real() view over a complex tensor.
	ViewAsReal = functional.ViewAsReal
	// ViewAsComplex is the view_as_complex() view over (real, imag) pairs.
	ViewAsComplex = functional.ViewAsComplex
	// Conj is the conjugate view.
	Conj = functional.Conj
	// NegView is the negation view.
	NegView = functional.NegView
	// ReshapeAlias is the reshape(size, stride) view.
	ReshapeAlias = functional.ReshapeAlias
	// View is the view(size) shape reinterpretation.
	View = functional.View
	// ViewDType is the view(dtype) element-type reinterpretation.
	ViewDType = functional.ViewDType
	// T is the t() transpose of a rank <= 2 tensor.
	T = functional.T
	// Transpose is the transpose(dim0, dim1) view.
	Transpose = functional.Transpose
	// Permute is the permute(dims) view.
	Permute = functional.Permute
	// Squeeze is the squeeze() view removing every size-1 axis.
	Squeeze = functional.Squeeze
	// SqueezeDim is the squeeze(dim) view.
	SqueezeDim = functional.SqueezeDim
	// Unsqueeze is the unsqueeze(dim) view.
	Unsqueeze = functional.Unsqueeze
	// Diagonal is the diagonal(offset, dim1, dim2) view.
	Diagonal = functional.Diagonal
	// Select is the select(dim, index) view.
	Select = functional.Select
	// Slice is the slice(dim, start, end, step) view.
	Slice = functional.Slice
	// Unbind is one output of the unbind(dim) view.
	Unbind = functional.Unbind
	// Split is one output of the split(splitSize, dim) view.
	Split = functional.Split
	// SplitWithSizes is one output of the split_with_sizes(sizes, dim) view.
	SplitWithSizes = functional.SplitWithSizes
	// Expand is the expand(size, implicit) broadcast view.
	Expand = functional.Expand
	// Unfold is the unfold(dimension, size, step) sliding-window view.
	Unfold = functional.Unfold
	// FwPrimal is the forward-mode primal extraction (unsupported).
	FwPrimal = functional.FwPrimal
	// AsStrided is the as_strided view (unsupported).
	AsStrided = functional.AsStrided
	// SparseIndices is the internal sparse indices accessor (unsupported).
	SparseIndices = functional.SparseIndices
	// SparseValues is the internal sparse values accessor (unsupported).
	SparseValues = functional.SparseValues
	// Indices is the public sparse indices accessor (unsupported).
	Indices = functional.Indices
	// Values is the public sparse values accessor (unsupported).
	Values = functional.Values
	// CrowIndices is the CSR compressed-row indices accessor (unsupported).
	CrowIndices = functional.CrowIndices
	// ColIndices is the CSR column indices accessor (unsupported).
	ColIndices = functional.ColIndices
)

// InverseFunc reconstructs an updated base from the pre-mutation base, the
// post-mutation view and the recorded forward arguments.
type InverseFunc = functional.InverseFunc

// Registry maps view-operation kinds to their inverse functions.
type Registry = functional.Registry

// NewRegistry returns a registry with every supported view-operation
// inverse registered.
func NewRegistry() *Registry {
	return functional.NewRegistry()
}

// Apply dispatches a recorded view request through the default registry.
func Apply(base, mutatedView *RawTensor, req Request) (*RawTensor, error) {
	return functional.Apply(base, mutatedView, req)
}

// WrapDim normalizes a possibly negative axis index into [0, rank).
func WrapDim(dim, rank int) (int, error) {
	return functional.WrapDim(dim, rank)
}
