package functional

import (
	"github.com/reflow-ml/reflow/internal/functional"
	"github.com/reflow-ml/reflow/internal/tensor"
)

// Named inverse functions, for callers that dispatch themselves instead of
// going through the registry. First parameter is always the pre-mutation
// base, second the post-mutation view; the rest mirror the forward op.

// AliasInverse inverts alias().
func AliasInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.AliasInverse(base, mutatedView)
}

// DetachInverse inverts detach().
func DetachInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.DetachInverse(base, mutatedView)
}

// ViewAsRealInverse inverts view_as_real().
func ViewAsRealInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.ViewAsRealInverse(base, mutatedView)
}

// ViewAsComplexInverse inverts view_as_complex().
func ViewAsComplexInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.ViewAsComplexInverse(base, mutatedView)
}

// ConjInverse inverts a conjugate view.
func ConjInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.ConjInverse(base, mutatedView)
}

// NegViewInverse inverts a negation view.
func NegViewInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.NegViewInverse(base, mutatedView)
}

// ReshapeAliasInverse inverts reshape(size, stride).
func ReshapeAliasInverse(base, mutatedView *RawTensor, size tensor.Shape, stride []int) (*RawTensor, error) {
	return functional.ReshapeAliasInverse(base, mutatedView, size, stride)
}

// ViewInverse inverts view(size).
func ViewInverse(base, mutatedView *RawTensor, size tensor.Shape) (*RawTensor, error) {
	return functional.ViewInverse(base, mutatedView, size)
}

// ViewDTypeInverse inverts view(dtype).
func ViewDTypeInverse(base, mutatedView *RawTensor, dtype tensor.DataType) (*RawTensor, error) {
	return functional.ViewDTypeInverse(base, mutatedView, dtype)
}

// TInverse inverts t().
func TInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.TInverse(base, mutatedView)
}

// TransposeInverse inverts transpose(dim0, dim1).
func TransposeInverse(base, mutatedView *RawTensor, dim0, dim1 int) (*RawTensor, error) {
	return functional.TransposeInverse(base, mutatedView, dim0, dim1)
}

// PermuteInverse inverts permute(dims).
func PermuteInverse(base, mutatedView *RawTensor, dims []int) (*RawTensor, error) {
	return functional.PermuteInverse(base, mutatedView, dims)
}

// SqueezeInverse inverts squeeze() without an axis argument.
func SqueezeInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.SqueezeInverse(base, mutatedView)
}

// SqueezeDimInverse inverts squeeze(dim).
func SqueezeDimInverse(base, mutatedView *RawTensor, dim int) (*RawTensor, error) {
	return functional.SqueezeDimInverse(base, mutatedView, dim)
}

// UnsqueezeInverse inverts unsqueeze(dim).
func UnsqueezeInverse(base, mutatedView *RawTensor, dim int) (*RawTensor, error) {
	return functional.UnsqueezeInverse(base, mutatedView, dim)
}

// DiagonalInverse inverts diagonal(offset, dim1, dim2).
func DiagonalInverse(base, mutatedView *RawTensor, offset, dim1, dim2 int) (*RawTensor, error) {
	return functional.DiagonalInverse(base, mutatedView, offset, dim1, dim2)
}

// SelectInverse inverts select(dim, index).
func SelectInverse(base, mutatedView *RawTensor, dim, index int) (*RawTensor, error) {
	return functional.SelectInverse(base, mutatedView, dim, index)
}

// SliceInverse inverts slice(dim, start, end, step).
func SliceInverse(base, mutatedView *RawTensor, dim, start, end, step int) (*RawTensor, error) {
	return functional.SliceInverse(base, mutatedView, dim, start, end, step)
}

// UnbindInverse inverts one output of unbind(dim).
func UnbindInverse(base, mutatedView *RawTensor, mutatedViewIdx, dim int) (*RawTensor, error) {
	return functional.UnbindInverse(base, mutatedView, mutatedViewIdx, dim)
}

// SplitInverse inverts one output of split(splitSize, dim).
func SplitInverse(base, mutatedView *RawTensor, mutatedViewIdx, splitSize, dim int) (*RawTensor, error) {
	return functional.SplitInverse(base, mutatedView, mutatedViewIdx, splitSize, dim)
}

// SplitWithSizesInverse inverts one output of split_with_sizes(sizes, dim).
func SplitWithSizesInverse(base, mutatedView *RawTensor, mutatedViewIdx int, sizes []int, dim int) (*RawTensor, error) {
	return functional.SplitWithSizesInverse(base, mutatedView, mutatedViewIdx, sizes, dim)
}

// ExpandInverse inverts expand(size, implicit).
func ExpandInverse(base, mutatedView *RawTensor, size tensor.Shape, implicit bool) (*RawTensor, error) {
	return functional.ExpandInverse(base, mutatedView, size, implicit)
}

// UnfoldInverse inverts unfold(dimension, size, step).
func UnfoldInverse(base, mutatedView *RawTensor, dimension, size, step int) (*RawTensor, error) {
	return functional.UnfoldInverse(base, mutatedView, dimension, size, step)
}

// FwPrimalInverse always fails with ErrNotSupported.
func FwPrimalInverse(base, mutatedView *RawTensor, level int) (*RawTensor, error) {
	return functional.FwPrimalInverse(base, mutatedView, level)
}

// AsStridedInverse always fails with ErrNotSupported.
func AsStridedInverse(base, mutatedView *RawTensor, size tensor.Shape, stride []int, storageOffset int) (*RawTensor, error) {
	return functional.AsStridedInverse(base, mutatedView, size, stride, storageOffset)
}

// SparseIndicesInverse always fails with ErrNotSupported.
func SparseIndicesInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.SparseIndicesInverse(base, mutatedView)
}

// SparseValuesInverse always fails with ErrNotSupported.
func SparseValuesInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.SparseValuesInverse(base, mutatedView)
}

// IndicesInverse always fails with ErrNotSupported.
func IndicesInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.IndicesInverse(base, mutatedView)
}

// ValuesInverse always fails with ErrNotSupported.
func ValuesInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.ValuesInverse(base, mutatedView)
}

// CrowIndicesInverse always fails with ErrNotSupported.
func CrowIndicesInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.CrowIndicesInverse(base, mutatedView)
}

// ColIndicesInverse always fails with ErrNotSupported.
func ColIndicesInverse(base, mutatedView *RawTensor) (*RawTensor, error) {
	return functional.ColIndicesInverse(base, mutatedView)
}
