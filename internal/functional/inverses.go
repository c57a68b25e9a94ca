package functional

import (
	"github.com/pkg/errors"

	"github.com/reflow-ml/reflow/internal/tensor"
)

// Every inverse in this file follows the uniform convention: the first
// parameter is the pre-mutation base, the second the post-mutation view,
// and the remaining parameters mirror the forward view operation exactly.
// Most inverses ignore the base; it is needed only where the base geometry
// cannot be recovered from the view and the arguments alone (slice, select,
// split, squeeze, expand, unfold).

// AliasInverse inverts alias(): the mutated view is the new base.
func AliasInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return mutatedView.Clone(), nil
}

// DetachInverse inverts detach(). Functionalization does not track
// autograd metadata, so detach behaves as an identity view.
func DetachInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return mutatedView.Clone(), nil
}

// ViewAsRealInverse inverts viewing a complex tensor as (real, imag) pairs.
func ViewAsRealInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.ViewAsComplex(mutatedView)
}

// ViewAsComplexInverse inverts viewing (real, imag) pairs as a complex
// tensor. Any pending conjugation is resolved before reinterpreting.
func ViewAsComplexInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	resolved, err := tensor.ResolveConj(mutatedView)
	if err != nil {
		return nil, err
	}
	return tensor.ViewAsReal(resolved)
}

// ConjInverse inverts a conjugate view: conjugation is an involution.
func ConjInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Conj(mutatedView)
}

// NegViewInverse inverts a negation view: negation is an involution.
func NegViewInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.Neg(mutatedView)
}

// ReshapeAliasInverse inverts a reshape by reinterpreting the view's
// contiguous layout back to the base's shape. The recorded stride is
// unused: the view is contiguous, so the base's shape determines the
// layout.
func ReshapeAliasInverse(base, mutatedView *tensor.RawTensor, size tensor.Shape, stride []int) (*tensor.RawTensor, error) {
	return tensor.Reshape(mutatedView, base.Shape())
}

// ViewInverse inverts view(size) by viewing back to the base's shape.
func ViewInverse(base, mutatedView *tensor.RawTensor, size tensor.Shape) (*tensor.RawTensor, error) {
	return tensor.ViewShape(mutatedView, base.Shape())
}

// ViewDTypeInverse inverts view(dtype) by reinterpreting the view's bytes
// under the base's element type.
func ViewDTypeInverse(base, mutatedView *tensor.RawTensor, dtype tensor.DataType) (*tensor.RawTensor, error) {
	return tensor.ViewDType(mutatedView, base.DType())
}

// TInverse inverts t(): the 2-D transpose is self-inverse.
func TInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return tensor.T(mutatedView)
}

// TransposeInverse inverts transpose(dim0, dim1): swapping the same pair
// of axes again restores the original order.
func TransposeInverse(base, mutatedView *tensor.RawTensor, dim0, dim1 int) (*tensor.RawTensor, error) {
	return tensor.Transpose(mutatedView, dim0, dim1)
}

// PermuteInverse inverts permute(dims) by applying the group inverse of
// the axis permutation.
func PermuteInverse(base, mutatedView *tensor.RawTensor, dims []int) (*tensor.RawTensor, error) {
	inv, err := invertPermutation(dims)
	if err != nil {
		return nil, err
	}
	return tensor.Permute(mutatedView, inv)
}

// SqueezeInverse inverts squeeze() (no axis argument) by re-inserting a
// singleton axis at every position where the base's size is 1.
func SqueezeInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unsqueezeTo(mutatedView, base.Shape())
}

// SqueezeDimInverse inverts squeeze(dim): the singleton axis is
// re-inserted only when the base's size at dim is 1, since squeezing a
// non-1-sized axis was a forward no-op.
func SqueezeDimInverse(base, mutatedView *tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	return unsqueezeToDim(mutatedView, dim, base.Shape())
}

// UnsqueezeInverse inverts unsqueeze(dim) by squeezing the inserted axis.
func UnsqueezeInverse(base, mutatedView *tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	w, err := WrapDim(dim, mutatedView.Shape().Rank())
	if err != nil {
		return nil, err
	}
	return tensor.Squeeze(mutatedView, w)
}

// DiagonalInverse inverts diagonal(offset, dim1, dim2) by scattering the
// mutated diagonal back onto the base.
func DiagonalInverse(base, mutatedView *tensor.RawTensor, offset, dim1, dim2 int) (*tensor.RawTensor, error) {
	return tensor.DiagonalScatter(base, mutatedView, offset, dim1, dim2)
}

// SelectInverse inverts select(dim, index) by scattering the mutated
// sub-tensor back into its single-index region.
func SelectInverse(base, mutatedView *tensor.RawTensor, dim, index int) (*tensor.RawTensor, error) {
	return tensor.SelectScatter(base, mutatedView, dim, index)
}

// SliceInverse inverts slice(dim, start, end, step) by scattering the
// mutated slice back into its half-open stepped region.
func SliceInverse(base, mutatedView *tensor.RawTensor, dim, start, end, step int) (*tensor.RawTensor, error) {
	return tensor.SliceScatter(base, mutatedView, dim, start, end, step)
}

// UnbindInverse inverts one output of unbind(dim): the view at
// mutatedViewIdx is scattered back to its index along dim.
func UnbindInverse(base, mutatedView *tensor.RawTensor, mutatedViewIdx, dim int) (*tensor.RawTensor, error) {
	w, err := WrapDim(dim, base.Shape().Rank())
	if err != nil {
		return nil, err
	}
	return tensor.SelectScatter(base, mutatedView, w, mutatedViewIdx)
}

// SplitInverse inverts one output of split(splitSize, dim). Only the
// single mutated partition is available, so it is layered back onto the
// base at its partition offset; the final partition is clipped to the
// dimension size.
func SplitInverse(base, mutatedView *tensor.RawTensor, mutatedViewIdx, splitSize, dim int) (*tensor.RawTensor, error) {
	w, err := WrapDim(dim, base.Shape().Rank())
	if err != nil {
		return nil, err
	}
	dimSize := base.Shape()[w]
	start := mutatedViewIdx * splitSize
	end := min(start+splitSize, dimSize)
	return tensor.SliceScatter(base, mutatedView, w, start, end, 1)
}

// SplitWithSizesInverse inverts one output of split_with_sizes(sizes,
// dim): the partition start is the sum of the preceding sizes and the end
// is clipped to the dimension size.
func SplitWithSizesInverse(base, mutatedView *tensor.RawTensor, mutatedViewIdx int, sizes []int, dim int) (*tensor.RawTensor, error) {
	if mutatedViewIdx < 0 || mutatedViewIdx >= len(sizes) {
		return nil, errors.Errorf("split view index %d out of range for %d partitions", mutatedViewIdx, len(sizes))
	}
	w, err := WrapDim(dim, base.Shape().Rank())
	if err != nil {
		return nil, err
	}
	dimSize := base.Shape()[w]
	start := 0
	for i := 0; i < mutatedViewIdx; i++ {
		start += sizes[i]
	}
	end := min(start+sizes[mutatedViewIdx], dimSize)
	return tensor.SliceScatter(base, mutatedView, w, start, end, 1)
}

// ExpandInverse inverts expand(size, implicit) with a sum-to-shape
// reduction: axes introduced by the expansion are summed away and axes
// broadcast from size 1 are summed back to size 1.
func ExpandInverse(base, mutatedView *tensor.RawTensor, size tensor.Shape, implicit bool) (*tensor.RawTensor, error) {
	return tensor.SumTo(mutatedView, base.Shape())
}

// UnfoldInverse inverts unfold(dimension, size, step) by accumulating
// window contributions back onto the base coordinate space; overlapping
// windows sum their contributions.
func UnfoldInverse(base, mutatedView *tensor.RawTensor, dimension, size, step int) (*tensor.RawTensor, error) {
	return tensor.UnfoldBackward(mutatedView, base.Shape(), dimension, size, step)
}

// FwPrimalInverse rejects forward-mode primal extraction, which must not
// reach functionalization inversion.
func FwPrimalInverse(base, mutatedView *tensor.RawTensor, level int) (*tensor.RawTensor, error) {
	return nil, notSupported("forward-mode primal extraction")
}

// AsStridedInverse rejects as_strided views, whose arbitrary stride
// geometry has no inverse here yet.
func AsStridedInverse(base, mutatedView *tensor.RawTensor, size tensor.Shape, stride []int, storageOffset int) (*tensor.RawTensor, error) {
	return nil, notSupported("an as-strided view")
}

// SparseIndicesInverse rejects the internal sparse indices accessor;
// sparse layouts are not supported during functionalization.
func SparseIndicesInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, notSupported("a sparse indices accessor")
}

// SparseValuesInverse rejects the internal sparse values accessor.
func SparseValuesInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, notSupported("a sparse values accessor")
}

// IndicesInverse rejects the public sparse indices accessor.
func IndicesInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, notSupported("a sparse indices accessor")
}

// ValuesInverse rejects the public sparse values accessor.
func ValuesInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, notSupported("a sparse values accessor")
}

// CrowIndicesInverse rejects the CSR compressed-row indices accessor.
func CrowIndicesInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, notSupported("a CSR row indices accessor")
}

// ColIndicesInverse rejects the CSR column indices accessor.
func ColIndicesInverse(base, mutatedView *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, notSupported("a CSR column indices accessor")
}
