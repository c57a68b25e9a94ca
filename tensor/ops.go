package tensor

import (
	"github.com/reflow-ml/reflow/internal/tensor"
)

// View-forward primitives.

// Reshape returns a tensor with the given shape sharing the input's data.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	return tensor.Reshape(x, newShape)
}

// ViewShape reinterprets the tensor's contiguous layout under a new shape.
func ViewShape(x *RawTensor, shape Shape) (*RawTensor, error) {
	return tensor.ViewShape(x, shape)
}

// Permute reorders the tensor's axes according to the given permutation.
func Permute(x *RawTensor, axes []int) (*RawTensor, error) {
	return tensor.Permute(x, axes)
}

// Transpose swaps two axes of the tensor.
func Transpose(x *RawTensor, dim0, dim1 int) (*RawTensor, error) {
	return tensor.Transpose(x, dim0, dim1)
}

// T transposes a tensor of rank 2 or lower.
func T(x *RawTensor) (*RawTensor, error) {
	return tensor.T(x)
}

// Squeeze removes size-1 dimensions (all of them, or the listed axes).
func Squeeze(x *RawTensor, axes ...int) (*RawTensor, error) {
	return tensor.Squeeze(x, axes...)
}

// Unsqueeze inserts a size-1 dimension at the given position.
func Unsqueeze(x *RawTensor, axis int) (*RawTensor, error) {
	return tensor.Unsqueeze(x, axis)
}

// Slice extracts a half-open stepped region along a single dimension.
func Slice(x *RawTensor, dim, start, end, step int) (*RawTensor, error) {
	return tensor.Slice(x, dim, start, end, step)
}

// Select extracts the sub-tensor at a single index along a dimension.
func Select(x *RawTensor, dim, index int) (*RawTensor, error) {
	return tensor.Select(x, dim, index)
}

// Diagonal extracts a diagonal of the (dim1, dim2) plane.
func Diagonal(x *RawTensor, offset, dim1, dim2 int) (*RawTensor, error) {
	return tensor.Diagonal(x, offset, dim1, dim2)
}

// Split partitions the tensor along a dimension into fixed-size chunks.
func Split(x *RawTensor, splitSize, dim int) ([]*RawTensor, error) {
	return tensor.Split(x, splitSize, dim)
}

// SplitWithSizes partitions the tensor along a dimension into chunks with
// the given sizes.
func SplitWithSizes(x *RawTensor, sizes []int, dim int) ([]*RawTensor, error) {
	return tensor.SplitWithSizes(x, sizes, dim)
}

// Unbind removes a dimension and returns the slices along it.
func Unbind(x *RawTensor, dim int) ([]*RawTensor, error) {
	return tensor.Unbind(x, dim)
}

// Expand broadcasts a tensor to a larger shape.
func Expand(x *RawTensor, targetShape Shape) (*RawTensor, error) {
	return tensor.Expand(x, targetShape)
}

// Unfold extracts sliding windows along a dimension.
func Unfold(x *RawTensor, dim, size, step int) (*RawTensor, error) {
	return tensor.Unfold(x, dim, size, step)
}

// ViewAsReal reinterprets a complex tensor as (real, imag) pairs.
func ViewAsReal(x *RawTensor) (*RawTensor, error) {
	return tensor.ViewAsReal(x)
}

// ViewAsComplex reinterprets (real, imag) pairs as a complex tensor.
func ViewAsComplex(x *RawTensor) (*RawTensor, error) {
	return tensor.ViewAsComplex(x)
}

// ViewDType reinterprets the tensor's bytes under a different element type.
func ViewDType(x *RawTensor, dtype DataType) (*RawTensor, error) {
	return tensor.ViewDType(x, dtype)
}

// Neg returns the element-wise negation of the tensor.
func Neg(x *RawTensor) (*RawTensor, error) {
	return tensor.Neg(x)
}

// Conj returns the element-wise complex conjugate.
func Conj(x *RawTensor) (*RawTensor, error) {
	return tensor.Conj(x)
}

// ResolveConj materializes any pending conjugation.
func ResolveConj(x *RawTensor) (*RawTensor, error) {
	return tensor.ResolveConj(x)
}

// Scatter and reduction primitives.

// SliceScatter returns a copy of base with a stepped region along dim
// replaced by src.
func SliceScatter(base, src *RawTensor, dim, start, end, step int) (*RawTensor, error) {
	return tensor.SliceScatter(base, src, dim, start, end, step)
}

// SelectScatter returns a copy of base with the sub-tensor at index along
// dim replaced by src.
func SelectScatter(base, src *RawTensor, dim, index int) (*RawTensor, error) {
	return tensor.SelectScatter(base, src, dim, index)
}

// DiagonalScatter returns a copy of base with a diagonal of the
// (dim1, dim2) plane replaced by src.
func DiagonalScatter(base, src *RawTensor, offset, dim1, dim2 int) (*RawTensor, error) {
	return tensor.DiagonalScatter(base, src, offset, dim1, dim2)
}

// SumTo reduces a tensor to the target shape by summation.
func SumTo(x *RawTensor, targetShape Shape) (*RawTensor, error) {
	return tensor.SumTo(x, targetShape)
}

// UnfoldBackward accumulates sliding-window contributions back onto the
// base coordinate space.
func UnfoldBackward(grad *RawTensor, baseShape Shape, dim, size, step int) (*RawTensor, error) {
	return tensor.UnfoldBackward(grad, baseShape, dim, size, step)
}
