package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// adder returns a function that accumulates src element j into dst element
// i for the tensors' common dtype. Bool tensors cannot be accumulated.
func adder(dst, src *RawTensor) (func(i, j int), error) {
	if dst.dtype != src.dtype {
		return nil, fmt.Errorf("accumulate: dtype mismatch: %s vs %s", dst.dtype, src.dtype)
	}
	switch dst.dtype {
	case Float32:
		d, s := dst.AsFloat32(), src.AsFloat32()
		return func(i, j int) { d[i] += s[j] }, nil
	case Float64:
		d, s := dst.AsFloat64(), src.AsFloat64()
		return func(i, j int) { d[i] += s[j] }, nil
	case Int32:
		d, s := dst.AsInt32(), src.AsInt32()
		return func(i, j int) { d[i] += s[j] }, nil
	case Int64:
		d, s := dst.AsInt64(), src.AsInt64()
		return func(i, j int) { d[i] += s[j] }, nil
	case Uint8:
		d, s := dst.AsUint8(), src.AsUint8()
		return func(i, j int) { d[i] += s[j] }, nil
	case Float16:
		d, s := dst.AsFloat16(), src.AsFloat16()
		return func(i, j int) { d[i] = float16.Fromfloat32(d[i].Float32() + s[j].Float32()) }, nil
	case Complex64:
		d, s := dst.AsComplex64(), src.AsComplex64()
		return func(i, j int) { d[i] += s[j] }, nil
	case Complex128:
		d, s := dst.AsComplex128(), src.AsComplex128()
		return func(i, j int) { d[i] += s[j] }, nil
	default:
		return nil, fmt.Errorf("accumulate: unsupported dtype %s", dst.dtype)
	}
}

// sumDim sums a tensor along the specified dimension. With keepDim the
// reduced dimension stays as size 1, otherwise it is removed.
func sumDim(x *RawTensor, dim int, keepDim bool) (*RawTensor, error) {
	ndim := x.shape.Rank()
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("sumDim: dim %d out of range for %d dimensions", dim, ndim)
	}

	outShape := x.shape.Clone()
	outShape[dim] = 1

	result, err := NewRaw(outShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("sumDim: %w", err)
	}

	add, err := adder(result, x)
	if err != nil {
		return nil, fmt.Errorf("sumDim: %w", err)
	}

	outer := x.shape.outerSize(dim)
	inner := x.shape.innerSize(dim)
	axisSize := x.shape[dim]

	for o := 0; o < outer; o++ {
		for a := 0; a < axisSize; a++ {
			for in := 0; in < inner; in++ {
				add(o*inner+in, (o*axisSize+a)*inner+in)
			}
		}
	}

	if !keepDim {
		return Squeeze(result, dim)
	}
	return result, nil
}

// SumTo reduces a tensor to the target shape by summation: leading axes
// absent from the target are summed away entirely, and axes where the
// target size is 1 are summed while kept as size 1. The output shape
// equals targetShape exactly. This is the reduction inverting a broadcast
// expansion.
func SumTo(x *RawTensor, targetShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("SumTo: input tensor is nil")
	}
	if x.shape.Equal(targetShape) {
		return x.DeepClone(), nil
	}
	if len(targetShape) > x.shape.Rank() {
		return nil, fmt.Errorf("SumTo: target shape %v has higher rank than input shape %v", targetShape, x.shape)
	}

	cur := x
	for cur.shape.Rank() > len(targetShape) {
		reduced, err := sumDim(cur, 0, false)
		if err != nil {
			return nil, fmt.Errorf("SumTo: %w", err)
		}
		cur = reduced
	}

	for i := range targetShape {
		if targetShape[i] == 1 && cur.shape[i] > 1 {
			reduced, err := sumDim(cur, i, true)
			if err != nil {
				return nil, fmt.Errorf("SumTo: %w", err)
			}
			cur = reduced
		}
	}

	if !cur.shape.Equal(targetShape) {
		return nil, fmt.Errorf("SumTo: cannot reduce shape %v to %v", x.shape, targetShape)
	}
	return cur, nil
}

// UnfoldBackward accumulates sliding-window contributions back onto the
// base coordinate space: grad must have the shape Unfold(base, dim, size,
// step) produces, and base coordinates covered by several windows receive
// the sum of their contributions.
func UnfoldBackward(grad *RawTensor, baseShape Shape, dim, size, step int) (*RawTensor, error) {
	if grad == nil {
		return nil, fmt.Errorf("UnfoldBackward: input tensor is nil")
	}

	ndim := baseShape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("UnfoldBackward: dim %d out of range for %d dimensions", dim, ndim)
	}
	dimSize := baseShape[dim]
	if size < 1 || size > dimSize {
		return nil, fmt.Errorf("UnfoldBackward: window size %d out of range (0, %d]", size, dimSize)
	}
	if step < 1 {
		return nil, fmt.Errorf("UnfoldBackward: step must be >= 1, got %d", step)
	}

	expected := baseShape.Clone()
	expected[dim] = (dimSize-size)/step + 1
	expected = append(expected, size)
	if !grad.shape.Equal(expected) {
		return nil, fmt.Errorf("UnfoldBackward: grad shape %v does not match window shape %v", grad.shape, expected)
	}

	result, err := NewRaw(baseShape, grad.dtype, grad.device)
	if err != nil {
		return nil, fmt.Errorf("UnfoldBackward: %w", err)
	}

	add, err := adder(result, grad)
	if err != nil {
		return nil, fmt.Errorf("UnfoldBackward: %w", err)
	}

	baseStrides := baseShape.ComputeStrides()
	total := expected.NumElements()
	idx := make([]int, expected.Rank())
	for i := 0; i < total; i++ {
		unravel(i, expected, idx)
		dstFlat := 0
		for j := 0; j < ndim; j++ {
			coord := idx[j]
			if j == dim {
				coord = idx[j]*step + idx[ndim]
			}
			dstFlat += coord * baseStrides[j]
		}
		add(dstFlat, i)
	}
	return result, nil
}
