package tensor

import "fmt"

// Zeros creates a zero-initialized tensor with the given shape and dtype.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return NewRaw(shape, dtype, CPU)
}

// FromFloat32 creates a Float32 tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	raw, err := newFromLen(len(data), shape, Float32)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat32(), data)
	return raw, nil
}

// FromFloat64 creates a Float64 tensor from a Go slice.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	raw, err := newFromLen(len(data), shape, Float64)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat64(), data)
	return raw, nil
}

// FromInt32 creates an Int32 tensor from a Go slice.
func FromInt32(data []int32, shape Shape) (*RawTensor, error) {
	raw, err := newFromLen(len(data), shape, Int32)
	if err != nil {
		return nil, err
	}
	copy(raw.AsInt32(), data)
	return raw, nil
}

// FromInt64 creates an Int64 tensor from a Go slice.
func FromInt64(data []int64, shape Shape) (*RawTensor, error) {
	raw, err := newFromLen(len(data), shape, Int64)
	if err != nil {
		return nil, err
	}
	copy(raw.AsInt64(), data)
	return raw, nil
}

// FromComplex64 creates a Complex64 tensor from a Go slice.
func FromComplex64(data []complex64, shape Shape) (*RawTensor, error) {
	raw, err := newFromLen(len(data), shape, Complex64)
	if err != nil {
		return nil, err
	}
	copy(raw.AsComplex64(), data)
	return raw, nil
}

// FromComplex128 creates a Complex128 tensor from a Go slice.
func FromComplex128(data []complex128, shape Shape) (*RawTensor, error) {
	raw, err := newFromLen(len(data), shape, Complex128)
	if err != nil {
		return nil, err
	}
	copy(raw.AsComplex128(), data)
	return raw, nil
}

func newFromLen(n int, shape Shape, dtype DataType) (*RawTensor, error) {
	if shape.NumElements() != n {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), n)
	}
	return NewRaw(shape, dtype, CPU)
}
