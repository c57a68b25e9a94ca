// Package tensor provides the public API for the reflow tensor substrate:
// raw CPU tensors with shape/stride/dtype metadata and the view, scatter
// and reduction primitives used by the functional package.
package tensor

import (
	"github.com/reflow-ml/reflow/internal/tensor"
)

// Type aliases for the public API.

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint8      DataType = tensor.Uint8
	Bool       DataType = tensor.Bool
	Float16    DataType = tensor.Float16
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Device represents the compute device for tensor operations.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a flat buffer plus
// shape, stride, dtype and device metadata.
type RawTensor = tensor.RawTensor

// NewRaw creates a new zero-initialized RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Zeros creates a zero-initialized tensor on the CPU.
func Zeros(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype)
}

// FromFloat32 creates a Float32 tensor from a Go slice.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(data, shape)
}

// FromFloat64 creates a Float64 tensor from a Go slice.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat64(data, shape)
}

// FromInt32 creates an Int32 tensor from a Go slice.
func FromInt32(data []int32, shape Shape) (*RawTensor, error) {
	return tensor.FromInt32(data, shape)
}

// FromInt64 creates an Int64 tensor from a Go slice.
func FromInt64(data []int64, shape Shape) (*RawTensor, error) {
	return tensor.FromInt64(data, shape)
}

// FromComplex64 creates a Complex64 tensor from a Go slice.
func FromComplex64(data []complex64, shape Shape) (*RawTensor, error) {
	return tensor.FromComplex64(data, shape)
}

// FromComplex128 creates a Complex128 tensor from a Go slice.
func FromComplex128(data []complex128, shape Shape) (*RawTensor, error) {
	return tensor.FromComplex128(data, shape)
}
