package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Neg returns the element-wise negation of the tensor.
func Neg(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Neg: input tensor is nil")
	}

	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Neg: %w", err)
	}

	switch x.dtype {
	case Float32:
		in, out := x.AsFloat32(), result.AsFloat32()
		for i := range in {
			out[i] = -in[i]
		}
	case Float64:
		in, out := x.AsFloat64(), result.AsFloat64()
		for i := range in {
			out[i] = -in[i]
		}
	case Int32:
		in, out := x.AsInt32(), result.AsInt32()
		for i := range in {
			out[i] = -in[i]
		}
	case Int64:
		in, out := x.AsInt64(), result.AsInt64()
		for i := range in {
			out[i] = -in[i]
		}
	case Float16:
		in, out := x.AsFloat16(), result.AsFloat16()
		for i := range in {
			out[i] = float16.Fromfloat32(-in[i].Float32())
		}
	case Complex64:
		in, out := x.AsComplex64(), result.AsComplex64()
		for i := range in {
			out[i] = -in[i]
		}
	case Complex128:
		in, out := x.AsComplex128(), result.AsComplex128()
		for i := range in {
			out[i] = -in[i]
		}
	default:
		return nil, fmt.Errorf("Neg: unsupported dtype %s", x.dtype)
	}
	return result, nil
}

// Conj returns the element-wise complex conjugate. For non-complex dtypes
// conjugation is the identity and a metadata clone is returned.
func Conj(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Conj: input tensor is nil")
	}
	if !x.dtype.IsComplex() {
		return x.Clone(), nil
	}

	result, err := NewRaw(x.shape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Conj: %w", err)
	}

	switch x.dtype {
	case Complex64:
		in, out := x.AsComplex64(), result.AsComplex64()
		for i := range in {
			out[i] = complex(real(in[i]), -imag(in[i]))
		}
	case Complex128:
		in, out := x.AsComplex128(), result.AsComplex128()
		for i := range in {
			out[i] = complex(real(in[i]), -imag(in[i]))
		}
	}
	return result, nil
}

// ResolveConj materializes any pending conjugation. Conjugation is eager
// in this package, so the input is returned as a metadata clone.
func ResolveConj(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("ResolveConj: input tensor is nil")
	}
	return x.Clone(), nil
}
