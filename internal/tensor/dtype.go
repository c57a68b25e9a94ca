// Package tensor provides the CPU tensor substrate for the reflow
// functionalization library: raw tensors with shape/stride/dtype metadata
// and the view, scatter and reduction primitives the view-inverse layer
// delegates to.
package tensor

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Float16
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64, Complex64:
		return 8
	case Uint8, Bool:
		return 1
	case Float16:
		return 2
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Float16:
		return "float16"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// IsComplex reports whether the data type has complex elements.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// RealType returns the floating-point type with the same component width
// as a complex type (Complex64 -> Float32, Complex128 -> Float64).
// For non-complex types it returns the type unchanged.
func (dt DataType) RealType() DataType {
	switch dt {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return dt
	}
}

// ComplexType returns the complex type whose components have the width of
// a floating-point type (Float32 -> Complex64, Float64 -> Complex128).
// For other types it returns the type unchanged.
func (dt DataType) ComplexType() DataType {
	switch dt {
	case Float32:
		return Complex64
	case Float64:
		return Complex128
	default:
		return dt
	}
}
