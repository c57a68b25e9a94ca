package tensor

import (
	"testing"
)

func TestRawTensorAccessors(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	data := raw.AsFloat32()
	if len(data) != 6 {
		t.Errorf("AsFloat32 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawTensorAccessorPanicsOnWrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for AsInt64 on float32 tensor")
		}
	}()
	raw.AsInt64()
}

func TestRawTensorComplexAccessors(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Complex64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	data := raw.AsComplex64()
	if len(data) != 4 {
		t.Errorf("AsComplex64 length = %d, want 4", len(data))
	}

	data[1] = complex(1, -2)
	if raw.AsComplex64()[1] != complex(1, -2) {
		t.Error("AsComplex64 should return zero-copy slice")
	}

	if raw.ByteSize() != 4*8 {
		t.Errorf("ByteSize = %d, want 32", raw.ByteSize())
	}
}

func TestRawTensorFloat16(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float16, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.ByteSize() != 8 {
		t.Errorf("ByteSize = %d, want 8", raw.ByteSize())
	}
	if len(raw.AsFloat16()) != 4 {
		t.Errorf("AsFloat16 length = %d, want 4", len(raw.AsFloat16()))
	}
}

func TestCloneSharesBuffer(t *testing.T) {
	raw, _ := FromFloat32([]float32{1, 2, 3, 4}, Shape{2, 2})
	clone := raw.Clone()

	clone.AsFloat32()[0] = 99
	if raw.AsFloat32()[0] != 99 {
		t.Error("Clone should share the underlying buffer")
	}
}

func TestDeepCloneCopiesBuffer(t *testing.T) {
	raw, _ := FromFloat32([]float32{1, 2, 3, 4}, Shape{2, 2})
	clone := raw.DeepClone()

	clone.AsFloat32()[0] = 99
	if raw.AsFloat32()[0] != 1 {
		t.Error("DeepClone must not share the underlying buffer")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("DeepClone shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}

func TestDataTypeSizes(t *testing.T) {
	cases := map[DataType]int{
		Float16:    2,
		Float32:    4,
		Float64:    8,
		Int32:      4,
		Int64:      8,
		Uint8:      1,
		Bool:       1,
		Complex64:  8,
		Complex128: 16,
	}
	for dt, want := range cases {
		if got := dt.Size(); got != want {
			t.Errorf("%s.Size() = %d, want %d", dt, got, want)
		}
	}
}

func TestDataTypeComplexPairing(t *testing.T) {
	if Complex64.RealType() != Float32 || Complex128.RealType() != Float64 {
		t.Error("RealType pairing is wrong")
	}
	if Float32.ComplexType() != Complex64 || Float64.ComplexType() != Complex128 {
		t.Error("ComplexType pairing is wrong")
	}
	if !Complex64.IsComplex() || Float32.IsComplex() {
		t.Error("IsComplex is wrong")
	}
}
