package tensor

import (
	"testing"

	"github.com/x448/float16"
)

func TestSumToKeepDim(t *testing.T) {
	x, _ := FromFloat32([]float32{
		1, 2, 3, 4, 5,
		10, 20, 30, 40, 50,
		100, 200, 300, 400, 500,
	}, Shape{3, 5})

	out, err := SumTo(x, Shape{1, 5})
	if err != nil {
		t.Fatalf("SumTo failed: %v", err)
	}
	checkF32(t, out, Shape{1, 5}, []float32{111, 222, 333, 444, 555})
}

func TestSumToRankReduction(t *testing.T) {
	x := arange(t, Shape{3, 4})

	// summing away the leading dimension entirely
	out, err := SumTo(x, Shape{4})
	if err != nil {
		t.Fatalf("SumTo failed: %v", err)
	}
	checkF32(t, out, Shape{4}, []float32{12, 15, 18, 21})
}

func TestSumToMixed(t *testing.T) {
	x := arange(t, Shape{2, 3, 4})

	out, err := SumTo(x, Shape{3, 1})
	if err != nil {
		t.Fatalf("SumTo failed: %v", err)
	}
	// sum over dims 0 and 2: rows of the 3x4 planes, both batches
	checkF32(t, out, Shape{3, 1}, []float32{
		0 + 1 + 2 + 3 + 12 + 13 + 14 + 15,
		4 + 5 + 6 + 7 + 16 + 17 + 18 + 19,
		8 + 9 + 10 + 11 + 20 + 21 + 22 + 23,
	})
}

func TestSumToIdentity(t *testing.T) {
	x := arange(t, Shape{2, 3})
	out, err := SumTo(x, Shape{2, 3})
	if err != nil {
		t.Fatalf("SumTo failed: %v", err)
	}
	checkF32(t, out, x.Shape(), x.AsFloat32())

	// identity must still copy
	out.AsFloat32()[0] = 99
	if x.AsFloat32()[0] != 0 {
		t.Error("SumTo identity must not alias the input")
	}
}

func TestSumToRejectsIncompatible(t *testing.T) {
	x := arange(t, Shape{3, 5})
	if _, err := SumTo(x, Shape{2, 5}); err == nil {
		t.Error("SumTo should reject non-broadcast target shapes")
	}
	if _, err := SumTo(x, Shape{1, 3, 5}); err == nil {
		t.Error("SumTo should reject targets of higher rank")
	}
}

func TestSumToFloat16(t *testing.T) {
	vals := []float16.Float16{
		float16.Fromfloat32(1), float16.Fromfloat32(2),
		float16.Fromfloat32(3), float16.Fromfloat32(4),
	}
	x, err := NewRaw(Shape{2, 2}, Float16, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(x.AsFloat16(), vals)

	out, err := SumTo(x, Shape{1, 2})
	if err != nil {
		t.Fatalf("SumTo failed: %v", err)
	}
	got := out.AsFloat16()
	if got[0].Float32() != 4 || got[1].Float32() != 6 {
		t.Errorf("float16 sums = (%v, %v), want (4, 6)", got[0].Float32(), got[1].Float32())
	}
}

func TestUnfoldBackwardOverlap(t *testing.T) {
	// windows of size 3, step 2 over length 6: [0..2] and [2..4]; index 2 is
	// covered twice, indices 5 not at all.
	grad, _ := FromFloat32([]float32{1, 1, 1, 1, 1, 1}, Shape{2, 3})

	out, err := UnfoldBackward(grad, Shape{6}, 0, 3, 2)
	if err != nil {
		t.Fatalf("UnfoldBackward failed: %v", err)
	}
	checkF32(t, out, Shape{6}, []float32{1, 1, 2, 1, 1, 0})
}

func TestUnfoldBackwardRoundTrip(t *testing.T) {
	x := arange(t, Shape{8})
	windows, err := Unfold(x, 0, 2, 2)
	if err != nil {
		t.Fatalf("Unfold failed: %v", err)
	}

	// with non-overlapping windows covering the dim, the accumulation
	// reproduces the source exactly
	out, err := UnfoldBackward(windows, Shape{8}, 0, 2, 2)
	if err != nil {
		t.Fatalf("UnfoldBackward failed: %v", err)
	}
	checkF32(t, out, x.Shape(), x.AsFloat32())
}

func TestUnfoldBackwardShapeCheck(t *testing.T) {
	grad := arange(t, Shape{2, 2})
	if _, err := UnfoldBackward(grad, Shape{6}, 0, 3, 2); err == nil {
		t.Error("UnfoldBackward should reject grads that do not match the window shape")
	}
}
