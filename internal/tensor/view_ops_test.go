package tensor

import (
	"testing"
)

// arange builds a float32 tensor filled with 0..n-1 for test fixtures.
func arange(t *testing.T, shape Shape) *RawTensor {
	t.Helper()
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = float32(i)
	}
	raw, err := FromFloat32(data, shape)
	if err != nil {
		t.Fatalf("FromFloat32 failed: %v", err)
	}
	return raw
}

func checkF32(t *testing.T, got *RawTensor, wantShape Shape, want []float32) {
	t.Helper()
	if !got.Shape().Equal(wantShape) {
		t.Fatalf("shape = %v, want %v", got.Shape(), wantShape)
	}
	data := got.AsFloat32()
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestReshape(t *testing.T) {
	x := arange(t, Shape{2, 6})

	y, err := Reshape(x, Shape{3, 4})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	checkF32(t, y, Shape{3, 4}, []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})

	// -1 inference
	y, err = Reshape(x, Shape{4, -1})
	if err != nil {
		t.Fatalf("Reshape with -1 failed: %v", err)
	}
	if !y.Shape().Equal(Shape{4, 3}) {
		t.Errorf("inferred shape = %v, want [4 3]", y.Shape())
	}

	if _, err := Reshape(x, Shape{5, 5}); err == nil {
		t.Error("Reshape should reject mismatched element counts")
	}
	if _, err := Reshape(x, Shape{-1, -1}); err == nil {
		t.Error("Reshape should reject multiple -1 dimensions")
	}
}

func TestReshapeSharesBuffer(t *testing.T) {
	x := arange(t, Shape{6})
	y, err := Reshape(x, Shape{2, 3})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	y.AsFloat32()[0] = 100
	if x.AsFloat32()[0] != 100 {
		t.Error("Reshape should alias the source buffer")
	}
}

func TestPermute(t *testing.T) {
	x := arange(t, Shape{2, 3})

	y, err := Permute(x, []int{1, 0})
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	checkF32(t, y, Shape{3, 2}, []float32{0, 3, 1, 4, 2, 5})

	// negative axes wrap
	y, err = Permute(x, []int{-1, -2})
	if err != nil {
		t.Fatalf("Permute with negative axes failed: %v", err)
	}
	if !y.Shape().Equal(Shape{3, 2}) {
		t.Errorf("shape = %v, want [3 2]", y.Shape())
	}

	if _, err := Permute(x, []int{0, 0}); err == nil {
		t.Error("Permute should reject duplicate axes")
	}
	if _, err := Permute(x, []int{0}); err == nil {
		t.Error("Permute should reject wrong axis count")
	}
}

func TestPermute3D(t *testing.T) {
	x := arange(t, Shape{2, 3, 4})
	y, err := Permute(x, []int{2, 0, 1})
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	if !y.Shape().Equal(Shape{4, 2, 3}) {
		t.Fatalf("shape = %v, want [4 2 3]", y.Shape())
	}
	// y[i][j][k] == x[j][k][i]
	got := y.AsFloat32()
	src := x.AsFloat32()
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 3; k++ {
				want := src[j*12+k*4+i]
				if got[i*6+j*3+k] != want {
					t.Fatalf("y[%d][%d][%d] = %v, want %v", i, j, k, got[i*6+j*3+k], want)
				}
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	x := arange(t, Shape{2, 3, 4})
	y, err := Transpose(x, 0, 2)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	if !y.Shape().Equal(Shape{4, 3, 2}) {
		t.Errorf("shape = %v, want [4 3 2]", y.Shape())
	}

	// transpose twice restores the original
	z, err := Transpose(y, 0, 2)
	if err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	checkF32(t, z, x.Shape(), x.AsFloat32())
}

func TestT(t *testing.T) {
	x := arange(t, Shape{2, 3})
	y, err := T(x)
	if err != nil {
		t.Fatalf("T failed: %v", err)
	}
	checkF32(t, y, Shape{3, 2}, []float32{0, 3, 1, 4, 2, 5})

	// rank 1 and 0 are identity
	v := arange(t, Shape{4})
	y, err = T(v)
	if err != nil {
		t.Fatalf("T on vector failed: %v", err)
	}
	checkF32(t, y, Shape{4}, []float32{0, 1, 2, 3})

	x3 := arange(t, Shape{2, 2, 2})
	if _, err := T(x3); err == nil {
		t.Error("T should reject tensors with rank > 2")
	}
}

func TestSqueeze(t *testing.T) {
	x := arange(t, Shape{1, 3, 1, 2})

	y, err := Squeeze(x)
	if err != nil {
		t.Fatalf("Squeeze failed: %v", err)
	}
	if !y.Shape().Equal(Shape{3, 2}) {
		t.Errorf("shape = %v, want [3 2]", y.Shape())
	}

	y, err = Squeeze(x, 0)
	if err != nil {
		t.Fatalf("Squeeze(0) failed: %v", err)
	}
	if !y.Shape().Equal(Shape{3, 1, 2}) {
		t.Errorf("shape = %v, want [3 1 2]", y.Shape())
	}

	// size != 1 axes are kept
	y, err = Squeeze(x, 1)
	if err != nil {
		t.Fatalf("Squeeze(1) failed: %v", err)
	}
	if !y.Shape().Equal(Shape{1, 3, 1, 2}) {
		t.Errorf("shape = %v, want unchanged [1 3 1 2]", y.Shape())
	}

	// negative axis wraps
	y, err = Squeeze(x, -2)
	if err != nil {
		t.Fatalf("Squeeze(-2) failed: %v", err)
	}
	if !y.Shape().Equal(Shape{1, 3, 2}) {
		t.Errorf("shape = %v, want [1 3 2]", y.Shape())
	}
}

func TestUnsqueeze(t *testing.T) {
	x := arange(t, Shape{2, 3})

	y, err := Unsqueeze(x, 0)
	if err != nil {
		t.Fatalf("Unsqueeze(0) failed: %v", err)
	}
	if !y.Shape().Equal(Shape{1, 2, 3}) {
		t.Errorf("shape = %v, want [1 2 3]", y.Shape())
	}

	y, err = Unsqueeze(x, 2)
	if err != nil {
		t.Fatalf("Unsqueeze(2) failed: %v", err)
	}
	if !y.Shape().Equal(Shape{2, 3, 1}) {
		t.Errorf("shape = %v, want [2 3 1]", y.Shape())
	}

	// -1 appends at the end of the output shape
	y, err = Unsqueeze(x, -1)
	if err != nil {
		t.Fatalf("Unsqueeze(-1) failed: %v", err)
	}
	if !y.Shape().Equal(Shape{2, 3, 1}) {
		t.Errorf("shape = %v, want [2 3 1]", y.Shape())
	}

	if _, err := Unsqueeze(x, 3); err == nil {
		t.Error("Unsqueeze should reject out-of-range axis")
	}
}

func TestSlice(t *testing.T) {
	x := arange(t, Shape{10})

	y, err := Slice(x, 0, 2, 7, 1)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	checkF32(t, y, Shape{5}, []float32{2, 3, 4, 5, 6})

	// step
	y, err = Slice(x, 0, 1, 8, 3)
	if err != nil {
		t.Fatalf("Slice with step failed: %v", err)
	}
	checkF32(t, y, Shape{3}, []float32{1, 4, 7})

	// negative bounds wrap, end is clamped
	y, err = Slice(x, 0, -3, 100, 1)
	if err != nil {
		t.Fatalf("Slice with negative start failed: %v", err)
	}
	checkF32(t, y, Shape{3}, []float32{7, 8, 9})

	if _, err := Slice(x, 0, 5, 2, 1); err == nil {
		t.Error("Slice should reject empty ranges")
	}
	if _, err := Slice(x, 0, 0, 5, 0); err == nil {
		t.Error("Slice should reject step < 1")
	}
}

func TestSlice2D(t *testing.T) {
	x := arange(t, Shape{3, 4})
	y, err := Slice(x, 1, 1, 3, 1)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	checkF32(t, y, Shape{3, 2}, []float32{1, 2, 5, 6, 9, 10})
}

func TestSelect(t *testing.T) {
	x := arange(t, Shape{3, 4})

	y, err := Select(x, 0, 1)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	checkF32(t, y, Shape{4}, []float32{4, 5, 6, 7})

	y, err = Select(x, 1, -1)
	if err != nil {
		t.Fatalf("Select with negative index failed: %v", err)
	}
	checkF32(t, y, Shape{3}, []float32{3, 7, 11})

	if _, err := Select(x, 0, 3); err == nil {
		t.Error("Select should reject out-of-range index")
	}
}

func TestDiagonal(t *testing.T) {
	x := arange(t, Shape{4, 6})

	y, err := Diagonal(x, 0, 0, 1)
	if err != nil {
		t.Fatalf("Diagonal failed: %v", err)
	}
	checkF32(t, y, Shape{4}, []float32{0, 7, 14, 21})

	y, err = Diagonal(x, 2, 0, 1)
	if err != nil {
		t.Fatalf("Diagonal(+2) failed: %v", err)
	}
	checkF32(t, y, Shape{4}, []float32{2, 9, 16, 23})

	y, err = Diagonal(x, -1, 0, 1)
	if err != nil {
		t.Fatalf("Diagonal(-1) failed: %v", err)
	}
	checkF32(t, y, Shape{3}, []float32{6, 13, 20})
}

func TestDiagonalBatched(t *testing.T) {
	x := arange(t, Shape{2, 3, 3})
	y, err := Diagonal(x, 0, 1, 2)
	if err != nil {
		t.Fatalf("Diagonal failed: %v", err)
	}
	checkF32(t, y, Shape{2, 3}, []float32{0, 4, 8, 9, 13, 17})
}

func TestSplit(t *testing.T) {
	x := arange(t, Shape{10})

	chunks, err := Split(x, 3, 0)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}
	checkF32(t, chunks[0], Shape{3}, []float32{0, 1, 2})
	checkF32(t, chunks[1], Shape{3}, []float32{3, 4, 5})
	checkF32(t, chunks[2], Shape{3}, []float32{6, 7, 8})
	checkF32(t, chunks[3], Shape{1}, []float32{9})
}

func TestSplitWithSizes(t *testing.T) {
	x := arange(t, Shape{10})

	chunks, err := SplitWithSizes(x, []int{2, 5, 3}, 0)
	if err != nil {
		t.Fatalf("SplitWithSizes failed: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	checkF32(t, chunks[0], Shape{2}, []float32{0, 1})
	checkF32(t, chunks[1], Shape{5}, []float32{2, 3, 4, 5, 6})
	checkF32(t, chunks[2], Shape{3}, []float32{7, 8, 9})

	if _, err := SplitWithSizes(x, []int{2, 5}, 0); err == nil {
		t.Error("SplitWithSizes should reject sizes not summing to the dimension")
	}
}

func TestUnbind(t *testing.T) {
	x := arange(t, Shape{3, 2})

	rows, err := Unbind(x, 0)
	if err != nil {
		t.Fatalf("Unbind failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d slices, want 3", len(rows))
	}
	checkF32(t, rows[1], Shape{2}, []float32{2, 3})

	cols, err := Unbind(x, -1)
	if err != nil {
		t.Fatalf("Unbind(-1) failed: %v", err)
	}
	checkF32(t, cols[0], Shape{3}, []float32{0, 2, 4})
}

func TestExpand(t *testing.T) {
	x, _ := FromFloat32([]float32{1, 2, 3}, Shape{1, 3})

	y, err := Expand(x, Shape{4, 3})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	checkF32(t, y, Shape{4, 3}, []float32{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3})

	// rank promotion pads on the left
	v, _ := FromFloat32([]float32{5, 6}, Shape{2})
	y, err = Expand(v, Shape{3, 2})
	if err != nil {
		t.Fatalf("Expand with rank promotion failed: %v", err)
	}
	checkF32(t, y, Shape{3, 2}, []float32{5, 6, 5, 6, 5, 6})

	if _, err := Expand(x, Shape{4, 5}); err == nil {
		t.Error("Expand should reject non-broadcastable targets")
	}
}

func TestUnfold(t *testing.T) {
	x := arange(t, Shape{6})

	y, err := Unfold(x, 0, 3, 2)
	if err != nil {
		t.Fatalf("Unfold failed: %v", err)
	}
	checkF32(t, y, Shape{2, 3}, []float32{0, 1, 2, 2, 3, 4})

	// non-overlapping windows
	y, err = Unfold(x, 0, 2, 2)
	if err != nil {
		t.Fatalf("Unfold failed: %v", err)
	}
	checkF32(t, y, Shape{3, 2}, []float32{0, 1, 2, 3, 4, 5})

	if _, err := Unfold(x, 0, 7, 1); err == nil {
		t.Error("Unfold should reject window size larger than the dimension")
	}
}

func TestViewAsRealAndComplex(t *testing.T) {
	x, _ := FromComplex64([]complex64{complex(1, 2), complex(3, 4)}, Shape{2})

	re, err := ViewAsReal(x)
	if err != nil {
		t.Fatalf("ViewAsReal failed: %v", err)
	}
	checkF32(t, re, Shape{2, 2}, []float32{1, 2, 3, 4})

	back, err := ViewAsComplex(re)
	if err != nil {
		t.Fatalf("ViewAsComplex failed: %v", err)
	}
	if !back.Shape().Equal(Shape{2}) {
		t.Fatalf("shape = %v, want [2]", back.Shape())
	}
	got := back.AsComplex64()
	if got[0] != complex(1, 2) || got[1] != complex(3, 4) {
		t.Errorf("round trip values = %v", got)
	}

	// view_as_real aliases the source buffer
	re.AsFloat32()[1] = -2
	if x.AsComplex64()[0] != complex(1, -2) {
		t.Error("ViewAsReal should alias the complex buffer")
	}

	f, _ := FromFloat32([]float32{1, 2, 3}, Shape{3})
	if _, err := ViewAsComplex(f); err == nil {
		t.Error("ViewAsComplex should require a trailing dimension of 2")
	}
	if _, err := ViewAsReal(f); err == nil {
		t.Error("ViewAsReal should reject non-complex tensors")
	}
}

func TestViewDType(t *testing.T) {
	x := arange(t, Shape{2, 4})

	y, err := ViewDType(x, Float64)
	if err != nil {
		t.Fatalf("ViewDType failed: %v", err)
	}
	if !y.Shape().Equal(Shape{2, 2}) {
		t.Errorf("shape = %v, want [2 2]", y.Shape())
	}

	back, err := ViewDType(y, Float32)
	if err != nil {
		t.Fatalf("ViewDType back failed: %v", err)
	}
	checkF32(t, back, x.Shape(), x.AsFloat32())

	odd := arange(t, Shape{2, 3})
	if _, err := ViewDType(odd, Float64); err == nil {
		t.Error("ViewDType should reject indivisible trailing dimensions")
	}
}
