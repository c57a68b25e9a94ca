package tensor

import "fmt"

// SliceScatter returns a copy of base with the half-open stepped region
// [start, end) along dim replaced by src; every other element of base is
// preserved. src must have base's shape with dim shrunk to the region
// length. Negative start/end wrap and out-of-range values are clamped,
// mirroring Slice.
func SliceScatter(base, src *RawTensor, dim, start, end, step int) (*RawTensor, error) {
	if base == nil || src == nil {
		return nil, fmt.Errorf("SliceScatter: input tensors cannot be nil")
	}
	if base.dtype != src.dtype {
		return nil, fmt.Errorf("SliceScatter: dtype mismatch: %s vs %s", base.dtype, src.dtype)
	}
	if step < 1 {
		return nil, fmt.Errorf("SliceScatter: step must be >= 1, got %d", step)
	}

	ndim := base.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("SliceScatter: dim %d out of range for %d dimensions", dim, ndim)
	}

	dimSize := base.shape[dim]
	start, end = normalizeRange(start, end, dimSize)
	regionLen := 0
	if end > start {
		regionLen = (end - start + step - 1) / step
	}

	expected := base.shape.Clone()
	expected[dim] = regionLen
	if !src.shape.Equal(expected) {
		return nil, fmt.Errorf("SliceScatter: src shape %v does not match region shape %v", src.shape, expected)
	}

	result := base.DeepClone()
	es := base.dtype.Size()
	in, out := src.Data(), result.Data()
	outer := base.shape.outerSize(dim)
	inner := base.shape.innerSize(dim)

	srcIdx := 0
	for o := 0; o < outer; o++ {
		for k := 0; k < regionLen; k++ {
			dstIdx := (o*dimSize + start + k*step) * inner
			copyRun(out, in, dstIdx, srcIdx, inner, es)
			srcIdx += inner
		}
	}
	return result, nil
}

// SelectScatter returns a copy of base with the sub-tensor at index along
// dim replaced by src; every other element of base is preserved. src must
// have base's shape with dim removed.
func SelectScatter(base, src *RawTensor, dim, index int) (*RawTensor, error) {
	if base == nil || src == nil {
		return nil, fmt.Errorf("SelectScatter: input tensors cannot be nil")
	}
	if base.dtype != src.dtype {
		return nil, fmt.Errorf("SelectScatter: dtype mismatch: %s vs %s", base.dtype, src.dtype)
	}

	ndim := base.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("SelectScatter: dim %d out of range for %d dimensions", dim, ndim)
	}

	dimSize := base.shape[dim]
	if index < 0 {
		index += dimSize
	}
	if index < 0 || index >= dimSize {
		return nil, fmt.Errorf("SelectScatter: index %d out of range for dim of size %d", index, dimSize)
	}

	expected := make(Shape, 0, ndim-1)
	expected = append(expected, base.shape[:dim]...)
	expected = append(expected, base.shape[dim+1:]...)
	if !src.shape.Equal(expected) {
		return nil, fmt.Errorf("SelectScatter: src shape %v does not match region shape %v", src.shape, expected)
	}

	result := base.DeepClone()
	es := base.dtype.Size()
	in, out := src.Data(), result.Data()
	outer := base.shape.outerSize(dim)
	inner := base.shape.innerSize(dim)

	for o := 0; o < outer; o++ {
		dstIdx := (o*dimSize + index) * inner
		copyRun(out, in, dstIdx, o*inner, inner, es)
	}
	return result, nil
}

// DiagonalScatter returns a copy of base with the (dim1, dim2) diagonal at
// the given offset replaced by src; every off-diagonal element of base is
// preserved. src must have the shape Diagonal would produce.
func DiagonalScatter(base, src *RawTensor, offset, dim1, dim2 int) (*RawTensor, error) {
	if base == nil || src == nil {
		return nil, fmt.Errorf("DiagonalScatter: input tensors cannot be nil")
	}
	if base.dtype != src.dtype {
		return nil, fmt.Errorf("DiagonalScatter: dtype mismatch: %s vs %s", base.dtype, src.dtype)
	}

	d1, d2, diagSize, others, err := diagonalGeometry(base.shape, offset, dim1, dim2)
	if err != nil {
		return nil, fmt.Errorf("DiagonalScatter: %w", err)
	}

	expected := make(Shape, 0, len(others)+1)
	for _, od := range others {
		expected = append(expected, base.shape[od])
	}
	expected = append(expected, diagSize)
	if !src.shape.Equal(expected) {
		return nil, fmt.Errorf("DiagonalScatter: src shape %v does not match diagonal shape %v", src.shape, expected)
	}

	result := base.DeepClone()
	es := base.dtype.Size()
	in, out := src.Data(), result.Data()
	baseStrides := base.shape.ComputeStrides()

	total := expected.NumElements()
	idx := make([]int, expected.Rank())
	for i := 0; i < total; i++ {
		unravel(i, expected, idx)
		dstFlat := diagonalSourceIndex(idx, others, baseStrides, d1, d2, offset)
		copyElem(out, in, dstFlat, i, es)
	}
	return result, nil
}
