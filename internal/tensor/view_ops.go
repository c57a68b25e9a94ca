package tensor

import "fmt"

// Reshape returns a tensor with the given shape sharing the input's data.
// Supports a single -1 dimension, inferred from the element count.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Reshape: input tensor is nil")
	}

	totalElements := x.NumElements()
	inferIdx := -1
	product := 1
	for i, dim := range newShape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("Reshape: can only have one -1 dimension")
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("Reshape: dimensions must be positive, got %d", dim)
		default:
			product *= dim
		}
	}

	actualShape := make(Shape, len(newShape))
	copy(actualShape, newShape)

	if inferIdx >= 0 {
		if product == 0 || totalElements%product != 0 {
			return nil, fmt.Errorf("Reshape: cannot infer dimension for shape %v from %d elements", newShape, totalElements)
		}
		actualShape[inferIdx] = totalElements / product
	}

	if actualShape.NumElements() != totalElements {
		return nil, fmt.Errorf("Reshape: cannot reshape %d elements to shape %v (%d elements)",
			totalElements, actualShape, actualShape.NumElements())
	}

	result := x.Clone()
	result.shape = actualShape
	result.stride = actualShape.ComputeStrides()
	return result, nil
}

// ViewShape reinterprets the tensor's contiguous layout under a new shape.
// Element counts must match (no -1 inference is applied by callers here,
// but Reshape semantics are shared).
func ViewShape(x *RawTensor, shape Shape) (*RawTensor, error) {
	return Reshape(x, shape)
}

// Permute reorders the tensor's axes according to the given permutation
// and materializes the result in row-major order.
func Permute(x *RawTensor, axes []int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Permute: input tensor is nil")
	}

	ndim := x.shape.Rank()
	if len(axes) != ndim {
		return nil, fmt.Errorf("Permute: axes length %d must match tensor dimensions %d", len(axes), ndim)
	}

	normalized := make([]int, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("Permute: axis %d out of range [0, %d)", axes[i], ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("Permute: duplicate axis %d", ax)
		}
		seen[ax] = true
		normalized[i] = ax
	}

	newShape := make(Shape, ndim)
	for i, ax := range normalized {
		newShape[i] = x.shape[ax]
	}

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Permute: %w", err)
	}

	es := x.dtype.Size()
	in, out := x.Data(), result.Data()
	oldStrides := x.shape.ComputeStrides()
	permStrides := make([]int, ndim)
	for i, ax := range normalized {
		permStrides[i] = oldStrides[ax]
	}

	total := newShape.NumElements()
	idx := make([]int, ndim)
	for i := 0; i < total; i++ {
		unravel(i, newShape, idx)
		copyElem(out, in, i, ravel(idx, permStrides), es)
	}
	return result, nil
}

// Transpose swaps two axes of the tensor.
func Transpose(x *RawTensor, dim0, dim1 int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Transpose: input tensor is nil")
	}

	ndim := x.shape.Rank()
	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = i
	}
	d0, d1 := dim0, dim1
	if d0 < 0 {
		d0 += ndim
	}
	if d1 < 0 {
		d1 += ndim
	}
	if d0 < 0 || d0 >= ndim || d1 < 0 || d1 >= ndim {
		return nil, fmt.Errorf("Transpose: dims (%d, %d) out of range for %d dimensions", dim0, dim1, ndim)
	}
	axes[d0], axes[d1] = d1, d0
	return Permute(x, axes)
}

// T transposes a tensor of rank 2 or lower. Rank 0 and 1 tensors are
// returned as metadata clones; rank 2 tensors have their axes swapped.
func T(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("T: input tensor is nil")
	}
	if x.shape.Rank() > 2 {
		return nil, fmt.Errorf("T: expected a tensor with <= 2 dimensions, got %d", x.shape.Rank())
	}
	if x.shape.Rank() < 2 {
		return x.Clone(), nil
	}
	return Transpose(x, 0, 1)
}

// Squeeze removes size-1 dimensions. With no axes, every size-1 dimension
// is removed. With explicit axes, each listed axis is removed only when its
// size is 1; other listed axes are left untouched (no-op, matching the
// forward view semantics).
func Squeeze(x *RawTensor, axes ...int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Squeeze: input tensor is nil")
	}

	ndim := x.shape.Rank()
	drop := make([]bool, ndim)
	if len(axes) == 0 {
		for i, dim := range x.shape {
			drop[i] = dim == 1
		}
	} else {
		for _, ax := range axes {
			if ax < 0 {
				ax += ndim
			}
			if ax < 0 || ax >= ndim {
				return nil, fmt.Errorf("Squeeze: axis %d out of range [0, %d)", ax, ndim)
			}
			if x.shape[ax] == 1 {
				drop[ax] = true
			}
		}
	}

	newShape := make(Shape, 0, ndim)
	for i, dim := range x.shape {
		if !drop[i] {
			newShape = append(newShape, dim)
		}
	}
	return Reshape(x, newShape)
}

// Unsqueeze inserts a size-1 dimension at the given position.
// Supports negative axis indexing against the output rank.
func Unsqueeze(x *RawTensor, axis int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Unsqueeze: input tensor is nil")
	}

	newNdim := x.shape.Rank() + 1
	if axis < 0 {
		axis += newNdim
	}
	if axis < 0 || axis >= newNdim {
		return nil, fmt.Errorf("Unsqueeze: axis %d out of range [0, %d)", axis, newNdim)
	}

	newShape := make(Shape, 0, newNdim)
	newShape = append(newShape, x.shape[:axis]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, x.shape[axis:]...)
	return Reshape(x, newShape)
}

// Slice extracts a half-open stepped region [start, end) along a single
// dimension. Negative start/end wrap against the dimension size and
// out-of-range values are clamped; step must be >= 1.
func Slice(x *RawTensor, dim, start, end, step int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Slice: input tensor is nil")
	}

	ndim := x.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("Slice: dim %d out of range for %d dimensions", dim, ndim)
	}
	if step < 1 {
		return nil, fmt.Errorf("Slice: step must be >= 1, got %d", step)
	}

	dimSize := x.shape[dim]
	start, end = normalizeRange(start, end, dimSize)

	newDim := 0
	if end > start {
		newDim = (end - start + step - 1) / step
	}
	if newDim == 0 {
		return nil, fmt.Errorf("Slice: empty result for range [%d, %d) step %d on dim of size %d", start, end, step, dimSize)
	}

	newShape := x.shape.Clone()
	newShape[dim] = newDim

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Slice: %w", err)
	}

	es := x.dtype.Size()
	in, out := x.Data(), result.Data()
	outer := x.shape.outerSize(dim)
	inner := x.shape.innerSize(dim)

	dstIdx := 0
	for o := 0; o < outer; o++ {
		for k := 0; k < newDim; k++ {
			srcIdx := (o*dimSize + start + k*step) * inner
			copyRun(out, in, dstIdx, srcIdx, inner, es)
			dstIdx += inner
		}
	}
	return result, nil
}

// Select extracts the sub-tensor at a single index along a dimension,
// removing that dimension. Negative dim and index wrap.
func Select(x *RawTensor, dim, index int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Select: input tensor is nil")
	}

	ndim := x.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("Select: dim %d out of range for %d dimensions", dim, ndim)
	}

	dimSize := x.shape[dim]
	if index < 0 {
		index += dimSize
	}
	if index < 0 || index >= dimSize {
		return nil, fmt.Errorf("Select: index %d out of range for dim of size %d", index, dimSize)
	}

	newShape := make(Shape, 0, ndim-1)
	newShape = append(newShape, x.shape[:dim]...)
	newShape = append(newShape, x.shape[dim+1:]...)

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}

	es := x.dtype.Size()
	in, out := x.Data(), result.Data()
	outer := x.shape.outerSize(dim)
	inner := x.shape.innerSize(dim)

	for o := 0; o < outer; o++ {
		srcIdx := (o*dimSize + index) * inner
		copyRun(out, in, o*inner, srcIdx, inner, es)
	}
	return result, nil
}

// diagonalGeometry resolves the wrapped dims, the diagonal length and the
// positions of the non-diagonal dims for Diagonal and DiagonalScatter.
func diagonalGeometry(shape Shape, offset, dim1, dim2 int) (d1, d2, diagSize int, others []int, err error) {
	ndim := shape.Rank()
	d1, d2 = dim1, dim2
	if d1 < 0 {
		d1 += ndim
	}
	if d2 < 0 {
		d2 += ndim
	}
	if d1 < 0 || d1 >= ndim || d2 < 0 || d2 >= ndim {
		return 0, 0, 0, nil, fmt.Errorf("diagonal dims (%d, %d) out of range for %d dimensions", dim1, dim2, ndim)
	}
	if d1 == d2 {
		return 0, 0, 0, nil, fmt.Errorf("diagonal dims must differ, got %d and %d", d1, d2)
	}

	if offset >= 0 {
		diagSize = min(shape[d1], shape[d2]-offset)
	} else {
		diagSize = min(shape[d1]+offset, shape[d2])
	}
	if diagSize <= 0 {
		return 0, 0, 0, nil, fmt.Errorf("diagonal with offset %d is empty for shape %v", offset, shape)
	}

	others = make([]int, 0, ndim-2)
	for i := 0; i < ndim; i++ {
		if i != d1 && i != d2 {
			others = append(others, i)
		}
	}
	return d1, d2, diagSize, others, nil
}

// Diagonal extracts the diagonal of the (dim1, dim2) plane with the given
// offset. The two plane dims are removed and the diagonal length is
// appended as the last dimension.
func Diagonal(x *RawTensor, offset, dim1, dim2 int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Diagonal: input tensor is nil")
	}

	d1, d2, diagSize, others, err := diagonalGeometry(x.shape, offset, dim1, dim2)
	if err != nil {
		return nil, fmt.Errorf("Diagonal: %w", err)
	}

	newShape := make(Shape, 0, len(others)+1)
	for _, od := range others {
		newShape = append(newShape, x.shape[od])
	}
	newShape = append(newShape, diagSize)

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Diagonal: %w", err)
	}

	es := x.dtype.Size()
	in, out := x.Data(), result.Data()
	inStrides := x.shape.ComputeStrides()

	total := newShape.NumElements()
	idx := make([]int, newShape.Rank())
	for i := 0; i < total; i++ {
		unravel(i, newShape, idx)
		srcFlat := diagonalSourceIndex(idx, others, inStrides, d1, d2, offset)
		copyElem(out, in, i, srcFlat, es)
	}
	return result, nil
}

// diagonalSourceIndex maps a (others..., diag) coordinate to a flat index
// in the original tensor.
func diagonalSourceIndex(idx, others, inStrides []int, d1, d2, offset int) int {
	i := idx[len(idx)-1]
	row, col := i, i+offset
	if offset < 0 {
		row, col = i-offset, i
	}
	flat := row*inStrides[d1] + col*inStrides[d2]
	for k, od := range others {
		flat += idx[k] * inStrides[od]
	}
	return flat
}

// Split partitions the tensor along a dimension into chunks of splitSize
// elements; the final chunk is shorter when the dimension size is not a
// multiple of splitSize.
func Split(x *RawTensor, splitSize, dim int) ([]*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Split: input tensor is nil")
	}
	if splitSize < 1 {
		return nil, fmt.Errorf("Split: split size must be >= 1, got %d", splitSize)
	}

	ndim := x.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("Split: dim %d out of range for %d dimensions", dim, ndim)
	}

	dimSize := x.shape[dim]
	results := make([]*RawTensor, 0, (dimSize+splitSize-1)/splitSize)
	for start := 0; start < dimSize; start += splitSize {
		end := min(start+splitSize, dimSize)
		chunk, err := Slice(x, dim, start, end, 1)
		if err != nil {
			return nil, fmt.Errorf("Split: %w", err)
		}
		results = append(results, chunk)
	}
	return results, nil
}

// SplitWithSizes partitions the tensor along a dimension into chunks with
// the given sizes. The sizes must sum to the dimension size.
func SplitWithSizes(x *RawTensor, sizes []int, dim int) ([]*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("SplitWithSizes: input tensor is nil")
	}

	ndim := x.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("SplitWithSizes: dim %d out of range for %d dimensions", dim, ndim)
	}

	total := 0
	for _, s := range sizes {
		total += s
	}
	if total != x.shape[dim] {
		return nil, fmt.Errorf("SplitWithSizes: sizes sum to %d, but dim has size %d", total, x.shape[dim])
	}

	results := make([]*RawTensor, len(sizes))
	start := 0
	for i, s := range sizes {
		chunk, err := Slice(x, dim, start, start+s, 1)
		if err != nil {
			return nil, fmt.Errorf("SplitWithSizes: %w", err)
		}
		results[i] = chunk
		start += s
	}
	return results, nil
}

// Unbind removes a dimension and returns the slices along it.
func Unbind(x *RawTensor, dim int) ([]*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Unbind: input tensor is nil")
	}

	ndim := x.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("Unbind: dim %d out of range for %d dimensions", dim, ndim)
	}

	results := make([]*RawTensor, x.shape[dim])
	for i := range results {
		sel, err := Select(x, dim, i)
		if err != nil {
			return nil, fmt.Errorf("Unbind: %w", err)
		}
		results[i] = sel
	}
	return results, nil
}

// Expand broadcasts a tensor to a larger shape. Dimensions are aligned
// from the right; each source dimension must equal the target or be 1.
func Expand(x *RawTensor, targetShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Expand: input tensor is nil")
	}

	xShape := x.shape
	if len(targetShape) < len(xShape) {
		return nil, fmt.Errorf("Expand: target shape must have at least as many dimensions as input")
	}

	paddedShape := make(Shape, len(targetShape))
	diff := len(targetShape) - len(xShape)
	for i := 0; i < diff; i++ {
		paddedShape[i] = 1
	}
	copy(paddedShape[diff:], xShape)

	for i := range targetShape {
		if paddedShape[i] != 1 && paddedShape[i] != targetShape[i] {
			return nil, fmt.Errorf("Expand: cannot expand dimension %d from %d to %d", i, paddedShape[i], targetShape[i])
		}
	}

	result, err := NewRaw(targetShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}

	es := x.dtype.Size()
	in, out := x.Data(), result.Data()
	srcStrides := paddedShape.ComputeStrides()
	for j := range srcStrides {
		if paddedShape[j] == 1 {
			srcStrides[j] = 0 // broadcast: always index 0
		}
	}

	total := targetShape.NumElements()
	idx := make([]int, len(targetShape))
	for i := 0; i < total; i++ {
		unravel(i, targetShape, idx)
		copyElem(out, in, i, ravel(idx, srcStrides), es)
	}
	return result, nil
}

// Unfold extracts sliding windows of the given size along a dimension.
// The dimension is replaced by the window count and the window size is
// appended as the last dimension.
func Unfold(x *RawTensor, dim, size, step int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Unfold: input tensor is nil")
	}

	ndim := x.shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return nil, fmt.Errorf("Unfold: dim %d out of range for %d dimensions", dim, ndim)
	}
	dimSize := x.shape[dim]
	if size < 1 || size > dimSize {
		return nil, fmt.Errorf("Unfold: window size %d out of range (0, %d]", size, dimSize)
	}
	if step < 1 {
		return nil, fmt.Errorf("Unfold: step must be >= 1, got %d", step)
	}

	numWindows := (dimSize-size)/step + 1
	newShape := x.shape.Clone()
	newShape[dim] = numWindows
	newShape = append(newShape, size)

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Unfold: %w", err)
	}

	es := x.dtype.Size()
	in, out := x.Data(), result.Data()
	inStrides := x.shape.ComputeStrides()

	total := newShape.NumElements()
	idx := make([]int, newShape.Rank())
	for i := 0; i < total; i++ {
		unravel(i, newShape, idx)
		srcFlat := 0
		for j := 0; j < ndim; j++ {
			coord := idx[j]
			if j == dim {
				coord = idx[j]*step + idx[ndim] // window start + in-window offset
			}
			srcFlat += coord * inStrides[j]
		}
		copyElem(out, in, i, srcFlat, es)
	}
	return result, nil
}

// ViewAsReal reinterprets a complex tensor as a real tensor with an extra
// trailing dimension of size 2 holding (real, imag) pairs. Zero-copy.
func ViewAsReal(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("ViewAsReal: input tensor is nil")
	}
	if !x.dtype.IsComplex() {
		return nil, fmt.Errorf("ViewAsReal: expected a complex dtype, got %s", x.dtype)
	}

	result := x.Clone()
	result.dtype = x.dtype.RealType()
	result.shape = append(x.shape.Clone(), 2)
	result.stride = result.shape.ComputeStrides()
	return result, nil
}

// ViewAsComplex reinterprets a real floating-point tensor whose last
// dimension has size 2 as a complex tensor without that dimension.
// Zero-copy.
func ViewAsComplex(x *RawTensor) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("ViewAsComplex: input tensor is nil")
	}
	if x.dtype != Float32 && x.dtype != Float64 {
		return nil, fmt.Errorf("ViewAsComplex: expected float32 or float64, got %s", x.dtype)
	}
	ndim := x.shape.Rank()
	if ndim == 0 || x.shape[ndim-1] != 2 {
		return nil, fmt.Errorf("ViewAsComplex: last dimension must have size 2, got shape %v", x.shape)
	}

	result := x.Clone()
	result.dtype = x.dtype.ComplexType()
	result.shape = x.shape[:ndim-1].Clone()
	result.stride = result.shape.ComputeStrides()
	return result, nil
}

// ViewDType reinterprets the tensor's bytes under a different element type.
// When the element sizes differ the last dimension is rescaled by the size
// ratio; the reinterpretation fails if the bytes do not divide evenly.
// Zero-copy.
func ViewDType(x *RawTensor, dtype DataType) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("ViewDType: input tensor is nil")
	}
	if x.dtype == dtype {
		return x.Clone(), nil
	}

	oldSize, newSize := x.dtype.Size(), dtype.Size()
	newShape := x.shape.Clone()

	if oldSize != newSize {
		ndim := x.shape.Rank()
		if ndim == 0 {
			return nil, fmt.Errorf("ViewDType: cannot view a scalar %s tensor as %s (element sizes differ)", x.dtype, dtype)
		}
		last := newShape[ndim-1]
		switch {
		case oldSize > newSize:
			newShape[ndim-1] = last * (oldSize / newSize)
		case (last*oldSize)%newSize != 0:
			return nil, fmt.Errorf("ViewDType: last dimension %d of %s tensor does not divide into %s elements", last, x.dtype, dtype)
		default:
			newShape[ndim-1] = last * oldSize / newSize
		}
	}

	result := x.Clone()
	result.dtype = dtype
	result.shape = newShape
	result.stride = newShape.ComputeStrides()
	return result, nil
}

// normalizeRange wraps negative start/end against the dimension size and
// clamps both into [0, dimSize].
func normalizeRange(start, end, dimSize int) (int, int) {
	if start < 0 {
		start += dimSize
	}
	if end < 0 {
		end += dimSize
	}
	start = max(0, min(start, dimSize))
	end = max(0, min(end, dimSize))
	return start, end
}
