package functional

import (
	"github.com/pkg/errors"

	"github.com/reflow-ml/reflow/internal/tensor"
)

// WrapDim normalizes a possibly negative axis index into [0, rank).
// Scalar tensors are treated as rank 1, so 0 and -1 remain addressable.
func WrapDim(dim, rank int) (int, error) {
	if rank <= 0 {
		rank = 1
	}
	if dim < -rank || dim >= rank {
		return 0, errors.Errorf("dimension %d out of range [%d, %d)", dim, -rank, rank)
	}
	if dim < 0 {
		dim += rank
	}
	return dim, nil
}

// invertPermutation computes the group inverse of an axis permutation:
// inv[wrap(dims[i])] = i.
func invertPermutation(dims []int) ([]int, error) {
	n := len(dims)
	inv := make([]int, n)
	for i, d := range dims {
		w, err := WrapDim(d, n)
		if err != nil {
			return nil, err
		}
		inv[w] = i
	}
	return inv, nil
}

// unsqueezeTo re-inserts a singleton axis at every position of sizes that
// holds a 1, iterating target positions in order. This expands a
// fully-squeezed tensor back to the given shape.
func unsqueezeTo(v *tensor.RawTensor, sizes tensor.Shape) (*tensor.RawTensor, error) {
	result := v
	for dim, size := range sizes {
		if size == 1 {
			expanded, err := tensor.Unsqueeze(result, dim)
			if err != nil {
				return nil, err
			}
			result = expanded
		}
	}
	if result == v {
		return v.Clone(), nil
	}
	return result, nil
}

// unsqueezeToDim re-inserts a singleton axis at dim only when sizes[dim]
// is 1. Squeezing a non-1-sized axis is a forward no-op, so its inverse is
// a no-op as well.
func unsqueezeToDim(v *tensor.RawTensor, dim int, sizes tensor.Shape) (*tensor.RawTensor, error) {
	w, err := WrapDim(dim, len(sizes))
	if err != nil {
		return nil, err
	}
	if len(sizes) > 0 && sizes[w] == 1 {
		return tensor.Unsqueeze(v, w)
	}
	return v.Clone(), nil
}
