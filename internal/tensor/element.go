package tensor

// copyElem copies a single element between flat element indices of two
// contiguous byte buffers holding elements of size bytes.
func copyElem(dst, src []byte, dstIdx, srcIdx, size int) {
	copy(dst[dstIdx*size:(dstIdx+1)*size], src[srcIdx*size:(srcIdx+1)*size])
}

// copyRun copies n consecutive elements starting at flat element indices.
func copyRun(dst, src []byte, dstIdx, srcIdx, n, size int) {
	copy(dst[dstIdx*size:(dstIdx+n)*size], src[srcIdx*size:(srcIdx+n)*size])
}

// unravel decomposes a flat row-major index into per-dimension coordinates.
// idx must have len(shape) entries.
func unravel(flat int, shape Shape, idx []int) {
	for j := len(shape) - 1; j >= 0; j-- {
		idx[j] = flat % shape[j]
		flat /= shape[j]
	}
}

// ravel composes per-dimension coordinates into a flat index using strides.
func ravel(idx, strides []int) int {
	flat := 0
	for j, v := range idx {
		flat += v * strides[j]
	}
	return flat
}
