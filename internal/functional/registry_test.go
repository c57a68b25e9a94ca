package functional

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflow-ml/reflow/internal/tensor"
)

func TestRegistryDispatch(t *testing.T) {
	base := arangeF32(t, tensor.Shape{2, 3})
	view, err := tensor.Transpose(base, 0, 1)
	require.NoError(t, err)
	view.AsFloat32()[0] = 100

	out, err := Apply(base, view, Transpose{Dim0: 0, Dim1: 1})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, float32(100), out.AsFloat32()[0])
}

func TestRegistryDispatchSlice(t *testing.T) {
	base := arangeF32(t, tensor.Shape{10})
	mutated := filledF32(t, []float32{-1, -2, -3}, tensor.Shape{3})

	out, err := Apply(base, mutated, Slice{Dim: 0, Start: 2, End: 5, Step: 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, -1, -2, -3, 5, 6, 7, 8, 9}, out.AsFloat32())
}

func TestRegistryDispatchReshapeAlias(t *testing.T) {
	base := arangeF32(t, tensor.Shape{4, 3})
	mutated := arangeF32(t, tensor.Shape{2, 6})

	out, err := Apply(base, mutated, ReshapeAlias{Size: tensor.Shape{2, 6}, Stride: []int{6, 1}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 3}, out.Shape())
	assert.Equal(t, mutated.AsFloat32(), out.AsFloat32())
}

func TestRegistryUnknownKind(t *testing.T) {
	r := &Registry{funcs: map[Kind]InverseFunc{}}
	base := arangeF32(t, tensor.Shape{2})

	_, err := r.Apply(base, base, Alias{})
	assert.Error(t, err)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup(KindPermute)
	assert.True(t, ok)
	_, ok = r.Lookup(Kind(999))
	assert.False(t, ok)
}

func TestRegistryRegisterOverrides(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register(KindAlias, func(base, view *tensor.RawTensor, req Request) (*tensor.RawTensor, error) {
		called = true
		return view.Clone(), nil
	})

	base := arangeF32(t, tensor.Shape{2})
	_, err := r.Apply(base, base, Alias{})
	require.NoError(t, err)
	assert.True(t, called)
}

// mislabeled reports KindPermute but carries no permutation payload; the
// adapter must reject it rather than dispatch with garbage arguments.
type mislabeled struct{}

func (mislabeled) Kind() Kind { return KindPermute }

func TestRegistryRejectsMismatchedPayload(t *testing.T) {
	base := arangeF32(t, tensor.Shape{2, 3})

	_, err := Apply(base, base, mislabeled{})
	assert.Error(t, err)
}

func TestRegistryUnsupportedKinds(t *testing.T) {
	base := arangeF32(t, tensor.Shape{2, 2})

	requests := []Request{
		FwPrimal{Level: 0},
		AsStrided{Size: tensor.Shape{2, 2}, Stride: []int{2, 1}, StorageOffset: 0},
		SparseIndices{},
		SparseValues{},
		Indices{},
		Values{},
		CrowIndices{},
		ColIndices{},
	}
	for _, req := range requests {
		out, err := Apply(base, base, req)
		assert.Nil(t, out, "%s", req.Kind())
		assert.True(t, errors.Is(err, ErrNotSupported), "%s: %v", req.Kind(), err)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "permute", KindPermute.String())
	assert.Equal(t, "split_with_sizes", KindSplitWithSizes.String())
	assert.Equal(t, "_indices", KindSparseIndices.String())
	assert.Equal(t, "unknown", Kind(999).String())
}
