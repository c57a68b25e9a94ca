package functional

import "github.com/reflow-ml/reflow/internal/tensor"

// Kind identifies a view-operation family. Operations that admit two
// parameter shapes for the same name (squeeze with and without an axis,
// view by shape and by dtype) are distinct kinds, so a single homogeneous
// table can dispatch without argument-list overloading.
type Kind int

// View-operation kinds.
const (
	KindAlias Kind = iota
	KindDetach
	KindViewAsReal
	KindViewAsComplex
	KindConj
	KindNegView
	KindReshapeAlias
	KindView
	KindViewDType
	KindT
	KindTranspose
	KindPermute
	KindSqueeze
	KindSqueezeDim
	KindUnsqueeze
	KindDiagonal
	KindSelect
	KindSlice
	KindUnbind
	KindSplit
	KindSplitWithSizes
	KindExpand
	KindUnfold
	KindFwPrimal
	KindAsStrided
	KindSparseIndices
	KindSparseValues
	KindIndices
	KindValues
	KindCrowIndices
	KindColIndices
)

// String returns the forward view operation's name.
func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindDetach:
		return "detach"
	case KindViewAsReal:
		return "view_as_real"
	case KindViewAsComplex:
		return "view_as_complex"
	case KindConj:
		return "conj"
	case KindNegView:
		return "neg_view"
	case KindReshapeAlias:
		return "reshape_alias"
	case KindView:
		return "view"
	case KindViewDType:
		return "view_dtype"
	case KindT:
		return "t"
	case KindTranspose:
		return "transpose"
	case KindPermute:
		return "permute"
	case KindSqueeze:
		return "squeeze"
	case KindSqueezeDim:
		return "squeeze_dim"
	case KindUnsqueeze:
		return "unsqueeze"
	case KindDiagonal:
		return "diagonal"
	case KindSelect:
		return "select"
	case KindSlice:
		return "slice"
	case KindUnbind:
		return "unbind"
	case KindSplit:
		return "split"
	case KindSplitWithSizes:
		return "split_with_sizes"
	case KindExpand:
		return "expand"
	case KindUnfold:
		return "unfold"
	case KindFwPrimal:
		return "fw_primal"
	case KindAsStrided:
		return "as_strided"
	case KindSparseIndices:
		return "_indices"
	case KindSparseValues:
		return "_values"
	case KindIndices:
		return "indices"
	case KindValues:
		return "values"
	case KindCrowIndices:
		return "crow_indices"
	case KindColIndices:
		return "col_indices"
	default:
		return "unknown"
	}
}

// Request is one recorded view operation: a tagged variant carrying the
// exact arguments the forward operation took. A functionalization
// dispatcher records a Request when it detects a view-producing operation
// and replays it through Apply once the view value has been mutated.
type Request interface {
	Kind() Kind
}

// Alias is the alias() view.
type Alias struct{}

// Detach is the detach() view.
type Detach struct{}

// ViewAsReal is the view_as_real() view over a complex tensor.
type ViewAsReal struct{}

// ViewAsComplex is the view_as_complex() view over (real, imag) pairs.
type ViewAsComplex struct{}

// Conj is the conjugate view.
type Conj struct{}

// NegView is the negation view.
type NegView struct{}

// ReshapeAlias is the reshape(size, stride) view.
type ReshapeAlias struct {
	Size   tensor.Shape
	Stride []int
}

// View is the view(size) shape reinterpretation.
type View struct {
	Size tensor.Shape
}

// ViewDType is the view(dtype) element-type reinterpretation.
type ViewDType struct {
	DType tensor.DataType
}

// T is the t() transpose of a rank <= 2 tensor.
type T struct{}

// Transpose is the transpose(dim0, dim1) view.
type Transpose struct {
	Dim0, Dim1 int
}

// Permute is the permute(dims) view.
type Permute struct {
	Dims []int
}

// Squeeze is the squeeze() view removing every size-1 axis.
type Squeeze struct{}

// SqueezeDim is the squeeze(dim) view.
type SqueezeDim struct {
	Dim int
}

// Unsqueeze is the unsqueeze(dim) view.
type Unsqueeze struct {
	Dim int
}

// Diagonal is the diagonal(offset, dim1, dim2) view.
type Diagonal struct {
	Offset, Dim1, Dim2 int
}

// Select is the select(dim, index) view.
type Select struct {
	Dim, Index int
}

// Slice is the slice(dim, start, end, step) view.
type Slice struct {
	Dim, Start, End, Step int
}

// Unbind is one output of the unbind(dim) view; Index identifies which.
type Unbind struct {
	Index, Dim int
}

// Split is one output of the split(splitSize, dim) view.
type Split struct {
	Index, SplitSize, Dim int
}

// SplitWithSizes is one output of the split_with_sizes(sizes, dim) view.
type SplitWithSizes struct {
	Index int
	Sizes []int
	Dim   int
}

// Expand is the expand(size, implicit) broadcast view.
type Expand struct {
	Size     tensor.Shape
	Implicit bool
}

// Unfold is the unfold(dimension, size, step) sliding-window view.
type Unfold struct {
	Dimension, Size, Step int
}

// FwPrimal is the forward-mode primal extraction (unsupported).
type FwPrimal struct {
	Level int
}

// AsStrided is the as_strided(size, stride, storageOffset) view
// (unsupported).
type AsStrided struct {
	Size          tensor.Shape
	Stride        []int
	StorageOffset int
}

// SparseIndices is the internal sparse indices accessor (unsupported).
type SparseIndices struct{}

// SparseValues is the internal sparse values accessor (unsupported).
type SparseValues struct{}

// Indices is the public sparse indices accessor (unsupported).
type Indices struct{}

// Values is the public sparse values accessor (unsupported).
type Values struct{}

// CrowIndices is the CSR compressed-row indices accessor (unsupported).
type CrowIndices struct{}

// ColIndices is the CSR column indices accessor (unsupported).
type ColIndices struct{}

// Kind implementations.

func (Alias) Kind() Kind          { return KindAlias }
func (Detach) Kind() Kind         { return KindDetach }
func (ViewAsReal) Kind() Kind     { return KindViewAsReal }
func (ViewAsComplex) Kind() Kind  { return KindViewAsComplex }
func (Conj) Kind() Kind           { return KindConj }
func (NegView) Kind() Kind        { return KindNegView }
func (ReshapeAlias) Kind() Kind   { return KindReshapeAlias }
func (View) Kind() Kind           { return KindView }
func (ViewDType) Kind() Kind      { return KindViewDType }
func (T) Kind() Kind              { return KindT }
func (Transpose) Kind() Kind      { return KindTranspose }
func (Permute) Kind() Kind        { return KindPermute }
func (Squeeze) Kind() Kind        { return KindSqueeze }
func (SqueezeDim) Kind() Kind     { return KindSqueezeDim }
func (Unsqueeze) Kind() Kind      { return KindUnsqueeze }
func (Diagonal) Kind() Kind       { return KindDiagonal }
func (Select) Kind() Kind         { return KindSelect }
func (Slice) Kind() Kind          { return KindSlice }
func (Unbind) Kind() Kind         { return KindUnbind }
func (Split) Kind() Kind          { return KindSplit }
func (SplitWithSizes) Kind() Kind { return KindSplitWithSizes }
func (Expand) Kind() Kind         { return KindExpand }
func (Unfold) Kind() Kind         { return KindUnfold }
func (FwPrimal) Kind() Kind       { return KindFwPrimal }
func (AsStrided) Kind() Kind      { return KindAsStrided }
func (SparseIndices) Kind() Kind  { return KindSparseIndices }
func (SparseValues) Kind() Kind   { return KindSparseValues }
func (Indices) Kind() Kind        { return KindIndices }
func (Values) Kind() Kind         { return KindValues }
func (CrowIndices) Kind() Kind    { return KindCrowIndices }
func (ColIndices) Kind() Kind     { return KindColIndices }
