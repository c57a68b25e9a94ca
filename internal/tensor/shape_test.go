package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	cases := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3, 4}, 24},
		{Shape{3, 0, 2}, 0},
	}
	for _, c := range cases {
		if got := c.shape.NumElements(); got != c.want {
			t.Errorf("%v.NumElements() = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	got := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	if len(got) != len(want) {
		t.Fatalf("strides length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("strides[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate on {2,3} = %v, want nil", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Validate should reject negative dimensions")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("{2,3} should equal {2,3}")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("{2,3} should not equal {3,2}")
	}
	if (Shape{2}).Equal(Shape{2, 1}) {
		t.Error("rank mismatch should not be equal")
	}
}

func TestOuterInnerSize(t *testing.T) {
	s := Shape{2, 3, 4}
	if s.outerSize(1) != 2 {
		t.Errorf("outerSize(1) = %d, want 2", s.outerSize(1))
	}
	if s.innerSize(1) != 4 {
		t.Errorf("innerSize(1) = %d, want 4", s.innerSize(1))
	}
	if s.outerSize(0) != 1 || s.innerSize(2) != 1 {
		t.Error("boundary outer/inner sizes are wrong")
	}
}
