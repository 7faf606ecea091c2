package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Div", func(t *testing.T) {
		want := Vector2D{0.5, 1}
		got, ok := v1.Div(2)
		if !ok || !got.Eq(want) {
			t.Errorf("%v.Div(2) = %v, %v; want %v, true", v1, got, ok, want)
		}
	})

	t.Run("DivByZero", func(t *testing.T) {
		got, ok := v1.Div(0)
		if ok {
			t.Errorf("%v.Div(0) reported ok", v1)
		}
		if !got.Eq(v1) {
			t.Errorf("Div(0) = %v; want the vector unchanged %v", got, v1)
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		if got := (Vector2D{}).Normalize(); !got.Eq(Vector2D{}) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})
}

func TestVector_Limit(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want Vector2D
	}{
		{"below max untouched", Vector2D{1, 1}, 3, Vector2D{1, 1}},
		{"exactly max untouched", Vector2D{3, 0}, 3, Vector2D{3, 0}},
		{"above max rescaled", Vector2D{6, 8}, 3, Vector2D{1.8, 2.4}},
		{"zero vector", Vector2D{}, 3, Vector2D{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Limit(tt.max)
			if !got.Eq(tt.want) {
				t.Errorf("%v.Limit(%v) = %v; want %v", tt.v, tt.max, got, tt.want)
			}
			if got.Len() > tt.max+Epsilon {
				t.Errorf("Limit length %v exceeds %v", got.Len(), tt.max)
			}
		})
	}
}

func TestVector_Clamp(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want Vector2D
	}{
		{"inside", Vector2D{400, 300}, Vector2D{400, 300}},
		{"left and above", Vector2D{-5, -0.1}, Vector2D{0, 0}},
		{"right and below", Vector2D{801, 650}, Vector2D{800, 600}},
		{"on the edge", Vector2D{800, 0}, Vector2D{800, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Clamp(800, 600); !got.Eq(tt.want) {
				t.Errorf("%v.Clamp(800, 600) = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestMean(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := Mean(nil); !got.Eq(Vector2D{}) {
			t.Errorf("Mean(nil) = %v; want (0,0)", got)
		}
	})

	t.Run("Points", func(t *testing.T) {
		got := Mean([]Vector2D{{0, 0}, {10, 0}, {5, 9}})
		want := Vector2D{5, 3}
		if !got.Eq(want) {
			t.Errorf("Mean = %v; want %v", got, want)
		}
	})
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("finite vector reported as not finite")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}
