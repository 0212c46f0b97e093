package transform

import "testing"

func TestNear(t *testing.T) {
	const tolerance = 0.05

	cases := []struct {
		name   string
		width  int
		height int
		want   bool
	}{
		{"exact square", 100, 100, true},
		{"tiny square", 1, 1, true},
		{"width just inside upper band", 105, 100, true},
		{"width just inside lower band", 95, 100, true},
		{"width above band", 106, 100, false},
		{"width below band", 94, 100, false},
		{"wide", 800, 200, false},
		{"tall", 200, 800, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Near(tc.width, tc.height, tolerance); got != tc.want {
				t.Fatalf("Near(%d, %d) = %v, want %v", tc.width, tc.height, got, tc.want)
			}
		})
	}
}

// The band bounds width against height, not the reverse, so swapping the
// dimensions can flip the answer. 95x100 sits inside 100's band while
// 100x95 falls outside 95's. This mirrors the shipped behavior on purpose.
func TestNearIsAsymmetric(t *testing.T) {
	const tolerance = 0.05

	if !Near(95, 100, tolerance) {
		t.Fatal("Near(95, 100) = false, want true")
	}
	if Near(100, 95, tolerance) {
		t.Fatal("Near(100, 95) = true, want false")
	}
}

func TestNearSquareAlwaysTrue(t *testing.T) {
	for _, side := range []int{1, 25, 300, 10000} {
		if !Near(side, side, 0.05) {
			t.Fatalf("Near(%d, %d) = false, want true", side, side)
		}
	}
}
