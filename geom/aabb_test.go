package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		overlaps bool
	}{
		{
			name:     "separated on X axis",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
			overlaps: false,
		},
		{
			name:     "separated on Y axis",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl64.Vec3{0, -2, 0}, Max: mgl64.Vec3{1, -1.5, 1}},
			overlaps: false,
		},
		{
			name:     "separated on Z axis",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl64.Vec3{0, 0, 4}, Max: mgl64.Vec3{1, 1, 5}},
			overlaps: false,
		},
		{
			name:     "partial overlap",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{2, 2, 2}},
			overlaps: true,
		},
		{
			name:     "containment",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{3, 3, 3}},
			b:        AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}},
			overlaps: true,
		},
		{
			name:     "shared boundary face counts as overlap",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
			overlaps: true,
		},
		{
			name:     "shared corner counts as overlap",
			a:        AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}},
			overlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps = %v, expected %v", got, tt.overlaps)
			}
			// Symmetry
			if got := tt.b.Overlaps(tt.a); got != tt.overlaps {
				t.Errorf("Overlaps (swapped) = %v, expected %v", got, tt.overlaps)
			}
		})
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	if !box.ContainsPoint(mgl64.Vec3{0.5, 0.5, 0.5}) {
		t.Error("Expected interior point to be contained")
	}
	if !box.ContainsPoint(mgl64.Vec3{1, 1, 1}) {
		t.Error("Expected boundary point to be contained")
	}
	if box.ContainsPoint(mgl64.Vec3{1.5, 0.5, 0.5}) {
		t.Error("Expected exterior point not to be contained")
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 1}}
	b := AABB{Min: mgl64.Vec3{-1, 1, 0}, Max: mgl64.Vec3{0.5, 3, 2}}

	union := a.Union(b)

	expectedMin := mgl64.Vec3{-1, 0, 0}
	expectedMax := mgl64.Vec3{1, 3, 2}
	if union.Min != expectedMin {
		t.Errorf("Union min = %v, expected %v", union.Min, expectedMin)
	}
	if union.Max != expectedMax {
		t.Errorf("Union max = %v, expected %v", union.Max, expectedMax)
	}
}

func TestAABBFromPoints(t *testing.T) {
	box := AABBFromPoints(
		mgl64.Vec3{1, 0, -1},
		mgl64.Vec3{-2, 3, 0},
		mgl64.Vec3{0, -1, 2},
	)

	if box.Min != (mgl64.Vec3{-2, -1, -1}) {
		t.Errorf("Min = %v", box.Min)
	}
	if box.Max != (mgl64.Vec3{1, 3, 2}) {
		t.Errorf("Max = %v", box.Max)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		axis int
	}{
		{"x longest", AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{5, 1, 1}}, 0},
		{"y longest", AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 5, 1}}, 1},
		{"z longest", AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 5}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.axis {
				t.Errorf("LongestAxis = %d, expected %d", got, tt.axis)
			}
		})
	}
}
