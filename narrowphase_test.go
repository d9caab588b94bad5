package distance3d

import (
	"testing"

	"github.com/aries-robot/distance3d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

func TestStraddlesContactPlane(t *testing.T) {
	plane := planeZ0()

	tests := []struct {
		name      string
		tet       geom.Tetrahedron
		straddles bool
	}{
		{
			name:      "crossing the plane",
			tet:       geom.Tetrahedron{{0, 0, -1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 1}},
			straddles: true,
		},
		{
			name:      "entirely above",
			tet:       geom.Tetrahedron{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 2}},
			straddles: false,
		},
		{
			name:      "entirely below",
			tet:       geom.Tetrahedron{{0, 0, -2}, {1, 0, -2}, {0, 1, -2}, {0, 0, -1}},
			straddles: false,
		},
		{
			name: "resting on the plane from above",
			// min distance is exactly 0: not strictly negative, no straddle
			tet:       geom.Tetrahedron{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			straddles: false,
		},
		{
			name: "corner on the plane from below",
			// max distance is exactly 0, which still counts as the far side
			tet:       geom.Tetrahedron{{0, 0, 0}, {1, 0, -1}, {0, 1, -1}, {0, 0, -1}},
			straddles: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := straddlesContactPlane(tt.tet, plane); got != tt.straddles {
				t.Errorf("straddlesContactPlane = %v, expected %v", got, tt.straddles)
			}
		})
	}
}

func TestStraddleMemo(t *testing.T) {
	vertices := []mgl64.Vec3{
		{0, 0, -1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 1}, // straddling tetrahedron
		{0, 0, 2}, // replaces the low corner to lift the second one clear
	}
	tetrahedra := [][4]int{
		{0, 1, 2, 3},
		{4, 1, 2, 3},
	}
	memo := newStraddleMemo(vertices, tetrahedra, planeZ0())

	if !memo.straddles(0) {
		t.Error("Expected tetrahedron 0 to straddle")
	}
	if memo.straddles(1) {
		t.Error("Expected tetrahedron 1 not to straddle")
	}

	// Repeated queries come from the cache and stay consistent
	for i := 0; i < 3; i++ {
		if !memo.straddles(0) || memo.straddles(1) {
			t.Fatal("Cached straddle results changed between queries")
		}
	}
	if len(memo.known) != 2 {
		t.Errorf("Cache holds %d entries, expected 2", len(memo.known))
	}
}

func TestConfirmPair(t *testing.T) {
	base := geom.Tetrahedron{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	t.Run("interpenetrating", func(t *testing.T) {
		other := geom.Tetrahedron{{0.1, 0.1, 0.1}, {1.1, 0.1, 0.1}, {0.1, 1.1, 0.1}, {0.1, 0.1, 1.1}}
		if !confirmPair(base, other) {
			t.Error("Expected overlap")
		}
	})

	t.Run("separated", func(t *testing.T) {
		other := geom.Tetrahedron{{3, 0, 0}, {4, 0, 0}, {3, 1, 0}, {3, 0, 1}}
		if confirmPair(base, other) {
			t.Error("Expected no overlap")
		}
	})

	t.Run("overlapping boxes but disjoint shapes", func(t *testing.T) {
		// The bounding boxes intersect, the tetrahedra do not: this is
		// exactly the case the exact test exists to reject.
		other := geom.Tetrahedron{{1, 1, 1}, {0.4, 1, 1}, {1, 0.4, 1}, {1, 1, 0.4}}
		if confirmPair(base, other) {
			t.Error("Expected no overlap")
		}
	})
}
