package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func unitTetrahedron() Tetrahedron {
	return Tetrahedron{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
}

func TestTetrahedronSignedVolume(t *testing.T) {
	tet := unitTetrahedron()

	volume := tet.SignedVolume()
	if math.Abs(volume-1.0/6.0) > 1e-12 {
		t.Errorf("Expected volume 1/6, got %v", volume)
	}

	// Swapping two corners flips the orientation
	flipped := Tetrahedron{tet[1], tet[0], tet[2], tet[3]}
	if math.Abs(flipped.SignedVolume()+1.0/6.0) > 1e-12 {
		t.Errorf("Expected volume -1/6, got %v", flipped.SignedVolume())
	}
}

func TestTetrahedronBarycentric(t *testing.T) {
	tet := unitTetrahedron()

	t.Run("corners have unit weight", func(t *testing.T) {
		for i, corner := range tet {
			weights := tet.Barycentric(corner)
			for j, w := range weights {
				expected := 0.0
				if i == j {
					expected = 1.0
				}
				if math.Abs(w-expected) > 1e-12 {
					t.Errorf("Corner %d weight %d = %v, expected %v", i, j, w, expected)
				}
			}
		}
	})

	t.Run("centroid has equal weights", func(t *testing.T) {
		centroid := tet[0].Add(tet[1]).Add(tet[2]).Add(tet[3]).Mul(0.25)
		weights := tet.Barycentric(centroid)
		for j, w := range weights {
			if math.Abs(w-0.25) > 1e-12 {
				t.Errorf("Weight %d = %v, expected 0.25", j, w)
			}
		}
	})

	t.Run("weights always sum to 1", func(t *testing.T) {
		points := []mgl64.Vec3{
			{0.1, 0.2, 0.3}, {2, -1, 0.5}, {-3, -3, -3},
		}
		for _, p := range points {
			weights := tet.Barycentric(p)
			sum := weights[0] + weights[1] + weights[2] + weights[3]
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("Point %v: weights sum to %v", p, sum)
			}
		}
	})

	t.Run("outside points get weights outside the unit range", func(t *testing.T) {
		weights := tet.Barycentric(mgl64.Vec3{2, 0, 0})
		if weights[1] <= 1.0 {
			t.Errorf("Expected weight > 1 toward the stretched corner, got %v", weights[1])
		}
	})

	t.Run("reconstruction from weights", func(t *testing.T) {
		point := mgl64.Vec3{0.2, 0.3, 0.1}
		weights := tet.Barycentric(point)

		var reconstructed mgl64.Vec3
		for i, w := range weights {
			reconstructed = reconstructed.Add(tet[i].Mul(w))
		}
		if reconstructed.Sub(point).Len() > 1e-12 {
			t.Errorf("Reconstructed %v, expected %v", reconstructed, point)
		}
	})
}

func TestTetrahedraAABBs(t *testing.T) {
	vertices := []mgl64.Vec3{
		{0, 0, 0}, {2, 0, 0}, {0, 3, 0}, {0, 0, 4}, {-1, -1, -1},
	}
	tetrahedra := [][4]int{
		{0, 1, 2, 3},
		{0, 1, 2, 4},
	}

	aabbs := TetrahedraAABBs(vertices, tetrahedra)

	if len(aabbs) != 2 {
		t.Fatalf("Expected 2 AABBs, got %d", len(aabbs))
	}
	if aabbs[0].Min != (mgl64.Vec3{0, 0, 0}) || aabbs[0].Max != (mgl64.Vec3{2, 3, 4}) {
		t.Errorf("AABB 0 = %+v", aabbs[0])
	}
	if aabbs[1].Min != (mgl64.Vec3{-1, -1, -1}) || aabbs[1].Max != (mgl64.Vec3{2, 3, 0}) {
		t.Errorf("AABB 1 = %+v", aabbs[1])
	}
}
