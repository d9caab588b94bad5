package gjk

import (
	"testing"

	"github.com/aries-robot/distance3d/collider"
	"github.com/go-gl/mathgl/mgl64"
)

func cubeHull(min, max mgl64.Vec3) *collider.ConvexHullVertices {
	return collider.NewConvexHullVertices([]mgl64.Vec3{
		{min.X(), min.Y(), min.Z()},
		{max.X(), min.Y(), min.Z()},
		{min.X(), max.Y(), min.Z()},
		{max.X(), max.Y(), min.Z()},
		{min.X(), min.Y(), max.Z()},
		{max.X(), min.Y(), max.Z()},
		{min.X(), max.Y(), max.Z()},
		{max.X(), max.Y(), max.Z()},
	})
}

func TestMinkowskiSupport(t *testing.T) {
	a := cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := cubeHull(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1})

	// Furthest point of A-B in +x: max x of A minus min x of B
	support := MinkowskiSupport(a, b, mgl64.Vec3{1, 0, 0})
	if support.X() != -1 {
		t.Errorf("Support x = %v, expected -1", support.X())
	}

	support = MinkowskiSupport(a, b, mgl64.Vec3{-1, 0, 0})
	if support.X() != -3 {
		t.Errorf("Support x = %v, expected -3", support.X())
	}
}

func TestGJKCubes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      *collider.ConvexHullVertices
		intersect bool
	}{
		{
			name:      "overlapping",
			a:         cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:         cubeHull(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1.5, 1, 1}),
			intersect: true,
		},
		{
			name:      "contained",
			a:         cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 3, 3}),
			b:         cubeHull(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 2}),
			intersect: true,
		},
		{
			name:      "touching faces",
			a:         cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:         cubeHull(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 1, 1}),
			intersect: true,
		},
		{
			name:      "separated along x",
			a:         cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:         cubeHull(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1}),
			intersect: false,
		},
		{
			name:      "separated diagonally",
			a:         cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			b:         cubeHull(mgl64.Vec3{1.5, 1.5, 1.5}, mgl64.Vec3{2.5, 2.5, 2.5}),
			intersect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			simplex := SimplexPool.Get().(*Simplex)
			defer SimplexPool.Put(simplex)
			simplex.Reset()

			if got := GJK(tt.a, tt.b, simplex); got != tt.intersect {
				t.Errorf("GJK = %v, expected %v", got, tt.intersect)
			}

			// Symmetry
			simplex.Reset()
			if got := GJK(tt.b, tt.a, simplex); got != tt.intersect {
				t.Errorf("GJK (swapped) = %v, expected %v", got, tt.intersect)
			}
		})
	}
}

func TestGJKTetrahedra(t *testing.T) {
	base := collider.NewConvexHullVertices([]mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	})

	t.Run("interpenetrating tetrahedra", func(t *testing.T) {
		other := collider.NewConvexHullVertices([]mgl64.Vec3{
			{0.1, 0.1, 0.1}, {1.1, 0.1, 0.1}, {0.1, 1.1, 0.1}, {0.1, 0.1, 1.1},
		})

		var simplex Simplex
		if !GJK(base, other, &simplex) {
			t.Error("Expected intersection")
		}
	})

	t.Run("separated tetrahedra", func(t *testing.T) {
		other := collider.NewConvexHullVertices([]mgl64.Vec3{
			{5, 0, 0}, {6, 0, 0}, {5, 1, 0}, {5, 0, 1},
		})

		var simplex Simplex
		if GJK(base, other, &simplex) {
			t.Error("Expected no intersection")
		}
	})
}

func TestGJKOverlapProducesTetrahedronSimplex(t *testing.T) {
	a := cubeHull(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := cubeHull(mgl64.Vec3{0.4, 0.3, 0.2}, mgl64.Vec3{1.4, 1.3, 1.2})

	var simplex Simplex
	if !GJK(a, b, &simplex) {
		t.Fatal("Expected intersection")
	}
	if simplex.Count != 4 {
		t.Errorf("Simplex count = %d, expected a full tetrahedron", simplex.Count)
	}
}
