package geometry_test

import (
	"math"
	"testing"

	"github.com/WellVis/WV-Backend/internal/geometry"
)

func square(key string, x, y, size float64) []geometry.VertexRow {
	return []geometry.VertexRow{
		{Key: key, X: x, Y: y},
		{Key: key, X: x + size, Y: y},
		{Key: key, X: x + size, Y: y + size},
		{Key: key, X: x, Y: y + size},
	}
}

// TestAssemble_GroupsAndDedupes verifies that duplicate rows are dropped
// keeping the first occurrence, and vertex counts equal the number of
// unique rows per key.
func TestAssemble_GroupsAndDedupes(t *testing.T) {
	rows := square("A", 0, 0, 10)
	rows = append(rows, rows[0], rows[1]) // exact duplicates
	rows = append(rows, square("B", 100, 100, 5)...)

	polys := geometry.Assemble(rows)
	if len(polys) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(polys))
	}
	if polys[0].Key != "A" || len(polys[0].Vertices) != 4 {
		t.Errorf("polygon A: expected 4 unique vertices, got %d", len(polys[0].Vertices))
	}
	if polys[1].Key != "B" || len(polys[1].Vertices) != 4 {
		t.Errorf("polygon B: expected 4 unique vertices, got %d", len(polys[1].Vertices))
	}
}

// TestAssemble_PreservesInputOrder verifies that the assembler never
// re-sorts vertices: input order is traversal order.
func TestAssemble_PreservesInputOrder(t *testing.T) {
	rows := []geometry.VertexRow{
		{Key: "A", X: 5, Y: 0},
		{Key: "A", X: 0, Y: 5},
		{Key: "A", X: 9, Y: 9},
	}
	polys := geometry.Assemble(rows)
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	for i, row := range rows {
		v := polys[0].Vertices[i]
		if v.X != row.X || v.Y != row.Y {
			t.Errorf("vertex %d: expected (%v,%v), got (%v,%v)", i, row.X, row.Y, v.X, v.Y)
		}
	}
}

// TestRing_Closure verifies that the rendered ring repeats the first vertex.
func TestRing_Closure(t *testing.T) {
	polys := geometry.Assemble(square("A", 0, 0, 10))
	ring := polys[0].Ring()
	if len(ring) != 5 {
		t.Fatalf("expected closed ring of 5 points, got %d", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Errorf("ring is not closed: first %v last %v", ring[0], ring[len(ring)-1])
	}
}

// TestCentroid_Square verifies the area-weighted centroid of a unit square.
func TestCentroid_Square(t *testing.T) {
	polys := geometry.Assemble(square("A", 0, 0, 10))
	c := polys[0].Centroid()
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y-5) > 1e-9 {
		t.Errorf("expected centroid (5,5), got (%v,%v)", c.X, c.Y)
	}
}

// TestCentroid_Degenerate verifies that groups with fewer than three unique
// vertices still produce a centroid (arithmetic mean), not an error.
func TestCentroid_Degenerate(t *testing.T) {
	polys := geometry.Assemble([]geometry.VertexRow{
		{Key: "P", X: 2, Y: 4},
		{Key: "P", X: 4, Y: 8},
	})
	c := polys[0].Centroid()
	if c.X != 3 || c.Y != 6 {
		t.Errorf("expected mean centroid (3,6), got (%v,%v)", c.X, c.Y)
	}
}

// TestCentroid_CollinearMean verifies collinear (zero-area) polygons fall
// back to the arithmetic mean.
func TestCentroid_CollinearMean(t *testing.T) {
	polys := geometry.Assemble([]geometry.VertexRow{
		{Key: "L", X: 0, Y: 0},
		{Key: "L", X: 1, Y: 1},
		{Key: "L", X: 2, Y: 2},
	})
	c := polys[0].Centroid()
	if c.X != 1 || c.Y != 1 {
		t.Errorf("expected mean centroid (1,1), got (%v,%v)", c.X, c.Y)
	}
}
