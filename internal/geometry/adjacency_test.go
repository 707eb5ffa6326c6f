package geometry_test

import (
	"slices"
	"testing"

	"github.com/WellVis/WV-Backend/internal/geometry"
)

func assemble(rows ...[]geometry.VertexRow) []geometry.Polygon {
	var all []geometry.VertexRow
	for _, r := range rows {
		all = append(all, r...)
	}
	return geometry.Assemble(all)
}

// TestResolveAdjacency_TouchingSquares verifies that squares sharing an edge
// are adjacent and that the relation is symmetric.
func TestResolveAdjacency_TouchingSquares(t *testing.T) {
	polys := assemble(
		square("A", 0, 0, 100),
		square("B", 100, 0, 100), // shares the x=100 edge with A
		square("C", 500, 500, 100),
	)
	adj := geometry.ResolveAdjacency(polys)

	if !slices.Contains(adj["A"], "B") {
		t.Errorf("expected B adjacent to A, got %v", adj["A"])
	}
	if !slices.Contains(adj["B"], "A") {
		t.Errorf("adjacency not symmetric: %v", adj["B"])
	}
	if len(adj["C"]) != 0 {
		t.Errorf("expected C isolated, got %v", adj["C"])
	}
}

// TestResolveAdjacency_WithinTolerance verifies that a gap inside the buffer
// tolerance still counts as adjacent, and a gap outside does not.
func TestResolveAdjacency_WithinTolerance(t *testing.T) {
	polys := assemble(
		square("A", 0, 0, 100),
		square("NEAR", 105, 0, 100), // 5-unit gap, within the 10-unit buffer
		square("FAR", 125, 0, 100),  // 25-unit gap from A
	)
	adj := geometry.ResolveAdjacency(polys)

	if !slices.Contains(adj["A"], "NEAR") {
		t.Errorf("expected NEAR within buffer of A, got %v", adj["A"])
	}
	if slices.Contains(adj["A"], "FAR") {
		t.Errorf("did not expect FAR adjacent to A, got %v", adj["A"])
	}
}

// TestResolveAdjacency_NoSelfEdges verifies self-edges are excluded.
func TestResolveAdjacency_NoSelfEdges(t *testing.T) {
	polys := assemble(square("A", 0, 0, 100))
	adj := geometry.ResolveAdjacency(polys)
	if slices.Contains(adj["A"], "A") {
		t.Errorf("self-edge present: %v", adj["A"])
	}
}

// TestResolveAdjacency_Containment verifies that a polygon fully inside
// another is adjacent to it.
func TestResolveAdjacency_Containment(t *testing.T) {
	polys := assemble(
		square("OUTER", 0, 0, 100),
		square("INNER", 40, 40, 10),
	)
	adj := geometry.ResolveAdjacency(polys)
	if !slices.Contains(adj["OUTER"], "INNER") || !slices.Contains(adj["INNER"], "OUTER") {
		t.Errorf("containment should be adjacency: %v / %v", adj["OUTER"], adj["INNER"])
	}
}

// TestResolveAdjacency_DegenerateTolerated verifies collinear and repeated
// vertices do not panic and still resolve.
func TestResolveAdjacency_DegenerateTolerated(t *testing.T) {
	rows := []geometry.VertexRow{
		{Key: "LINE", X: 0, Y: 0},
		{Key: "LINE", X: 50, Y: 0},
		{Key: "LINE", X: 100, Y: 0},
	}
	polys := assemble(rows, square("A", 100, -5, 100))
	adj := geometry.ResolveAdjacency(polys)
	if !slices.Contains(adj["LINE"], "A") {
		t.Errorf("expected degenerate line adjacent to A, got %v", adj["LINE"])
	}
}

// TestResolveAdjacency_Symmetry sweeps every discovered edge for symmetry.
func TestResolveAdjacency_Symmetry(t *testing.T) {
	polys := assemble(
		square("A", 0, 0, 100),
		square("B", 100, 0, 100),
		square("C", 100, 100, 100),
		square("D", 0, 100, 100),
		square("E", 300, 300, 50),
	)
	adj := geometry.ResolveAdjacency(polys)
	for from, neighbors := range adj {
		for _, to := range neighbors {
			if !slices.Contains(adj[to], from) {
				t.Errorf("edge %s->%s has no reverse", from, to)
			}
		}
	}
}
