package wells_test

import (
	"math"
	"testing"

	"github.com/WellVis/WV-Backend/internal/wells"
)

// TestStatePlane verifies the fixed meters-to-feet scale.
func TestStatePlane(t *testing.T) {
	if got := wells.StatePlane(0.3048); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected 1 foot, got %v", got)
	}
}

// TestApplyVerticalJitter verifies duplicate (X,Y) pairs on vertical wells
// get a cumulative sub-millimeter Y offset, while non-vertical rows and the
// input slice stay untouched.
func TestApplyVerticalJitter(t *testing.T) {
	rows := []wells.Row{
		{WellID: "V", X: 10, Y: 20, CitingType: wells.CitingVertical},
		{WellID: "V", X: 10, Y: 20, CitingType: wells.CitingVertical},
		{WellID: "D", X: 10, Y: 20, CitingType: wells.CitingAsDrilled},
	}
	out := wells.ApplyVerticalJitter(rows)

	if out[0].Y != 20 {
		t.Errorf("first duplicate should be unshifted, got %v", out[0].Y)
	}
	if math.Abs(out[1].Y-20.001) > 1e-12 {
		t.Errorf("second duplicate should shift by 1e-3, got %v", out[1].Y)
	}
	if out[2].Y != 20 {
		t.Errorf("non-vertical row must not shift, got %v", out[2].Y)
	}
	if rows[1].Y != 20 {
		t.Errorf("input slice mutated: %v", rows[1].Y)
	}
}

// TestProject2D_GroupsByWell verifies per-well polyline grouping preserves
// row order.
func TestProject2D_GroupsByWell(t *testing.T) {
	rows := []wells.Row{
		{WellID: "A", X: 1, Y: 1, MeasuredDepth: 0},
		{WellID: "A", X: 2, Y: 2, MeasuredDepth: 100},
		{WellID: "B", X: 9, Y: 9, MeasuredDepth: 0},
	}
	paths := wells.Project2D(rows)
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0].WellID != "A" || len(paths[0].Points) != 2 {
		t.Errorf("path A malformed: %+v", paths[0])
	}
	if paths[0].Points[1] != (wells.Point2{X: 2, Y: 2}) {
		t.Errorf("row order not preserved: %+v", paths[0].Points)
	}
}

// TestProject3D_StatePlaneAndElevation verifies 3D points carry state-plane
// coordinates and target elevation.
func TestProject3D_StatePlaneAndElevation(t *testing.T) {
	rows := []wells.Row{
		{WellID: "A", X: 0.3048, Y: 0.6096, TargetElevation: 5000},
	}
	paths := wells.Project3D(rows)
	if len(paths) != 1 || len(paths[0].Points) != 1 {
		t.Fatalf("unexpected shape: %+v", paths)
	}
	p := paths[0].Points[0]
	if math.Abs(p.X-1) > 1e-9 || math.Abs(p.Y-2) > 1e-9 || p.Z != 5000 {
		t.Errorf("expected (1,2,5000), got (%v,%v,%v)", p.X, p.Y, p.Z)
	}
}
