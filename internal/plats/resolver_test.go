package plats

import (
	"testing"

	"github.com/WellVis/WV-Backend/internal/geometry"
)

func platSquare(conc, docket string, order int, x, y float64) []PlatRow {
	return []PlatRow{
		{Conc: conc, BoardDocket: docket, AdjOrder: order, Easting: x, Northing: y},
		{Conc: conc, BoardDocket: docket, AdjOrder: order, Easting: x + 100, Northing: y},
		{Conc: conc, BoardDocket: docket, AdjOrder: order, Easting: x + 100, Northing: y + 100},
		{Conc: conc, BoardDocket: docket, AdjOrder: order, Easting: x, Northing: y + 100},
	}
}

// assembleSections should only assemble plats whose code is in the set, and
// label conforming codes with their humanized form.
func TestAssembleSectionsFiltersAndLabels(t *testing.T) {
	rows := append(platSquare("0115N02WS", "381-99", OrderMain, 0, 0),
		platSquare("0216N02WS", "381-99", OrderAdjacent1, 200, 0)...)

	polys := assembleSections(rows, map[string]struct{}{"0115N02WS": {}})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if polys[0].Conc != "0115N02WS" {
		t.Errorf("got conc %q, want 0115N02WS", polys[0].Conc)
	}
	if polys[0].Label != "1 15N 2W S" {
		t.Errorf("got label %q, want \"1 15N 2W S\"", polys[0].Label)
	}
	// Ring closes back on the first vertex.
	ring := polys[0].Vertices
	if len(ring) != 5 {
		t.Fatalf("got ring of %d points, want 5", len(ring))
	}
	if ring[0] != ring[4] {
		t.Errorf("ring not closed: first %v last %v", ring[0], ring[4])
	}
}

// Non-conforming keys (field names in the plat table) keep their raw key as
// the label instead of failing the whole assembly.
func TestAssembleSectionsRawLabelFallback(t *testing.T) {
	rows := platSquare("AAGARD RANCH", "381-99", OrderMain, 0, 0)

	polys := assembleSections(rows, map[string]struct{}{"AAGARD RANCH": {}})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if polys[0].Label != "AAGARD RANCH" {
		t.Errorf("got label %q, want raw key", polys[0].Label)
	}
}

func TestFieldDisplayName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"AAGARD RANCH", "Aagard Ranch Field"},
		{"BLUEBELL FIELD", "Bluebell Field"},
		{"  greater monument butte ", "Greater Monument Butte Field"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FieldDisplayName(c.in); got != c.want {
			t.Errorf("FieldDisplayName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseVertex(t *testing.T) {
	pt, err := parseVertex(" 1234.5 , -67.25 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt != (geometry.Point{X: 1234.5, Y: -67.25}) {
		t.Errorf("got %v", pt)
	}

	for _, bad := range []string{"", "1234.5", "a,b", "1,,2"} {
		if _, err := parseVertex(bad); err == nil {
			t.Errorf("parseVertex(%q) succeeded, want error", bad)
		}
	}
}
