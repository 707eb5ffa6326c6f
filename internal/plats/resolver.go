package plats

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/WellVis/WV-Backend/internal/concession"
	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/geometry"
	"github.com/WellVis/WV-Backend/internal/selection"
)

// SectionPolygon is an assembled plat with its centroid and human label,
// ready for the shell to draw.
type SectionPolygon struct {
	Conc     string           `json:"conc"`
	Label    string           `json:"label"`
	Vertices []geometry.Point `json:"vertices"`
	Centroid geometry.Point   `json:"centroid"`
}

// DocketSections is the resolve_sections_for_docket result: the plats of
// the docket itself plus the two adjacency rings, and every code used.
type DocketSections struct {
	UsedCodes         []string         `json:"used_codes"`
	MainPolygons      []SectionPolygon `json:"main_polygons"`
	Adjacent1Polygons []SectionPolygon `json:"adjacent_1_polygons"`
	Adjacent2Polygons []SectionPolygon `json:"adjacent_2_polygons"`
}

func assembleSections(rows []PlatRow, codes map[string]struct{}) []SectionPolygon {
	var vrows []geometry.VertexRow
	for _, r := range rows {
		if _, ok := codes[r.Conc]; !ok {
			continue
		}
		vrows = append(vrows, geometry.VertexRow{Key: r.Conc, X: r.Easting, Y: r.Northing})
	}

	polys := geometry.Assemble(vrows)
	out := make([]SectionPolygon, 0, len(polys))
	for _, p := range polys {
		label, err := concession.HumanizeCode(p.Key)
		if err != nil {
			// Field-name keys and non-conforming codes keep their raw key.
			label = p.Key
		}
		out = append(out, SectionPolygon{
			Conc:     p.Key,
			Label:    label,
			Vertices: p.Ring(),
			Centroid: p.Centroid(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Conc < out[j].Conc })
	return out
}

// ResolveSectionsForDocket splits the docket's plats by adjacency order and
// assembles each ring into polygons. A docket with no plats resolves to
// empty sets.
func ResolveSectionsForDocket(sel selection.Context) (*DocketSections, error) {
	var adjacent []AdjacentRow
	if err := db.DB.Where("board_docket = ?", sel.Docket).Find(&adjacent).Error; err != nil {
		return nil, fmt.Errorf("load adjacency: %w", err)
	}

	var platRows []PlatRow
	if err := db.DB.Where("board_docket = ?", sel.Docket).Find(&platRows).Error; err != nil {
		return nil, fmt.Errorf("load plat data: %w", err)
	}

	codesByOrder := map[int]map[string]struct{}{
		OrderMain:      {},
		OrderAdjacent1: {},
		OrderAdjacent2: {},
	}
	for _, a := range adjacent {
		if set, ok := codesByOrder[a.AdjOrder]; ok {
			set[a.SrcFullCo] = struct{}{}
		}
	}

	result := &DocketSections{
		MainPolygons:      assembleSections(platRows, codesByOrder[OrderMain]),
		Adjacent1Polygons: assembleSections(platRows, codesByOrder[OrderAdjacent1]),
		Adjacent2Polygons: assembleSections(platRows, codesByOrder[OrderAdjacent2]),
	}

	used := map[string]struct{}{}
	for _, group := range []([]SectionPolygon){result.MainPolygons, result.Adjacent1Polygons, result.Adjacent2Polygons} {
		for _, p := range group {
			used[p.Conc] = struct{}{}
		}
	}
	result.UsedCodes = make([]string, 0, len(used))
	for code := range used {
		result.UsedCodes = append(result.UsedCodes, code)
	}
	sort.Strings(result.UsedCodes)

	return result, nil
}

// FieldSet is a docket's field polygons with their buffered adjacency.
type FieldSet struct {
	Polygons  []SectionPolygon   `json:"polygons"`
	Adjacency geometry.Adjacency `json:"adjacency"`
}

// ResolveFields assembles field polygons and computes which fields touch
// within the buffer tolerance.
func ResolveFields() (*FieldSet, error) {
	var rows []FieldRow
	if err := db.DB.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load fields: %w", err)
	}

	var vrows []geometry.VertexRow
	for _, r := range rows {
		vrows = append(vrows, geometry.VertexRow{Key: r.FieldName, X: r.Easting, Y: r.Northing})
	}
	polys := geometry.Assemble(vrows)

	set := &FieldSet{Adjacency: geometry.ResolveAdjacency(polys)}
	for _, p := range polys {
		set.Polygons = append(set.Polygons, SectionPolygon{
			Conc:     p.Key,
			Label:    FieldDisplayName(p.Key),
			Vertices: p.Ring(),
			Centroid: p.Centroid(),
		})
	}
	sort.Slice(set.Polygons, func(i, j int) bool { return set.Polygons[i].Conc < set.Polygons[j].Conc })
	return set, nil
}

// OwnerParcel is one ownership polygon inside a section, grouped by state
// legend for the shell's coloring layer.
type OwnerParcel struct {
	Conc        string           `json:"conc"`
	Owner       string           `json:"owner"`
	StateLegend string           `json:"state_legend"`
	Vertices    []geometry.Point `json:"vertices"`
}

// ResolveOwnership parses the ownership overlay for a set of section codes.
// Vertex strings that do not parse are skipped with a warning; a malformed
// parcel should not take down the whole overlay.
func ResolveOwnership(codes []string) ([]OwnerParcel, error) {
	if len(codes) == 0 {
		return []OwnerParcel{}, nil
	}

	var rows []OwnerRow
	if err := db.DB.Where("conc IN ?", codes).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load ownership: %w", err)
	}

	parcels := make([]OwnerParcel, 0, len(rows))
	for _, r := range rows {
		parcel := OwnerParcel{
			Conc:        r.Conc,
			Owner:       r.Owner,
			StateLegend: r.StateLegend,
		}
		for _, vs := range r.Geometry {
			pt, err := parseVertex(vs)
			if err != nil {
				log.Printf("ownership: skipping vertex %q for %s: %v", vs, r.Conc, err)
				continue
			}
			parcel.Vertices = append(parcel.Vertices, pt)
		}
		parcels = append(parcels, parcel)
	}
	return parcels, nil
}

func parseVertex(s string) (geometry.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("want \"x,y\"")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: x, Y: y}, nil
}
