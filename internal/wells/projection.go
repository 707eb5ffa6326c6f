package wells

// State-plane coordinates are the projection meters divided by the
// international foot.
const metersPerFoot = 0.3048

// Point2 is a map-plane coordinate.
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3 is a state-plane coordinate with target elevation.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Path2 is one well's 2D polyline in measured-depth order.
type Path2 struct {
	WellID string   `json:"well_id"`
	Points []Point2 `json:"points"`
}

// Path3 is one well's 3D polyline in measured-depth order.
type Path3 struct {
	WellID string   `json:"well_id"`
	Points []Point3 `json:"points"`
}

// StatePlane converts projection meters to state-plane feet.
func StatePlane(meters float64) float64 {
	return meters / metersPerFoot
}

// Project2D groups sorted rows into per-well 2D polylines using the true
// (unjittered) coordinates.
func Project2D(rows []Row) []Path2 {
	var paths []Path2
	idx := map[string]int{}
	for _, r := range rows {
		i, ok := idx[r.WellID]
		if !ok {
			i = len(paths)
			idx[r.WellID] = i
			paths = append(paths, Path2{WellID: r.WellID})
		}
		paths[i].Points = append(paths[i].Points, Point2{X: r.X, Y: r.Y})
	}
	return paths
}

// Project3D groups sorted rows into per-well state-plane polylines with
// target elevation as Z.
func Project3D(rows []Row) []Path3 {
	var paths []Path3
	idx := map[string]int{}
	for _, r := range rows {
		i, ok := idx[r.WellID]
		if !ok {
			i = len(paths)
			idx[r.WellID] = i
			paths = append(paths, Path3{WellID: r.WellID})
		}
		paths[i].Points = append(paths[i].Points, Point3{
			X: StatePlane(r.X),
			Y: StatePlane(r.Y),
			Z: r.TargetElevation,
		})
	}
	return paths
}

// ApplyVerticalJitter returns a copy of rows where vertical-well points that
// share an (X, Y) pair get a cumulative 1e-3 Y offset, so a two-point line
// can be drawn without a zero-length segment. This is strictly a rendering
// workaround applied at the presentation boundary; the classified rows keep
// their true coordinates.
func ApplyVerticalJitter(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	type xy struct{ x, y float64 }
	counts := map[xy]int{}
	for i, r := range out {
		if r.CitingType != CitingVertical {
			continue
		}
		k := xy{r.X, r.Y}
		out[i].Y += float64(counts[k]) * 1e-3
		counts[k]++
	}
	return out
}
