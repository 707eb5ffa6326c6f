// Package geometry holds the polygon assembly and spatial adjacency logic
// shared by the plat and board matter resolvers. Everything here is pure
// computation on projected (easting, northing) coordinates; no I/O.
package geometry

// Point is a projected coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// VertexRow is one input row for polygon assembly: a keyed coordinate in
// traversal order. Callers supply rows already ordered; the assembler never
// re-sorts geometrically.
type VertexRow struct {
	Key string
	X   float64
	Y   float64
}

// Polygon is an ordered vertex sequence keyed by a location code or field
// name. Vertices carry no closing duplicate; Ring() closes the loop.
type Polygon struct {
	Key      string  `json:"key"`
	Vertices []Point `json:"vertices"`
}

// Assemble groups rows by key, drops exact duplicate rows (keeping the
// first occurrence), and emits one polygon per key with vertices in input
// order. Groups with fewer than three unique vertices yield degenerate
// zero-area polygons rather than errors.
func Assemble(rows []VertexRow) []Polygon {
	type seenKey struct {
		x, y float64
	}

	order := []string{}
	grouped := map[string][]Point{}
	seen := map[string]map[seenKey]struct{}{}

	for _, row := range rows {
		if _, ok := grouped[row.Key]; !ok {
			order = append(order, row.Key)
			grouped[row.Key] = nil
			seen[row.Key] = map[seenKey]struct{}{}
		}
		sk := seenKey{row.X, row.Y}
		if _, dup := seen[row.Key][sk]; dup {
			continue
		}
		seen[row.Key][sk] = struct{}{}
		grouped[row.Key] = append(grouped[row.Key], Point{X: row.X, Y: row.Y})
	}

	polygons := make([]Polygon, 0, len(order))
	for _, key := range order {
		polygons = append(polygons, Polygon{Key: key, Vertices: grouped[key]})
	}
	return polygons
}

// Ring returns the closed vertex sequence: the first vertex is repeated at
// the end so renderers get a loop. Empty polygons return nil.
func (p Polygon) Ring() []Point {
	if len(p.Vertices) == 0 {
		return nil
	}
	ring := make([]Point, len(p.Vertices), len(p.Vertices)+1)
	copy(ring, p.Vertices)
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// signedArea is the shoelace sum over the closed ring. Zero for degenerate
// polygons.
func (p Polygon) signedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return sum / 2
}

// Centroid computes the area-weighted centroid, degrading to the arithmetic
// mean of the vertices when the polygon has (near) zero area.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}

	area := p.signedArea()
	const eps = 1e-9
	if area > -eps && area < eps {
		var sx, sy float64
		for _, v := range p.Vertices {
			sx += v.X
			sy += v.Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// contains reports whether pt falls inside the polygon, by ray casting.
// Degenerate polygons contain nothing.
func (p Polygon) contains(pt Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := p.Vertices[i].X, p.Vertices[i].Y
		xj, yj := p.Vertices[j].X, p.Vertices[j].Y
		if (yi > pt.Y) != (yj > pt.Y) &&
			pt.X < (xj-xi)*(pt.Y-yi)/(yj-yi+1e-12)+xi {
			inside = !inside
		}
	}
	return inside
}

// edges iterates the closed boundary as segments. A single-vertex polygon
// yields one zero-length segment so distance tests still work.
func (p Polygon) edges() [][2]Point {
	n := len(p.Vertices)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return [][2]Point{{p.Vertices[0], p.Vertices[0]}}
	}
	segs := make([][2]Point, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs = append(segs, [2]Point{p.Vertices[i], p.Vertices[j]})
	}
	return segs
}
