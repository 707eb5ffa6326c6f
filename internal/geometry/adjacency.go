package geometry

import "math"

// BufferTolerance is the fixed dilation distance, in projection units, used
// when testing whether two polygons touch. Chosen to absorb survey noise
// between plats that share a boundary.
const BufferTolerance = 10.0

// Adjacency maps each polygon key to the keys of its buffered-intersection
// neighbors. Computed independently per source polygon; self-edges excluded.
type Adjacency map[string][]string

// ResolveAdjacency runs the pairwise buffered-intersection test over one
// category of polygons (all fields, or all plats). Dilating a polygon by the
// tolerance and testing intersection is equivalent to testing whether the
// plain distance between the two shapes is within the tolerance, which is
// what happens here. O(n²), fine for docket-sized inputs.
func ResolveAdjacency(polygons []Polygon) Adjacency {
	adj := make(Adjacency, len(polygons))
	for i, a := range polygons {
		var neighbors []string
		for j, b := range polygons {
			if i == j {
				continue
			}
			if withinBuffer(a, b, BufferTolerance) {
				neighbors = append(neighbors, b.Key)
			}
		}
		adj[a.Key] = neighbors
	}
	return adj
}

// withinBuffer reports whether the distance between the two polygons is at
// most tol. Overlapping or containing polygons are distance zero.
func withinBuffer(a, b Polygon, tol float64) bool {
	if len(a.Vertices) == 0 || len(b.Vertices) == 0 {
		return false
	}

	// Containment: any vertex of one inside the other means overlap.
	if a.contains(b.Vertices[0]) || b.contains(a.Vertices[0]) {
		return true
	}

	min := math.Inf(1)
	for _, ea := range a.edges() {
		for _, eb := range b.edges() {
			d := segmentDistance(ea[0], ea[1], eb[0], eb[1])
			if d == 0 {
				return true
			}
			if d < min {
				min = d
			}
		}
	}
	return min <= tol
}

// segmentDistance is the minimum distance between segments pq and rs, zero
// when they intersect. Collinear and zero-length segments are handled by the
// endpoint-to-segment fallback.
func segmentDistance(p, q, r, s Point) float64 {
	if segmentsIntersect(p, q, r, s) {
		return 0
	}
	d := pointSegmentDistance(p, r, s)
	if v := pointSegmentDistance(q, r, s); v < d {
		d = v
	}
	if v := pointSegmentDistance(r, p, q); v < d {
		d = v
	}
	if v := pointSegmentDistance(s, p, q); v < d {
		d = v
	}
	return d
}

func pointSegmentDistance(pt, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(pt.X-a.X, pt.Y-a.Y)
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(pt.X-(a.X+t*dx), pt.Y-(a.Y+t*dy))
}

func orientation(a, b, c Point) int {
	v := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func onSegment(a, b, c Point) bool {
	return math.Min(a.X, c.X) <= b.X && b.X <= math.Max(a.X, c.X) &&
		math.Min(a.Y, c.Y) <= b.Y && b.Y <= math.Max(a.Y, c.Y)
}

func segmentsIntersect(p, q, r, s Point) bool {
	o1 := orientation(p, q, r)
	o2 := orientation(p, q, s)
	o3 := orientation(r, s, p)
	o4 := orientation(r, s, q)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p, r, q) {
		return true
	}
	if o2 == 0 && onSegment(p, s, q) {
		return true
	}
	if o3 == 0 && onSegment(r, p, s) {
		return true
	}
	if o4 == 0 && onSegment(r, q, s) {
		return true
	}
	return false
}
