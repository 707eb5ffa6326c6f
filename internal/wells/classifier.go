package wells

import "sort"

// Category is the trajectory classification a survey row lands in. Vertical
// wells are candidates for both drilled and planned; drilling is decided by
// well status, not citing type.
type Category string

const (
	CategoryDrilled  Category = "drilled"
	CategoryPlanned  Category = "planned"
	CategoryDrilling Category = "currently_drilling"
)

// Age windows are cumulative: each threshold includes everything under it.
// The 9999 bucket is effectively "all".
var WindowThresholds = [4]int{12, 60, 120, 9999}

// WindowLabels name the four windows in threshold order.
var WindowLabels = [4]string{"year", "5years", "10years", "all"}

// Row is one classified survey point: a survey record merged with its well.
// Resolvers work on these in-memory rows only; they never reach back to the
// database mid-resolution.
type Row struct {
	WellID          string  `json:"well_id"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	MeasuredDepth   float64 `json:"measured_depth"`
	CitingType      string  `json:"citing_type"`
	Status          string  `json:"status"`
	AgeMonths       int     `json:"age_months"`
	TargetElevation float64 `json:"target_elevation"`
	// HasElevation is false when the survey point had no true vertical
	// depth, so no target elevation could be derived.
	HasElevation bool `json:"-"`
}

// Windows holds the four age-gated row sets for one category, sorted by
// (well, measured depth). Indexes line up with WindowThresholds.
type Windows [4][]Row

// WindowSets is the keyed container for per-category windows.
type WindowSets map[Category]Windows

// Clean drops rows lacking a computable target elevation. Missing ages are
// already zero-filled at load time.
func Clean(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !r.HasElevation {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Classify splits rows into the three category candidate sets. A vertical
// row lands in both drilled and planned.
func Classify(rows []Row) map[Category][]Row {
	sets := map[Category][]Row{
		CategoryDrilled:  {},
		CategoryPlanned:  {},
		CategoryDrilling: {},
	}
	for _, r := range rows {
		if r.CitingType == CitingAsDrilled || r.CitingType == CitingVertical {
			sets[CategoryDrilled] = append(sets[CategoryDrilled], r)
		}
		if r.CitingType == CitingPlanned || r.CitingType == CitingVertical {
			sets[CategoryPlanned] = append(sets[CategoryPlanned], r)
		}
		if r.Status == StatusDrilling {
			sets[CategoryDrilling] = append(sets[CategoryDrilling], r)
		}
	}
	return sets
}

// Partition gates one category's rows through the four age thresholds and
// sorts each window by (well, measured depth).
func Partition(rows []Row) Windows {
	var w Windows
	for i, threshold := range WindowThresholds {
		var bucket []Row
		for _, r := range rows {
			if r.AgeMonths <= threshold {
				bucket = append(bucket, r)
			}
		}
		sortRows(bucket)
		w[i] = bucket
	}
	return w
}

func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WellID != rows[j].WellID {
			return rows[i].WellID < rows[j].WellID
		}
		return rows[i].MeasuredDepth < rows[j].MeasuredDepth
	})
}

// ReconcilePlanned removes, window by window, planned rows whose well is
// already present in the matching drilled window or is currently drilling.
// Planned data must never overlap wells that have progressed.
func ReconcilePlanned(drilled, planned Windows) Windows {
	var out Windows
	for i := range planned {
		drilledIDs := map[string]struct{}{}
		for _, r := range drilled[i] {
			drilledIDs[r.WellID] = struct{}{}
		}
		var kept []Row
		for _, r := range planned[i] {
			if _, done := drilledIDs[r.WellID]; done {
				continue
			}
			if r.Status == StatusDrilling {
				continue
			}
			kept = append(kept, r)
		}
		out[i] = kept
	}
	return out
}

// ResolveWindows runs the full classification pipeline: clean, classify,
// partition each category into age windows, then reconcile planned against
// drilled. Empty inputs resolve to empty window sets, not errors.
func ResolveWindows(rows []Row) WindowSets {
	cleaned := Clean(rows)
	sets := Classify(cleaned)

	result := WindowSets{
		CategoryDrilled:  Partition(sets[CategoryDrilled]),
		CategoryPlanned:  Partition(sets[CategoryPlanned]),
		CategoryDrilling: Partition(sets[CategoryDrilling]),
	}
	result[CategoryPlanned] = ReconcilePlanned(result[CategoryDrilled], result[CategoryPlanned])
	return result
}

// Source tags which citing set a single-well trajectory was taken from, so
// callers cannot mistake planned data for drilled.
type Source string

const (
	SourceDrilled  Source = "drilled"
	SourcePlanned  Source = "planned"
	SourceVertical Source = "vertical"
)

// Selection is a single well's trajectory with its provenance tag.
type Selection struct {
	Source Source `json:"source"`
	Rows   []Row  `json:"rows"`
}

// SelectTrajectory applies the fixed priority order for rendering one well:
// as-drilled first, then planned, then vertical. The order encodes "show
// the most factual data available" and is not configurable.
func SelectTrajectory(drilled, planned, vertical []Row) Selection {
	if len(drilled) > 0 {
		return Selection{Source: SourceDrilled, Rows: drilled}
	}
	if len(planned) > 0 {
		return Selection{Source: SourcePlanned, Rows: planned}
	}
	return Selection{Source: SourceVertical, Rows: vertical}
}
