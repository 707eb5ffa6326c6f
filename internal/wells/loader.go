package wells

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/selection"
)

// AgeMonths computes a well's age in whole calendar months between its spud
// date and now. Approved permits with no spud date are age 0 by policy (a
// permitted well has not aged yet); any other missing spud date also fills
// with 0 during preprocessing.
func AgeMonths(spud *time.Time, status string, now time.Time) int {
	if spud == nil {
		return 0
	}
	return (now.Year()-spud.Year())*12 + int(now.Month()) - int(spud.Month())
}

// LoadDocketWells loads the WellInfo rows for one docket selection, skipping
// plugging jobs, deriving display names and ages, and sorting by board year
// and docket month.
func LoadDocketWells(sel selection.Context, now time.Time) ([]WellInfo, error) {
	var infos []WellInfo
	q := db.DB.Where("work_type <> ?", "PLUG")
	if sel.Docket != "" {
		q = q.Where("board_docket = ?", sel.Docket)
	}
	if sel.Year != 0 {
		q = q.Where("board_year = ?", sel.Year)
	}
	if sel.Month != "" {
		q = q.Where("docket_month = ?", sel.Month)
	}
	if err := q.Find(&infos).Error; err != nil {
		return nil, fmt.Errorf("load well info: %w", err)
	}

	for i := range infos {
		infos[i].DisplayName = infos[i].WellID + " - " + infos[i].WellName
		infos[i].AgeMonths = AgeMonths(infos[i].DrySpud, infos[i].CurrentWellStatus, now)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].BoardYear != infos[j].BoardYear {
			return infos[i].BoardYear < infos[j].BoardYear
		}
		return selection.MonthNumber(infos[i].DocketMonth) < selection.MonthNumber(infos[j].DocketMonth)
	})
	return infos, nil
}

// LoadDocketRows joins the directional survey points for one docket against
// their wells and produces the in-memory rows the classifier consumes.
// Citing types are lowercased, target elevation is derived from surface
// elevation minus true vertical depth, and rows sort by (well, measured
// depth). An empty docket yields an empty slice.
func LoadDocketRows(sel selection.Context, now time.Time) ([]Row, error) {
	infos, err := LoadDocketWells(sel, now)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return []Row{}, nil
	}

	byID := make(map[string]WellInfo, len(infos))
	ids := make([]string, 0, len(infos))
	for _, w := range infos {
		byID[w.WellID] = w
		ids = append(ids, w.WellID)
	}

	var points []SurveyPoint
	if err := db.DB.Where("api_number IN ?", ids).Find(&points).Error; err != nil {
		return nil, fmt.Errorf("load survey points: %w", err)
	}

	rows := MergeRows(points, byID)
	sortRows(rows)
	return rows, nil
}

// MergeRows combines survey points with their owning wells. Points without
// a matching well are dropped; points without a true vertical depth are kept
// but flagged so Clean can remove them.
func MergeRows(points []SurveyPoint, wells map[string]WellInfo) []Row {
	rows := make([]Row, 0, len(points))
	for _, p := range points {
		w, ok := wells[p.APINumber]
		if !ok {
			continue
		}
		r := Row{
			WellID:        p.APINumber,
			X:             p.X,
			Y:             p.Y,
			MeasuredDepth: p.MeasuredDepth,
			CitingType:    strings.ToLower(strings.TrimSpace(p.CitingType)),
			Status:        w.CurrentWellStatus,
			AgeMonths:     w.AgeMonths,
		}
		if p.TrueVerticalDepth != nil {
			r.TargetElevation = w.Elevation - *p.TrueVerticalDepth
			r.HasElevation = true
		}
		rows = append(rows, r)
	}
	return rows
}

// SurfaceHoleLocations returns the first survey point of each well in the
// sorted rows, i.e. the shallowest measured depth.
func SurfaceHoleLocations(rows []Row) []Row {
	var out []Row
	seen := map[string]struct{}{}
	for _, r := range rows {
		if _, ok := seen[r.WellID]; ok {
			continue
		}
		seen[r.WellID] = struct{}{}
		out = append(out, r)
	}
	return out
}
