package boardmatters

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/WellVis/WV-Backend/internal/concession"
	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/plats"
)

// TSRRecord is a decoded plat code with its humanized label, the combo-box
// row the shell renders for section-based search.
type TSRRecord struct {
	concession.Parts
	Conc  string `json:"conc"`
	Label string `json:"label"`
}

// DeriveTSR decodes plat codes into sorted TSR records. Codes that do not
// conform to the layout (field names live in the same column) are skipped.
func DeriveTSR(codes []string) []TSRRecord {
	out := make([]TSRRecord, 0, len(codes))
	seen := map[string]struct{}{}
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		parts, err := concession.Decode(code)
		if err != nil {
			continue
		}
		out = append(out, TSRRecord{Parts: parts, Conc: code, Label: concession.Humanize(parts)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Baseline != b.Baseline {
			return a.Baseline < b.Baseline
		}
		if a.TownshipDir != b.TownshipDir {
			return a.TownshipDir < b.TownshipDir
		}
		if a.RangeDir != b.RangeDir {
			return a.RangeDir < b.RangeDir
		}
		if a.Township != b.Township {
			return a.Township < b.Township
		}
		if a.Range != b.Range {
			return a.Range < b.Range
		}
		return a.Section < b.Section
	})
	return out
}

// MattersForSection returns the board matters whose derived location code
// equals the queried code.
func MattersForSection(code string) ([]BoardMatter, error) {
	var matters []BoardMatter
	if err := db.DB.Where("conc = ?", code).Find(&matters).Error; err != nil {
		return nil, fmt.Errorf("load matters for %s: %w", code, err)
	}
	if matters == nil {
		matters = []BoardMatter{}
	}
	sort.Slice(matters, func(i, j int) bool {
		if matters[i].DocketNumber != matters[j].DocketNumber {
			return matters[i].DocketNumber < matters[j].DocketNumber
		}
		return matters[i].CauseNumber < matters[j].CauseNumber
	})
	return matters, nil
}

// matchSections joins queried codes against the known plat codes by exact
// set membership. Sharing a numeric prefix is never a match.
func matchSections(queried map[string]struct{}, known []string) []string {
	matched := make([]string, 0, len(queried))
	seen := map[string]struct{}{}
	for _, code := range known {
		if _, ok := queried[code]; !ok {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		matched = append(matched, code)
	}
	sort.Strings(matched)
	return matched
}

// ambiguousPrefixes reports every queried code that is a proper prefix of
// another known code. Those pairs would have cross-matched under the old
// substring join, so they get logged as a warning.
func ambiguousPrefixes(queried map[string]struct{}, known []string) []string {
	var pairs []string
	for q := range queried {
		for _, k := range known {
			if k != q && strings.HasPrefix(k, q) {
				pairs = append(pairs, fmt.Sprintf("%s within %s", q, k))
			}
		}
	}
	sort.Strings(pairs)
	return pairs
}

// SectionsForMatter returns the plat codes referenced by any board matter
// sharing the cause number.
func SectionsForMatter(cause string) ([]string, error) {
	var matters []BoardMatter
	if err := db.DB.Where("cause_number = ?", cause).Find(&matters).Error; err != nil {
		return nil, fmt.Errorf("load matters for cause %s: %w", cause, err)
	}

	queried := map[string]struct{}{}
	for _, m := range matters {
		if m.Conc != "" {
			queried[m.Conc] = struct{}{}
		}
	}
	if len(queried) == 0 {
		return []string{}, nil
	}

	var known []string
	if err := db.DB.Model(&plats.PlatRow{}).Distinct("conc").Pluck("conc", &known).Error; err != nil {
		return nil, fmt.Errorf("load plat codes: %w", err)
	}

	for _, pair := range ambiguousPrefixes(queried, known) {
		log.Printf("boardmatters: ambiguous match warning for cause %s: code %s shares a prefix; matching exactly", cause, pair)
	}

	return matchSections(queried, known), nil
}

// DocumentsForMatter returns the matter's filings sorted by document date
// ascending.
func DocumentsForMatter(cause string) ([]BoardDocument, error) {
	var docs []BoardDocument
	if err := db.DB.Where("cause = ?", cause).Order("document_date asc").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("load documents for cause %s: %w", cause, err)
	}
	if docs == nil {
		docs = []BoardDocument{}
	}
	return docs, nil
}

// OverviewRow is one (section, docket, cause) triple from the all-matters
// join, carrying enough of the matter for the shell's list view.
type OverviewRow struct {
	Conc         string `json:"conc"`
	Label        string `json:"label"`
	DocketNumber string `json:"docket_number"`
	CauseNumber  string `json:"cause_number"`
	Quip         string `json:"quip"`
	OrderType    string `json:"order_type"`
}

type locationKey struct {
	Sec, Township, Range      int
	TownshipDir, RangeDir, PM string
}

// overviewRows joins matters against TSR records on the full location
// 6-tuple, deduplicates per (section, docket, cause), and sorts by
// (docket, cause).
func overviewRows(matters []BoardMatter, tsr []TSRRecord) []OverviewRow {
	byLocation := map[locationKey]TSRRecord{}
	for _, rec := range tsr {
		byLocation[locationKey{
			Sec: rec.Section, Township: rec.Township, Range: rec.Range,
			TownshipDir: rec.TownshipDir, RangeDir: rec.RangeDir, PM: rec.Baseline,
		}] = rec
	}

	seen := map[string]struct{}{}
	rows := []OverviewRow{}
	for _, m := range matters {
		rec, ok := byLocation[locationKey{
			Sec: m.Sec, Township: m.Township, Range: m.Range,
			TownshipDir: concession.NormalizeDirection("township", m.TownshipDir),
			RangeDir:    concession.NormalizeDirection("rng", m.RangeDir),
			PM:          concession.NormalizeDirection("baseline", m.PM),
		}]
		if !ok {
			continue
		}
		key := rec.Conc + "|" + m.DocketNumber + "|" + m.CauseNumber
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, OverviewRow{
			Conc:         rec.Conc,
			Label:        rec.Label,
			DocketNumber: m.DocketNumber,
			CauseNumber:  m.CauseNumber,
			Quip:         m.Quip,
			OrderType:    m.OrderType,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DocketNumber != rows[j].DocketNumber {
			return rows[i].DocketNumber < rows[j].DocketNumber
		}
		return rows[i].CauseNumber < rows[j].CauseNumber
	})
	return rows
}

// AllMattersOverview joins every TSR-derived plat code against every board
// matter on the location 6-tuple.
func AllMattersOverview() ([]OverviewRow, error) {
	var known []string
	if err := db.DB.Model(&plats.PlatRow{}).Distinct("conc").Pluck("conc", &known).Error; err != nil {
		return nil, fmt.Errorf("load plat codes: %w", err)
	}

	var matters []BoardMatter
	if err := db.DB.Find(&matters).Error; err != nil {
		return nil, fmt.Errorf("load matters: %w", err)
	}

	return overviewRows(matters, DeriveTSR(known)), nil
}
