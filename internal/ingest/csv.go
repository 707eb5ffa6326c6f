// Package ingest loads the regulator's CSV extracts into postgres. Each
// parser validates the header up front so a renamed column fails the whole
// run instead of loading a half-empty table.
package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WellVis/WV-Backend/internal/boardmatters"
	"github.com/WellVis/WV-Backend/internal/plats"
	"github.com/WellVis/WV-Backend/internal/wells"
)

// MissingColumnError reports a required field absent from an input table.
// It aborts the ingestion run.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("ingest: table %s is missing required column %q", e.Table, e.Column)
}

// sheet is one parsed CSV file: a column index over the header plus the data
// records.
type sheet struct {
	table   string
	col     map[string]int
	records [][]string
}

func readSheet(table, path string, required []string) (*sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: csv has no header row", path)
	}

	header := records[0]
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, k := range required {
		if _, ok := col[k]; !ok {
			return nil, &MissingColumnError{Table: table, Column: k}
		}
	}

	return &sheet{table: table, col: col, records: records[1:]}, nil
}

func (s *sheet) get(rec []string, name string) string {
	i, ok := s.col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (s *sheet) getFloat(rec []string, name string) (float64, error) {
	v := s.get(rec, name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func (s *sheet) getInt(rec []string, name string) (int, error) {
	v := s.get(rec, name)
	if v == "" {
		return 0, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f), nil
	}
	return strconv.Atoi(v)
}

// Dates arrive in a handful of US-style layouts depending on which export
// produced the file.
var dateLayouts = []string{"2006-01-02", "1/2/2006", "01/02/2006", time.RFC3339}

func (s *sheet) getDate(rec []string, name string) *time.Time {
	v := s.get(rec, name)
	if v == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// ParseWellInfo reads the WellInfo extract.
func ParseWellInfo(path string) ([]wells.WellInfo, error) {
	s, err := readSheet("WellInfo", path, []string{
		"WellID", "WellName", "WorkType", "CurrentWellStatus",
		"Board_Year", "Docket_Month", "Board_Docket",
	})
	if err != nil {
		return nil, err
	}

	var out []wells.WellInfo
	for i, rec := range s.records {
		year, err := s.getInt(rec, "Board_Year")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Board_Year: %w", s.table, i+2, err)
		}
		elev, err := s.getFloat(rec, "Elevation")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Elevation: %w", s.table, i+2, err)
		}
		out = append(out, wells.WellInfo{
			WellID:            s.get(rec, "WellID"),
			WellName:          s.get(rec, "WellName"),
			Operator:          s.get(rec, "Operator"),
			WorkType:          s.get(rec, "WorkType"),
			CurrentWellStatus: s.get(rec, "CurrentWellStatus"),
			CurrentWellType:   s.get(rec, "CurrentWellType"),
			DrySpud:           s.getDate(rec, "DrySpud"),
			Elevation:         elev,
			BoardYear:         year,
			DocketMonth:       s.get(rec, "Docket_Month"),
			BoardDocket:       s.get(rec, "Board_Docket"),
			FieldName:         s.get(rec, "FieldName"),
		})
	}
	return out, nil
}

// ParseSurveyPoints reads the DX extract.
func ParseSurveyPoints(path string) ([]wells.SurveyPoint, error) {
	s, err := readSheet("DX", path, []string{
		"APINumber", "X", "Y", "MeasuredDepth", "CitingType",
	})
	if err != nil {
		return nil, err
	}

	var out []wells.SurveyPoint
	for i, rec := range s.records {
		x, err := s.getFloat(rec, "X")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: X: %w", s.table, i+2, err)
		}
		y, err := s.getFloat(rec, "Y")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Y: %w", s.table, i+2, err)
		}
		md, err := s.getFloat(rec, "MeasuredDepth")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: MeasuredDepth: %w", s.table, i+2, err)
		}

		var tvd *float64
		if v := s.get(rec, "TrueVerticalDepth"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: TrueVerticalDepth: %w", s.table, i+2, err)
			}
			tvd = &f
		}

		out = append(out, wells.SurveyPoint{
			ID:                uuid.New(),
			APINumber:         s.get(rec, "APINumber"),
			X:                 x,
			Y:                 y,
			MeasuredDepth:     md,
			TrueVerticalDepth: tvd,
			CitingType:        strings.ToLower(s.get(rec, "CitingType")),
		})
	}
	return out, nil
}

// ParsePlatData reads the PlatData extract. Rows keep file order: vertex
// sequence within a section is the traversal order.
func ParsePlatData(path string) ([]plats.PlatRow, error) {
	s, err := readSheet("PlatData", path, []string{
		"Conc", "Board_Docket", "Easting", "Northing", "Order",
	})
	if err != nil {
		return nil, err
	}

	var out []plats.PlatRow
	for i, rec := range s.records {
		e, err := s.getFloat(rec, "Easting")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Easting: %w", s.table, i+2, err)
		}
		n, err := s.getFloat(rec, "Northing")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Northing: %w", s.table, i+2, err)
		}
		order, err := s.getInt(rec, "Order")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Order: %w", s.table, i+2, err)
		}
		out = append(out, plats.PlatRow{
			ID:          uuid.New(),
			Conc:        s.get(rec, "Conc"),
			BoardDocket: s.get(rec, "Board_Docket"),
			Easting:     e,
			Northing:    n,
			AdjOrder:    order,
		})
	}
	return out, nil
}

// ParseAdjacent reads the Adjacent extract.
func ParseAdjacent(path string) ([]plats.AdjacentRow, error) {
	s, err := readSheet("Adjacent", path, []string{
		"Board_Docket", "Order", "src_FullCo",
	})
	if err != nil {
		return nil, err
	}

	var out []plats.AdjacentRow
	for i, rec := range s.records {
		order, err := s.getInt(rec, "Order")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Order: %w", s.table, i+2, err)
		}
		out = append(out, plats.AdjacentRow{
			ID:          uuid.New(),
			BoardDocket: s.get(rec, "Board_Docket"),
			AdjOrder:    order,
			SrcFullCo:   s.get(rec, "src_FullCo"),
		})
	}
	return out, nil
}

// ParseFields reads the Field extract.
func ParseFields(path string) ([]plats.FieldRow, error) {
	s, err := readSheet("Field", path, []string{
		"Field_Name", "Easting", "Northing",
	})
	if err != nil {
		return nil, err
	}

	var out []plats.FieldRow
	for i, rec := range s.records {
		e, err := s.getFloat(rec, "Easting")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Easting: %w", s.table, i+2, err)
		}
		n, err := s.getFloat(rec, "Northing")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Northing: %w", s.table, i+2, err)
		}
		out = append(out, plats.FieldRow{
			ID:        uuid.New(),
			FieldName: s.get(rec, "Field_Name"),
			Easting:   e,
			Northing:  n,
		})
	}
	return out, nil
}

// ParseOwners reads the Owner extract. The geometry column is a
// semicolon-separated list of "easting,northing" vertex strings.
func ParseOwners(path string) ([]plats.OwnerRow, error) {
	s, err := readSheet("Owner", path, []string{
		"conc", "owner", "state_legend", "geometry",
	})
	if err != nil {
		return nil, err
	}

	var out []plats.OwnerRow
	for _, rec := range s.records {
		var verts []string
		for _, v := range strings.Split(s.get(rec, "geometry"), ";") {
			if v = strings.TrimSpace(v); v != "" {
				verts = append(verts, v)
			}
		}
		out = append(out, plats.OwnerRow{
			ID:          uuid.New(),
			Conc:        s.get(rec, "conc"),
			Owner:       s.get(rec, "owner"),
			StateLegend: s.get(rec, "state_legend"),
			Geometry:    verts,
		})
	}
	return out, nil
}

// ParseBoardData reads the BoardData extract. Conc derivation happens in the
// model's save hook, so malformed locations fail at load time.
func ParseBoardData(path string) ([]boardmatters.BoardMatter, error) {
	s, err := readSheet("BoardData", path, []string{
		"Sec", "Township", "TownshipDir", "Range", "RangeDir", "PM",
		"DocketNumber", "CauseNumber",
	})
	if err != nil {
		return nil, err
	}

	var out []boardmatters.BoardMatter
	for i, rec := range s.records {
		sec, err := s.getInt(rec, "Sec")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Sec: %w", s.table, i+2, err)
		}
		twp, err := s.getInt(rec, "Township")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Township: %w", s.table, i+2, err)
		}
		rng, err := s.getInt(rec, "Range")
		if err != nil {
			return nil, fmt.Errorf("%s row %d: Range: %w", s.table, i+2, err)
		}
		out = append(out, boardmatters.BoardMatter{
			ID:            uuid.New(),
			Sec:           sec,
			Township:      twp,
			TownshipDir:   s.get(rec, "TownshipDir"),
			Range:         rng,
			RangeDir:      s.get(rec, "RangeDir"),
			PM:            s.get(rec, "PM"),
			DocketNumber:  s.get(rec, "DocketNumber"),
			CauseNumber:   s.get(rec, "CauseNumber"),
			Quip:          s.get(rec, "Quip"),
			OrderType:     s.get(rec, "OrderType"),
			EffectiveDate: s.getDate(rec, "EffectiveDate"),
			EndDate:       s.getDate(rec, "EndDate"),
		})
	}
	return out, nil
}

// ParseBoardDocuments reads the BoardDataLinks extract.
func ParseBoardDocuments(path string) ([]boardmatters.BoardDocument, error) {
	s, err := readSheet("BoardDataLinks", path, []string{
		"Cause", "Description", "Filepath",
	})
	if err != nil {
		return nil, err
	}

	var out []boardmatters.BoardDocument
	for _, rec := range s.records {
		out = append(out, boardmatters.BoardDocument{
			ID:           uuid.New(),
			Cause:        s.get(rec, "Cause"),
			Description:  s.get(rec, "Description"),
			Filepath:     s.get(rec, "Filepath"),
			DocumentDate: s.getDate(rec, "DocumentDate"),
		})
	}
	return out, nil
}
