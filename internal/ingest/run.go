package ingest

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/WellVis/WV-Backend/internal/boardmatters"
	"github.com/WellVis/WV-Backend/internal/plats"
	"github.com/WellVis/WV-Backend/internal/wells"
)

// Paths names the CSV extracts for one ingestion run. Empty paths skip that
// table.
type Paths struct {
	WellInfo   string
	Survey     string
	PlatData   string
	Adjacent   string
	Fields     string
	Owners     string
	BoardData  string
	BoardLinks string
}

// Run parses every named extract first, then loads them in one transaction.
// A parse failure (including MissingColumnError) aborts before anything is
// written; a load failure rolls the whole run back.
func Run(db *gorm.DB, p Paths) error {
	var (
		wellInfo []wells.WellInfo
		survey   []wells.SurveyPoint
		platData []plats.PlatRow
		adjacent []plats.AdjacentRow
		fields   []plats.FieldRow
		owners   []plats.OwnerRow
		matters  []boardmatters.BoardMatter
		docs     []boardmatters.BoardDocument
		err      error
	)

	if p.WellInfo != "" {
		if wellInfo, err = ParseWellInfo(p.WellInfo); err != nil {
			return err
		}
	}
	if p.Survey != "" {
		if survey, err = ParseSurveyPoints(p.Survey); err != nil {
			return err
		}
	}
	if p.PlatData != "" {
		if platData, err = ParsePlatData(p.PlatData); err != nil {
			return err
		}
	}
	if p.Adjacent != "" {
		if adjacent, err = ParseAdjacent(p.Adjacent); err != nil {
			return err
		}
	}
	if p.Fields != "" {
		if fields, err = ParseFields(p.Fields); err != nil {
			return err
		}
	}
	if p.Owners != "" {
		if owners, err = ParseOwners(p.Owners); err != nil {
			return err
		}
	}
	if p.BoardData != "" {
		if matters, err = ParseBoardData(p.BoardData); err != nil {
			return err
		}
	}
	if p.BoardLinks != "" {
		if docs, err = ParseBoardDocuments(p.BoardLinks); err != nil {
			return err
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := create(tx, "well_info", wellInfo); err != nil {
			return err
		}
		if err := create(tx, "dx", survey); err != nil {
			return err
		}
		if err := create(tx, "plat_data", platData); err != nil {
			return err
		}
		if err := create(tx, "adjacent", adjacent); err != nil {
			return err
		}
		if err := create(tx, "field", fields); err != nil {
			return err
		}
		if err := create(tx, "owner", owners); err != nil {
			return err
		}
		if err := create(tx, "board_data", matters); err != nil {
			return err
		}
		if err := create(tx, "board_data_links", docs); err != nil {
			return err
		}
		return nil
	})
}

func create[T any](tx *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, 500).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	log.Printf("ingest: loaded %d rows into %s", len(rows), table)
	return nil
}
