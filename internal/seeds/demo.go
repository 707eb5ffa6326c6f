package seeds

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WellVis/WV-Backend/internal/boardmatters"
	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/plats"
	"github.com/WellVis/WV-Backend/internal/wells"
)

const (
	demoDocket = "381-99"
	demoYear   = 2024
	demoMonth  = "June"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// square returns four plat vertices in traversal order.
func square(conc string, order int, x, y, size float64) []plats.PlatRow {
	var rows []plats.PlatRow
	for _, pt := range [][2]float64{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}} {
		rows = append(rows, plats.PlatRow{
			ID:          uuid.New(),
			Conc:        conc,
			BoardDocket: demoDocket,
			Easting:     pt[0],
			Northing:    pt[1],
			AdjOrder:    order,
		})
	}
	return rows
}

func SeedPlats() error {
	var existing plats.PlatRow
	err := db.DB.First(&existing, "board_docket = ?", demoDocket).Error
	if err == nil {
		log.Printf("Demo plats exist, skipping")
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("DB error on plats: %w", err)
	}

	var platRows []plats.PlatRow
	platRows = append(platRows, square("0115N02WS", plats.OrderMain, 0, 0, 5280)...)
	platRows = append(platRows, square("0215N02WS", plats.OrderAdjacent1, -5280, 0, 5280)...)
	platRows = append(platRows, square("1215N02WS", plats.OrderAdjacent2, 5280, -5280, 5280)...)
	if err := db.DB.Create(&platRows).Error; err != nil {
		return fmt.Errorf("failed to create plat rows: %w", err)
	}

	adjacent := []plats.AdjacentRow{
		{ID: uuid.New(), BoardDocket: demoDocket, AdjOrder: plats.OrderMain, SrcFullCo: "0115N02WS"},
		{ID: uuid.New(), BoardDocket: demoDocket, AdjOrder: plats.OrderAdjacent1, SrcFullCo: "0215N02WS"},
		{ID: uuid.New(), BoardDocket: demoDocket, AdjOrder: plats.OrderAdjacent2, SrcFullCo: "1215N02WS"},
	}
	if err := db.DB.Create(&adjacent).Error; err != nil {
		return fmt.Errorf("failed to create adjacent rows: %w", err)
	}

	var fields []plats.FieldRow
	for _, pt := range [][2]float64{{0, 0}, {10560, 0}, {10560, 10560}, {0, 10560}} {
		fields = append(fields, plats.FieldRow{
			ID: uuid.New(), FieldName: "AAGARD RANCH", Easting: pt[0], Northing: pt[1],
		})
	}
	if err := db.DB.Create(&fields).Error; err != nil {
		return fmt.Errorf("failed to create field rows: %w", err)
	}

	owners := []plats.OwnerRow{{
		ID: uuid.New(), Conc: "0115N02WS", Owner: "STATE OF UTAH", StateLegend: "State",
		Geometry: []string{"0,0", "2640,0", "2640,2640", "0,2640"},
	}}
	if err := db.DB.Create(&owners).Error; err != nil {
		return fmt.Errorf("failed to create owner rows: %w", err)
	}

	log.Printf("Seeded %d plat rows for docket %s", len(platRows), demoDocket)
	return nil
}

func SeedWells() error {
	var existing wells.WellInfo
	err := db.DB.First(&existing, "board_docket = ?", demoDocket).Error
	if err == nil {
		log.Printf("Demo wells exist, skipping")
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("DB error on wells: %w", err)
	}

	info := []wells.WellInfo{
		{
			WellID: "4301312345", WellName: "EAGLE 1-15", Operator: "ACME OIL",
			WorkType: "DRILL", CurrentWellStatus: wells.StatusProducing,
			CurrentWellType: "Oil Well", DrySpud: date(2023, time.March, 15),
			Elevation: 6021.5, BoardYear: demoYear, DocketMonth: demoMonth,
			BoardDocket: demoDocket, FieldName: "AAGARD RANCH",
		},
		{
			WellID: "4301312346", WellName: "EAGLE 2-15", Operator: "ACME OIL",
			WorkType: "DRILL", CurrentWellStatus: wells.StatusApprovedPermit,
			CurrentWellType: "Oil Well", Elevation: 6010,
			BoardYear: demoYear, DocketMonth: demoMonth,
			BoardDocket: demoDocket, FieldName: "AAGARD RANCH",
		},
	}
	if err := db.DB.Create(&info).Error; err != nil {
		return fmt.Errorf("failed to create well info: %w", err)
	}

	tvd := func(v float64) *float64 { return &v }
	points := []wells.SurveyPoint{
		{ID: uuid.New(), APINumber: "4301312345", X: 2640, Y: 2640, MeasuredDepth: 0, TrueVerticalDepth: tvd(0), CitingType: wells.CitingVertical},
		{ID: uuid.New(), APINumber: "4301312345", X: 2640, Y: 2640, MeasuredDepth: 0, TrueVerticalDepth: tvd(0), CitingType: wells.CitingAsDrilled},
		{ID: uuid.New(), APINumber: "4301312345", X: 2900, Y: 3400, MeasuredDepth: 4500, TrueVerticalDepth: tvd(4380), CitingType: wells.CitingAsDrilled},
		{ID: uuid.New(), APINumber: "4301312346", X: 1320, Y: 1320, MeasuredDepth: 0, TrueVerticalDepth: tvd(0), CitingType: wells.CitingVertical},
		{ID: uuid.New(), APINumber: "4301312346", X: 1500, Y: 2100, MeasuredDepth: 5100, TrueVerticalDepth: tvd(4900), CitingType: wells.CitingPlanned},
	}
	if err := db.DB.Create(&points).Error; err != nil {
		return fmt.Errorf("failed to create survey points: %w", err)
	}

	log.Printf("Seeded %d wells for docket %s", len(info), demoDocket)
	return nil
}

func SeedBoardMatters() error {
	var existing boardmatters.BoardMatter
	err := db.DB.First(&existing, "cause_number = ?", "123-45").Error
	if err == nil {
		log.Printf("Demo board matters exist, skipping")
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("DB error on board matters: %w", err)
	}

	matters := []boardmatters.BoardMatter{
		{
			ID: uuid.New(), Sec: 1, Township: 15, TownshipDir: "1",
			Range: 2, RangeDir: "2", PM: "1",
			DocketNumber: demoDocket, CauseNumber: "123-45",
			Quip: "Spacing order for the Aagard Ranch field", OrderType: "Spacing",
			EffectiveDate: date(2024, time.January, 5),
		},
		{
			ID: uuid.New(), Sec: 2, Township: 15, TownshipDir: "1",
			Range: 2, RangeDir: "2", PM: "1",
			DocketNumber: demoDocket, CauseNumber: "123-45",
			Quip: "Spacing order for the Aagard Ranch field", OrderType: "Spacing",
			EffectiveDate: date(2024, time.January, 5),
		},
	}
	if err := db.DB.Create(&matters).Error; err != nil {
		return fmt.Errorf("failed to create board matters: %w", err)
	}

	docs := []boardmatters.BoardDocument{
		{ID: uuid.New(), Cause: "123-45", Description: "Order establishing spacing units",
			Filepath: "/docs/123-45/order.pdf", DocumentDate: date(2024, time.January, 5)},
		{ID: uuid.New(), Cause: "123-45", Description: "Hearing notice",
			Filepath: "/docs/123-45/notice.pdf", DocumentDate: date(2023, time.November, 20)},
	}
	if err := db.DB.Create(&docs).Error; err != nil {
		return fmt.Errorf("failed to create board documents: %w", err)
	}

	log.Printf("Seeded %d board matters", len(matters))
	return nil
}
