package wells

import (
	"time"

	"github.com/google/uuid"
)

// Well status values as they appear in the regulator's WellInfo extract.
const (
	StatusProducing      = "Producing"
	StatusShutIn         = "Shut-in"
	StatusPlugged        = "Plugged & Abandoned"
	StatusDrilling       = "Drilling"
	StatusApprovedPermit = "Approved Permit"
)

// Citing types, lowercased on load.
const (
	CitingAsDrilled = "asdrilled"
	CitingPlanned   = "planned"
	CitingVertical  = "vertical"
)

type WellInfo struct {
	WellID            string     `gorm:"primaryKey" json:"well_id"`
	WellName          string     `json:"well_name"`
	Operator          string     `json:"operator"`
	WorkType          string     `json:"work_type"`
	CurrentWellStatus string     `json:"current_well_status"`
	CurrentWellType   string     `json:"current_well_type"`
	DrySpud           *time.Time `json:"dry_spud"`
	Elevation         float64    `json:"elevation"`
	BoardYear         int        `json:"board_year"`
	DocketMonth       string     `json:"docket_month"`
	BoardDocket       string     `json:"board_docket"`
	FieldName         string     `json:"field_name"`

	// Derived on load, never persisted.
	DisplayName string `gorm:"-" json:"display_name"`
	AgeMonths   int    `gorm:"-" json:"age_months"`
}

func (WellInfo) TableName() string {
	return "wells.well_info"
}

// SurveyPoint is one directional survey (DX) record. Ordering by measured
// depth within a well defines the trajectory polyline.
type SurveyPoint struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	APINumber         string    `gorm:"index" json:"api_number"`
	X                 float64   `json:"x"`
	Y                 float64   `json:"y"`
	MeasuredDepth     float64   `json:"measured_depth"`
	TrueVerticalDepth *float64  `json:"true_vertical_depth"`
	CitingType        string    `json:"citing_type"`
}

func (SurveyPoint) TableName() string {
	return "wells.dx"
}
