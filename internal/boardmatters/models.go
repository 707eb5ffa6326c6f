package boardmatters

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WellVis/WV-Backend/internal/concession"
)

// BoardMatter is one board order record. The source table stores the location
// as six raw columns (directions as digits); Conc is derived from them on
// save so lookups can key on the code directly.
type BoardMatter struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Sec           int        `json:"sec"`
	Township      int        `json:"township"`
	TownshipDir   string     `json:"township_dir"`
	Range         int        `json:"range"`
	RangeDir      string     `json:"range_dir"`
	PM            string     `gorm:"column:pm" json:"pm"`
	Conc          string     `gorm:"index" json:"conc"`
	DocketNumber  string     `gorm:"index" json:"docket_number"`
	CauseNumber   string     `gorm:"index" json:"cause_number"`
	Quip          string     `json:"quip"`
	OrderType     string     `json:"order_type"`
	EffectiveDate *time.Time `json:"effective_date"`
	EndDate       *time.Time `json:"end_date"`
}

func (BoardMatter) TableName() string {
	return "board.board_data"
}

// BeforeSave derives the location code from the raw columns. A record whose
// location cannot be encoded is rejected rather than stored half-keyed.
func (b *BoardMatter) BeforeSave(tx *gorm.DB) error {
	conc, err := concession.Encode(
		strconv.Itoa(b.Sec),
		strconv.Itoa(b.Township), b.TownshipDir,
		strconv.Itoa(b.Range), b.RangeDir,
		b.PM,
	)
	if err != nil {
		return err
	}
	b.Conc = conc
	b.TownshipDir = concession.NormalizeDirection("township", b.TownshipDir)
	b.RangeDir = concession.NormalizeDirection("rng", b.RangeDir)
	b.PM = concession.NormalizeDirection("baseline", b.PM)
	return nil
}

// BoardDocument is one filing attached to a board matter.
type BoardDocument struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Cause        string     `gorm:"index" json:"cause"`
	Description  string     `json:"description"`
	Filepath     string     `json:"filepath"`
	DocumentDate *time.Time `json:"document_date"`
}

func (BoardDocument) TableName() string {
	return "board.board_data_links"
}
