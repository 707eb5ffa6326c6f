package plats

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Adjacency orders in the Adjacent table: the docket's own plats and the
// two rings of surrounding plats.
const (
	OrderMain      = 0
	OrderAdjacent1 = 1
	OrderAdjacent2 = 2
)

// PlatRow is one surveyed boundary point of a section, keyed by its
// concession code. Points arrive in traversal order from the survey export.
type PlatRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Conc        string    `gorm:"index" json:"conc"`
	BoardDocket string    `gorm:"index" json:"board_docket"`
	Easting     float64   `json:"easting"`
	Northing    float64   `json:"northing"`
	AdjOrder    int       `gorm:"column:adj_order" json:"order"`
}

func (PlatRow) TableName() string {
	return "plats.plat_data"
}

// AdjacentRow links a docket to the concession codes of its plats, per
// adjacency order.
type AdjacentRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BoardDocket string    `gorm:"index" json:"board_docket"`
	AdjOrder    int       `gorm:"column:adj_order" json:"order"`
	SrcFullCo   string    `json:"src_full_co"`
}

func (AdjacentRow) TableName() string {
	return "plats.adjacent"
}

// FieldRow is one boundary point of a named oil/gas field.
type FieldRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FieldName string    `gorm:"index" json:"field_name"`
	Easting   float64   `json:"easting"`
	Northing  float64   `json:"northing"`
}

func (FieldRow) TableName() string {
	return "plats.field"
}

// OwnerRow is the surface-ownership overlay for one section. Geometry is
// the owner parcel's vertex list as "easting,northing" strings, in
// traversal order.
type OwnerRow struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Conc        string         `gorm:"index" json:"conc"`
	Owner       string         `json:"owner"`
	StateLegend string         `json:"state_legend"`
	Geometry    pq.StringArray `gorm:"type:text[]" json:"geometry"`
}

func (OwnerRow) TableName() string {
	return "plats.owner"
}
