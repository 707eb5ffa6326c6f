package plats

import (
	"log"

	"github.com/WellVis/WV-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "plats"); err != nil {
		log.Fatal("Failed to create plats schema: ", err)
	}

	if err := db.DB.AutoMigrate(&PlatRow{}, &AdjacentRow{}, &FieldRow{}, &OwnerRow{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
