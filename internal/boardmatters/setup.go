package boardmatters

import (
	"log"

	"github.com/WellVis/WV-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "board"); err != nil {
		log.Fatal("Failed to create board schema: ", err)
	}

	if err := db.DB.AutoMigrate(&BoardMatter{}, &BoardDocument{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
