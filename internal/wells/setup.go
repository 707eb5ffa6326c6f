package wells

import (
	"log"

	"github.com/WellVis/WV-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "wells"); err != nil {
		log.Fatal("Failed to create wells schema: ", err)
	}

	if err := db.DB.AutoMigrate(&WellInfo{}, &SurveyPoint{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
