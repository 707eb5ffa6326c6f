package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/WellVis/WV-Backend/internal/boardmatters"
	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/plats"
	"github.com/WellVis/WV-Backend/internal/seeds"
	"github.com/WellVis/WV-Backend/internal/wells"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect(os.Getenv("DATABASE_URL"))

	wells.Init()
	plats.Init()
	boardmatters.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
