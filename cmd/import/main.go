package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/WellVis/WV-Backend/internal/boardmatters"
	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/ingest"
	"github.com/WellVis/WV-Backend/internal/plats"
	"github.com/WellVis/WV-Backend/internal/wells"
)

func main() {
	var (
		dbURL      = flag.String("db", "", "DATABASE_URL (falls back to env)")
		wellInfo   = flag.String("wellinfo", "", "path to WellInfo CSV")
		survey     = flag.String("dx", "", "path to DX survey CSV")
		platData   = flag.String("platdata", "", "path to PlatData CSV")
		adjacent   = flag.String("adjacent", "", "path to Adjacent CSV")
		fields     = flag.String("field", "", "path to Field CSV")
		owners     = flag.String("owner", "", "path to Owner CSV")
		boardData  = flag.String("boarddata", "", "path to BoardData CSV")
		boardLinks = flag.String("boardlinks", "", "path to BoardDataLinks CSV")
	)
	flag.Parse()

	_ = godotenv.Load(".env.local")
	dsn := *dbURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}

	paths := ingest.Paths{
		WellInfo:   *wellInfo,
		Survey:     *survey,
		PlatData:   *platData,
		Adjacent:   *adjacent,
		Fields:     *fields,
		Owners:     *owners,
		BoardData:  *boardData,
		BoardLinks: *boardLinks,
	}
	if paths == (ingest.Paths{}) {
		flag.Usage()
		os.Exit(2)
	}

	db.Connect(dsn)

	wells.Init()
	plats.Init()
	boardmatters.Init()

	if err := ingest.Run(db.DB, paths); err != nil {
		log.Fatal(err)
	}
}
