package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/WellVis/WV-Backend/internal/boardmatters"
	"github.com/WellVis/WV-Backend/internal/config"
	"github.com/WellVis/WV-Backend/internal/db"
	"github.com/WellVis/WV-Backend/internal/middleware"
	"github.com/WellVis/WV-Backend/internal/plats"
	"github.com/WellVis/WV-Backend/internal/wells"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)

	wells.Init()
	plats.Init()
	boardmatters.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RequestsPerSec, cfg.RequestBurst))
	r.Get("/", RootHandler)

	r.Mount("/wells", wells.SetupRoutes())
	r.Mount("/plats", plats.SetupRoutes())
	r.Mount("/board", boardmatters.SetupRoutes())

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
