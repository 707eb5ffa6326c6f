package boardmatters

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/matters", MattersHandler)
	r.Get("/documents", DocumentsHandler)
	r.Get("/overview", OverviewHandler)

	return r
}
