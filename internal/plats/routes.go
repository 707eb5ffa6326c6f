package plats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/sections", SectionsHandler)
	r.Get("/fields", FieldsHandler)
	r.Get("/ownership", OwnershipHandler)

	return r
}
