package wells

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/windows", WindowsHandler)
	r.Get("/selected", SelectedHandler)

	return r
}
