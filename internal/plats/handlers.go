package plats

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/WellVis/WV-Backend/internal/selection"
)

// SectionsHandler returns the docket's assembled plats split by adjacency
// order, plus every concession code the docket touches.
func SectionsHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := selection.FromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sel.Docket == "" {
		http.Error(w, "Missing docket param", http.StatusBadRequest)
		return
	}

	sections, err := ResolveSectionsForDocket(sel)
	if err != nil {
		log.Println("Error resolving sections:", err)
		http.Error(w, "Failed to resolve sections", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sections)
}

// FieldsHandler returns every field polygon with its buffered adjacency.
func FieldsHandler(w http.ResponseWriter, r *http.Request) {
	fields, err := ResolveFields()
	if err != nil {
		log.Println("Error resolving fields:", err)
		http.Error(w, "Failed to resolve fields", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fields)
}

// OwnershipHandler returns the surface-ownership overlay for the docket's
// sections.
func OwnershipHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := selection.FromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sel.Docket == "" {
		http.Error(w, "Missing docket param", http.StatusBadRequest)
		return
	}

	sections, err := ResolveSectionsForDocket(sel)
	if err != nil {
		log.Println("Error resolving sections:", err)
		http.Error(w, "Failed to resolve sections", http.StatusInternalServerError)
		return
	}

	parcels, err := ResolveOwnership(sections.UsedCodes)
	if err != nil {
		log.Println("Error resolving ownership:", err)
		http.Error(w, "Failed to resolve ownership", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parcels)
}
