package boardmatters

import (
	"encoding/json"
	"log"
	"net/http"
)

// MattersHandler answers both directions of the board matter lookup:
// ?section=CODE lists the matters touching a section, ?cause=N lists the
// sections a matter touches.
func MattersHandler(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	cause := r.URL.Query().Get("cause")

	switch {
	case section != "":
		matters, err := MattersForSection(section)
		if err != nil {
			log.Println("Error resolving matters:", err)
			http.Error(w, "Failed to resolve matters", http.StatusInternalServerError)
			return
		}
		writeJSON(w, matters)
	case cause != "":
		sections, err := SectionsForMatter(cause)
		if err != nil {
			log.Println("Error resolving sections:", err)
			http.Error(w, "Failed to resolve sections", http.StatusInternalServerError)
			return
		}
		writeJSON(w, sections)
	default:
		http.Error(w, "Missing section or cause param", http.StatusBadRequest)
	}
}

// DocumentsHandler lists a matter's filings, oldest first.
func DocumentsHandler(w http.ResponseWriter, r *http.Request) {
	cause := r.URL.Query().Get("cause")
	if cause == "" {
		http.Error(w, "Missing cause param", http.StatusBadRequest)
		return
	}

	docs, err := DocumentsForMatter(cause)
	if err != nil {
		log.Println("Error resolving documents:", err)
		http.Error(w, "Failed to resolve documents", http.StatusInternalServerError)
		return
	}
	writeJSON(w, docs)
}

// OverviewHandler returns the all-matters overview, optionally narrowed to
// one docket number.
func OverviewHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := AllMattersOverview()
	if err != nil {
		log.Println("Error resolving overview:", err)
		http.Error(w, "Failed to resolve overview", http.StatusInternalServerError)
		return
	}

	if docket := r.URL.Query().Get("docket"); docket != "" {
		filtered := []OverviewRow{}
		for _, row := range rows {
			if row.DocketNumber == docket {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	writeJSON(w, rows)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
