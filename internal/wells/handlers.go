package wells

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/WellVis/WV-Backend/internal/selection"
)

// WindowPayload is one age window rendered for the shell: the reconciled
// rows plus ready-to-draw 2D and 3D polylines. The polylines carry the
// vertical-well jitter; the rows keep true coordinates.
type WindowPayload struct {
	Label   string  `json:"label"`
	Rows    []Row   `json:"rows"`
	Paths2D []Path2 `json:"paths_2d"`
	Paths3D []Path3 `json:"paths_3d"`
}

// WindowsResponse is the full resolve_well_windows result.
type WindowsResponse struct {
	Selection selection.Context             `json:"selection"`
	Windows   map[Category][4]WindowPayload `json:"windows"`
}

// The shell re-queries on every widget change, so the latest resolution is
// cached per selection key. A new selection fully replaces the old entry;
// nothing is invalidated incrementally.
var (
	cacheMu  sync.Mutex
	cacheKey string
	cached   *WindowsResponse
)

func buildResponse(sel selection.Context, sets WindowSets) *WindowsResponse {
	out := map[Category][4]WindowPayload{}
	for cat, windows := range sets {
		var payloads [4]WindowPayload
		for i, rows := range windows {
			if rows == nil {
				rows = []Row{}
			}
			jittered := ApplyVerticalJitter(rows)
			payloads[i] = WindowPayload{
				Label:   WindowLabels[i],
				Rows:    rows,
				Paths2D: Project2D(jittered),
				Paths3D: Project3D(jittered),
			}
		}
		out[cat] = payloads
	}
	return &WindowsResponse{Selection: sel, Windows: out}
}

// WindowsHandler resolves the classified, age-windowed trajectory sets for
// one docket selection. Empty dockets return empty collections, not errors.
func WindowsHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := selection.FromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cacheMu.Lock()
	if cached != nil && cacheKey == sel.Key() {
		resp := cached
		cacheMu.Unlock()
		writeJSON(w, resp)
		return
	}
	cacheMu.Unlock()

	rows, err := LoadDocketRows(sel, time.Now())
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := buildResponse(sel, ResolveWindows(rows))

	cacheMu.Lock()
	cacheKey = sel.Key()
	cached = resp
	cacheMu.Unlock()

	writeJSON(w, resp)
}

// SelectedHandler returns the single-well trajectory under the fixed
// drilled > planned > vertical priority, tagged with its source.
func SelectedHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := selection.FromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	wellID := r.URL.Query().Get("well")
	if wellID == "" {
		http.Error(w, "well is required", http.StatusBadRequest)
		return
	}

	rows, err := LoadDocketRows(sel, time.Now())
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var drilled, planned, vertical []Row
	for _, row := range Clean(rows) {
		if row.WellID != wellID {
			continue
		}
		switch row.CitingType {
		case CitingAsDrilled:
			drilled = append(drilled, row)
		case CitingPlanned:
			planned = append(planned, row)
		case CitingVertical:
			vertical = append(vertical, row)
		}
	}

	writeJSON(w, SelectTrajectory(drilled, planned, vertical))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
