package main

import (
	"encoding/json"
	"net/http"
	"strings"
)

type AirportResponse struct {
	Status    bool           `json:"status"`
	Timestamp int64          `json:"timestamp"`
	Data      []AirportEntry `json:"data"`
}

type AirportEntry struct {
	SkyID        string              `json:"skyId"`
	EntityID     string              `json:"entityId"`
	Presentation AirportPresentation `json:"presentation"`
	Navigation   json.RawMessage     `json:"navigation"`
}

type AirportPresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

func SearchAirportHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeJSON(w, map[string]any{
			"status":  false,
			"message": []map[string]string{{"query": "query is required"}},
		})
		return
	}

	data, err := fixtures.ReadFile("files/airports.json")
	if err != nil {
		http.Error(w, "Failed to read airport data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var fileResponse AirportResponse
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		http.Error(w, "Failed to parse airport data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	matches := make([]AirportEntry, 0)
	for _, a := range fileResponse.Data {
		if containsFold(a.Presentation.Title, query) || strings.EqualFold(a.SkyID, query) {
			matches = append(matches, a)
		}
	}

	fileResponse.Data = matches
	writeJSON(w, fileResponse)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
