package main

import (
	"encoding/json"
	"net/http"
	"strings"
)

type RouteFile struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Itineraries []json.RawMessage `json:"itineraries"`
}

type FlightsResponse struct {
	Status bool        `json:"status"`
	Data   FlightsData `json:"data"`
}

type FlightsData struct {
	Context     FlightsContext    `json:"context"`
	Itineraries []json.RawMessage `json:"itineraries"`
}

type FlightsContext struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
}

var requiredFlightParams = []string{
	"originSkyId",
	"destinationSkyId",
	"originEntityId",
	"destinationEntityId",
	"date",
}

func SearchFlightsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var missing []map[string]string
	for _, p := range requiredFlightParams {
		if q.Get(p) == "" {
			missing = append(missing, map[string]string{p: p + " is required"})
		}
	}
	if len(missing) > 0 {
		writeJSON(w, map[string]any{"status": false, "message": missing})
		return
	}

	data, err := fixtures.ReadFile("files/itineraries.json")
	if err != nil {
		http.Error(w, "Failed to read flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var routes RouteFile
	if err := json.Unmarshal(data, &routes); err != nil {
		http.Error(w, "Failed to parse flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	itineraries := make([]json.RawMessage, 0)
	for _, route := range routes.Routes {
		if strings.EqualFold(route.Origin, q.Get("originSkyId")) &&
			strings.EqualFold(route.Destination, q.Get("destinationSkyId")) {
			itineraries = append(itineraries, route.Itineraries...)
		}
	}

	writeJSON(w, FlightsResponse{
		Status: true,
		Data: FlightsData{
			Context:     FlightsContext{Status: "complete", TotalResults: len(itineraries)},
			Itineraries: itineraries,
		},
	})
}
