package flightclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"flightfinder/internal/flight"
)

const wireTimeLayout = "2006-01-02T15:04:05"

type airportResponse struct {
	Status  bool               `json:"status"`
	Message json.RawMessage    `json:"message"`
	Data    []airportCandidate `json:"data"`
}

type airportCandidate struct {
	SkyID        string              `json:"skyId"`
	EntityID     string              `json:"entityId"`
	Presentation airportPresentation `json:"presentation"`
}

type airportPresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

type itineraryResponse struct {
	Status  bool            `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    *itineraryData  `json:"data"`
}

type itineraryData struct {
	Itineraries []wireItinerary `json:"itineraries"`
}

type wireItinerary struct {
	ID    string    `json:"id"`
	Price wirePrice `json:"price"`
	Legs  []wireLeg `json:"legs"`
}

type wirePrice struct {
	Raw       *float64 `json:"raw"`
	Formatted string   `json:"formatted"`
}

type wireLeg struct {
	ID                string        `json:"id"`
	Origin            wirePlace     `json:"origin"`
	Destination       wirePlace     `json:"destination"`
	DurationInMinutes int           `json:"durationInMinutes"`
	Departure         string        `json:"departure"`
	Arrival           string        `json:"arrival"`
	Carriers          wireCarriers  `json:"carriers"`
	Segments          []wireSegment `json:"segments"`
}

type wirePlace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
	City        string `json:"city"`
}

type wireCarriers struct {
	Marketing []wireCarrier `json:"marketing"`
}

type wireCarrier struct {
	ID      int    `json:"id"`
	LogoURL string `json:"logoUrl"`
	Name    string `json:"name"`
}

type wireSegment struct {
	FlightNumber string `json:"flightNumber"`
}

// messageText renders the upstream "message" field, which is sometimes a string
// and sometimes a list of objects.
func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "status false"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (r airportResponse) message() string   { return messageText(r.Message) }
func (r itineraryResponse) message() string { return messageText(r.Message) }

func mapAirports(candidates []airportCandidate) []flight.AirportRef {
	refs := make([]flight.AirportRef, 0, len(candidates))
	for _, c := range candidates {
		name := c.Presentation.SuggestionTitle
		if name == "" {
			name = c.Presentation.Title
		}
		refs = append(refs, flight.AirportRef{
			SiteID:      c.SkyID,
			EntityID:    c.EntityID,
			DisplayName: name,
		})
	}
	return refs
}

func mapItineraries(wire []wireItinerary, currency string) ([]flight.Itinerary, error) {
	itineraries := make([]flight.Itinerary, 0, len(wire))
	for i, w := range wire {
		legs := make([]flight.Leg, 0, len(w.Legs))
		for _, l := range w.Legs {
			leg, err := mapLeg(l)
			if err != nil {
				return nil, fmt.Errorf("itinerary %d (%s): %w", i, w.ID, err)
			}
			legs = append(legs, leg)
		}

		// a missing raw price sorts as 0
		var amount float64
		if w.Price.Raw != nil {
			amount = *w.Price.Raw
		}

		itineraries = append(itineraries, flight.Itinerary{
			ID: w.ID,
			Price: flight.Price{
				Amount:    amount,
				Currency:  currency,
				Formatted: w.Price.Formatted,
			},
			Legs: legs,
		})
	}
	return itineraries, nil
}

func mapLeg(l wireLeg) (flight.Leg, error) {
	departure, err := parseWireTime(l.Departure)
	if err != nil {
		return flight.Leg{}, fmt.Errorf("%w: departure %q", flight.ErrUpstream, l.Departure)
	}
	arrival, err := parseWireTime(l.Arrival)
	if err != nil {
		return flight.Leg{}, fmt.Errorf("%w: arrival %q", flight.ErrUpstream, l.Arrival)
	}

	leg := flight.Leg{
		DepartureTime:   departure,
		ArrivalTime:     arrival,
		DurationMinutes: l.DurationInMinutes,
		Origin:          flight.Place{Name: l.Origin.Name, Code: l.Origin.DisplayCode},
		Destination:     flight.Place{Name: l.Destination.Name, Code: l.Destination.DisplayCode},
	}
	if len(l.Carriers.Marketing) > 0 {
		leg.CarrierName = l.Carriers.Marketing[0].Name
		leg.CarrierLogoURL = l.Carriers.Marketing[0].LogoURL
	}
	if len(l.Segments) > 0 {
		leg.FlightNumber = l.Segments[0].FlightNumber
	}
	return leg, nil
}

// parseWireTime accepts the local "2006-01-02T15:04:05" form and RFC 3339.
// An empty value stays the zero time.
func parseWireTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(wireTimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
