package flight

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for depart and return dates.
const DateLayout = "2006-01-02"

const (
	MinPassengers = 1
	MaxPassengers = 9
)

type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

func (c CabinClass) Valid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

// ParseCabinClass accepts both the enum values and the form labels
// ("Premium economy"), case-insensitively. Empty means economy.
func ParseCabinClass(s string) (CabinClass, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	if normalized == "" {
		return CabinEconomy, nil
	}

	c := CabinClass(normalized)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown cabin class %q", ErrInvalidCriteria, s)
	}
	return c, nil
}

// SearchCriteria is what the form submits. It is not modified after submit.
type SearchCriteria struct {
	Origin      string
	Destination string
	DepartDate  time.Time
	ReturnDate  *time.Time
	Passengers  int
	CabinClass  CabinClass
}

// AirportRef is an upstream place resolved from free text.
type AirportRef struct {
	SiteID      string `json:"site_id"`
	EntityID    string `json:"entity_id"`
	DisplayName string `json:"display_name"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Place struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type Leg struct {
	DepartureTime   time.Time `json:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Origin          Place     `json:"origin"`
	Destination     Place     `json:"destination"`
	CarrierName     string    `json:"carrier_name"`
	CarrierLogoURL  string    `json:"carrier_logo_url"`
	FlightNumber    string    `json:"flight_number"`
}

// FormattedDuration renders the duration as shown on a result card.
func (l Leg) FormattedDuration() string {
	return fmt.Sprintf("%dh %dm", l.DurationMinutes/60, l.DurationMinutes%60)
}

// MarshalJSON adds the card-formatted duration next to the leg fields.
func (l Leg) MarshalJSON() ([]byte, error) {
	type leg Leg
	return json.Marshal(struct {
		leg
		FormattedDuration string `json:"formatted_duration"`
	}{
		leg:               leg(l),
		FormattedDuration: l.FormattedDuration(),
	})
}

type Itinerary struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
	Legs  []Leg  `json:"legs"`
}

// FirstLeg is the leg used for display and sorting.
func (it Itinerary) FirstLeg() (Leg, bool) {
	if len(it.Legs) == 0 {
		return Leg{}, false
	}
	return it.Legs[0], true
}

// ItineraryQuery is the fully resolved request sent to the itinerary search.
type ItineraryQuery struct {
	OriginSiteID        string
	DestinationSiteID   string
	OriginEntityID      string
	DestinationEntityID string
	DepartDate          string
	ReturnDate          *string
	Passengers          int
	CabinClass          CabinClass
	Currency            string
	Market              string
}

type SortKey string

const (
	SortNone         SortKey = "none"
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortDurationAsc  SortKey = "duration_asc"
	SortDurationDesc SortKey = "duration_desc"
)

// ParseSortKey accepts "price_asc" and the page's "price-asc" spelling.
// Empty means none.
func ParseSortKey(s string) (SortKey, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if normalized == "" {
		return SortNone, nil
	}

	switch key := SortKey(normalized); key {
	case SortNone, SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDurationDesc:
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}
