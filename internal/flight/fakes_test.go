package flight

import (
	"context"
	"testing"
	"time"

	"flightfinder/pkg/idgen"
	"flightfinder/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lookupFunc func(ctx context.Context, query, locale string) ([]AirportRef, error)

func (f lookupFunc) LookupAirports(ctx context.Context, query, locale string) ([]AirportRef, error) {
	return f(ctx, query, locale)
}

type searchFunc func(ctx context.Context, criteria SearchCriteria) ([]Itinerary, error)

func (f searchFunc) Search(ctx context.Context, criteria SearchCriteria) ([]Itinerary, error) {
	return f(ctx, criteria)
}

// MockItinerarySearcher is a mock implementation of ItinerarySearcher
type MockItinerarySearcher struct {
	mock.Mock
}

func (m *MockItinerarySearcher) SearchItineraries(ctx context.Context, q ItineraryQuery) ([]Itinerary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Itinerary), args.Error(1)
}

// MockCache is a mock implementation of cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var (
	cairo  = AirportRef{SiteID: "CAI", EntityID: "95673365", DisplayName: "Cairo"}
	london = AirportRef{SiteID: "LOND", EntityID: "27544008", DisplayName: "London"}
)

// staticAirports resolves the two test cities and nothing else.
func staticAirports() lookupFunc {
	return func(_ context.Context, query, _ string) ([]AirportRef, error) {
		switch query {
		case "Cairo":
			return []AirportRef{cairo}, nil
		case "London":
			return []AirportRef{london, {SiteID: "LGW", EntityID: "95565051"}}, nil
		}
		return []AirportRef{}, nil
	}
}

func newTestIDs(t *testing.T) idgen.Generator {
	t.Helper()
	gen, err := idgen.NewSnowflakeGenerator(1)
	require.NoError(t, err)
	return gen
}

func newTestPipeline(t *testing.T, lookup AirportLookup, searcher ItinerarySearcher) *Pipeline {
	t.Helper()
	log := logger.NewNop()
	resolver := NewAirportResolver(lookup, "en-US", log)
	return NewPipeline(resolver, searcher, newTestIDs(t), "USD", "en-US", log)
}

func testCriteria() SearchCriteria {
	return SearchCriteria{
		Origin:      "Cairo",
		Destination: "London",
		DepartDate:  time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		Passengers:  2,
		CabinClass:  CabinBusiness,
	}
}

func itinerary(id string, price float64, durations ...int) Itinerary {
	it := Itinerary{ID: id, Price: Price{Amount: price, Currency: "USD"}}
	for _, d := range durations {
		it.Legs = append(it.Legs, Leg{DurationMinutes: d})
	}
	return it
}

func ids(its []Itinerary) []string {
	out := make([]string, 0, len(its))
	for _, it := range its {
		out = append(out, it.ID)
	}
	return out
}
