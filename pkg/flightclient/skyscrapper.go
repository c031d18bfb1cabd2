package flightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"flightfinder/internal/flight"
	"flightfinder/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	searchAirportPath = "/api/v1/flights/searchAirport"
	searchFlightsPath = "/api/v2/flights/searchFlights"
)

// Config describes one RapidAPI sky-scrapper subscription.
type Config struct {
	BaseURL           string
	Host              string
	APIKey            string
	RequestsPerSecond float64
	Burst             int
}

// SkyScrapperClient implements flight.AirportLookup and
// flight.ItinerarySearcher against the sky-scrapper API.
type SkyScrapperClient struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	limiter    *rate.Limiter
	logger     logger.Logger
}

func NewSkyScrapperClient(httpClient *http.Client, config Config, log logger.Logger) *SkyScrapperClient {
	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}
	burst := config.Burst
	if burst < 1 {
		burst = 1
	}

	return &SkyScrapperClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		host:       config.Host,
		apiKey:     config.APIKey,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     log,
	}
}

func (c *SkyScrapperClient) LookupAirports(ctx context.Context, query, locale string) ([]flight.AirportRef, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("locale", locale)

	var apiResp airportResponse
	if err := c.get(ctx, searchAirportPath, params, &apiResp); err != nil {
		return nil, fmt.Errorf("skyscrapper: airport lookup: %w", err)
	}
	if !apiResp.Status {
		return nil, fmt.Errorf("skyscrapper: airport lookup: %w: %s", flight.ErrUpstream, apiResp.message())
	}

	return mapAirports(apiResp.Data), nil
}

func (c *SkyScrapperClient) SearchItineraries(ctx context.Context, q flight.ItineraryQuery) ([]flight.Itinerary, error) {
	params := url.Values{}
	params.Set("originSkyId", q.OriginSiteID)
	params.Set("destinationSkyId", q.DestinationSiteID)
	params.Set("originEntityId", q.OriginEntityID)
	params.Set("destinationEntityId", q.DestinationEntityID)
	params.Set("date", q.DepartDate)
	if q.ReturnDate != nil {
		params.Set("returnDate", *q.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(q.Passengers))
	params.Set("cabinClass", string(q.CabinClass))
	params.Set("currency", q.Currency)
	params.Set("market", q.Market)

	var apiResp itineraryResponse
	if err := c.get(ctx, searchFlightsPath, params, &apiResp); err != nil {
		return nil, fmt.Errorf("skyscrapper: itinerary search: %w", err)
	}
	if !apiResp.Status {
		// A refused search reads as one with nothing on offer.
		c.logger.Warn("skyscrapper itinerary search returned status false",
			logger.Field{Key: "message", Value: apiResp.message()},
		)
	}

	var wire []wireItinerary
	if apiResp.Data != nil {
		wire = apiResp.Data.Itineraries
	}

	itineraries, err := mapItineraries(wire, q.Currency)
	if err != nil {
		return nil, fmt.Errorf("skyscrapper: itinerary search: %w", err)
	}
	return itineraries, nil
}

func (c *SkyScrapperClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("failed to build skyscrapper request", logger.Err(err))
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("calling skyscrapper", logger.Field{Key: "path", Value: path})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: external api returned non-200 status: %d", flight.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", flight.ErrUpstream, err)
	}
	return nil
}
