package flight

import (
	"errors"
	"fmt"
)

var (
	ErrAirportNotFound    = errors.New("airport not found")
	ErrUpstream           = errors.New("upstream unavailable")
	ErrNoResults          = errors.New("no results")
	ErrMalformedItinerary = errors.New("malformed itinerary")
	ErrInvalidCriteria    = errors.New("invalid search criteria")
	ErrUnknownSortKey     = errors.New("unknown sort key")
)

type Reason string

const (
	ReasonAirportNotFound     Reason = "AIRPORT_NOT_FOUND"
	ReasonUpstreamUnavailable Reason = "UPSTREAM_UNAVAILABLE"
	ReasonNoResults           Reason = "NO_RESULTS"
	ReasonInvalidCriteria     Reason = "INVALID_CRITERIA"
)

const (
	MessageSearchFailed    = "Failed to fetch flights. Please try again."
	MessageNoResults       = "No flights found for the given criteria."
	MessageInvalidCriteria = "Please fill out all required fields."
)

// SearchError is what a failed search surfaces to its caller.
type SearchError struct {
	Reason Reason
	Query  string
	Err    error
}

func (e *SearchError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("%s (%q): %v", e.Reason, e.Query, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func newSearchError(reason Reason, query string, err error) *SearchError {
	return &SearchError{Reason: reason, Query: query, Err: err}
}

// ReasonOf classifies any error returned by this package.
func ReasonOf(err error) Reason {
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Reason
	}

	switch {
	case errors.Is(err, ErrNoResults):
		return ReasonNoResults
	case errors.Is(err, ErrAirportNotFound):
		return ReasonAirportNotFound
	case errors.Is(err, ErrInvalidCriteria):
		return ReasonInvalidCriteria
	}
	return ReasonUpstreamUnavailable
}

// UserMessage collapses not-found and upstream failures into one generic
// message; only "no results" and bad input get their own text.
func UserMessage(err error) string {
	switch ReasonOf(err) {
	case ReasonNoResults:
		return MessageNoResults
	case ReasonInvalidCriteria:
		return MessageInvalidCriteria
	}
	return MessageSearchFailed
}
