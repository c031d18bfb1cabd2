package flight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flightfinder/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// AirportLookup is the upstream free-text place search.
type AirportLookup interface {
	LookupAirports(ctx context.Context, query, locale string) ([]AirportRef, error)
}

type AirportResolver struct {
	lookup AirportLookup
	locale string
	logger logger.Logger
}

func NewAirportResolver(lookup AirportLookup, locale string, log logger.Logger) *AirportResolver {
	return &AirportResolver{
		lookup: lookup,
		locale: locale,
		logger: log,
	}
}

// Resolve returns the first candidate for query. There is no ranking, so an
// ambiguous query resolves to whatever upstream lists first.
func (r *AirportResolver) Resolve(ctx context.Context, query string) (AirportRef, error) {
	ctx, span := tracer.Start(ctx, "flight.ResolveAirport")
	defer span.End()
	span.SetAttributes(attribute.String("airport.query", query))

	candidates, err := r.lookup.LookupAirports(ctx, query, r.locale)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		r.logger.Warn("airport lookup failed",
			logger.Field{Key: "query", Value: query},
			logger.Err(err),
		)
		if errors.Is(err, context.Canceled) {
			return AirportRef{}, err
		}
		return AirportRef{}, newSearchError(ReasonUpstreamUnavailable, query, fmt.Errorf("%w: %v", ErrUpstream, err))
	}

	if len(candidates) == 0 {
		span.SetStatus(codes.Error, "not found")
		return AirportRef{}, newSearchError(ReasonAirportNotFound, query, ErrAirportNotFound)
	}

	ref := candidates[0]
	if strings.TrimSpace(ref.SiteID) == "" || strings.TrimSpace(ref.EntityID) == "" {
		span.SetStatus(codes.Error, "incomplete candidate")
		return AirportRef{}, newSearchError(ReasonUpstreamUnavailable, query,
			fmt.Errorf("%w: first candidate is missing site or entity id", ErrUpstream))
	}

	span.SetAttributes(
		attribute.String("airport.site_id", ref.SiteID),
		attribute.String("airport.entity_id", ref.EntityID),
	)
	r.logger.Debug("airport resolved",
		logger.Field{Key: "query", Value: query},
		logger.Field{Key: "site_id", Value: ref.SiteID},
		logger.Field{Key: "candidates", Value: len(candidates)},
	)
	return ref, nil
}
