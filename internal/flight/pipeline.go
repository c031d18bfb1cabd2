package flight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightfinder/pkg/idgen"
	"flightfinder/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ItinerarySearcher issues the single upstream itinerary search.
type ItinerarySearcher interface {
	SearchItineraries(ctx context.Context, q ItineraryQuery) ([]Itinerary, error)
}

type Pipeline struct {
	resolver *AirportResolver
	searcher ItinerarySearcher
	ids      idgen.Generator
	currency string
	market   string
	logger   logger.Logger
	metrics  searchMetrics
}

func NewPipeline(
	resolver *AirportResolver,
	searcher ItinerarySearcher,
	ids idgen.Generator,
	currency, market string,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		searcher: searcher,
		ids:      ids,
		currency: currency,
		market:   market,
		logger:   log,
		metrics:  newSearchMetrics(),
	}
}

// Search resolves both airports, runs one itinerary search and returns the
// results in upstream order.
func (p *Pipeline) Search(ctx context.Context, criteria SearchCriteria) (itineraries []Itinerary, err error) {
	searchID := p.ids.GenerateString()
	start := time.Now()

	ctx, span := tracer.Start(ctx, "flight.Search")
	span.SetAttributes(
		attribute.String("search.id", searchID),
		attribute.String("search.origin", criteria.Origin),
		attribute.String("search.destination", criteria.Destination),
	)
	defer func() {
		p.metrics.record(ctx, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(ReasonOf(err)))
		}
		span.End()
	}()

	if err := criteria.Validate(); err != nil {
		return nil, newSearchError(ReasonInvalidCriteria, "", err)
	}

	origin, destination, err := p.resolvePair(ctx, criteria)
	if err != nil {
		p.logger.Info("search stopped at airport resolution",
			logger.Field{Key: "search_id", Value: searchID},
			logger.Err(err),
		)
		return nil, err
	}

	query := ItineraryQuery{
		OriginSiteID:        origin.SiteID,
		DestinationSiteID:   destination.SiteID,
		OriginEntityID:      origin.EntityID,
		DestinationEntityID: destination.EntityID,
		DepartDate:          criteria.departDate(),
		ReturnDate:          criteria.returnDate(),
		Passengers:          criteria.Passengers,
		CabinClass:          criteria.CabinClass,
		Currency:            p.currency,
		Market:              p.market,
	}

	itineraries, err = p.searcher.SearchItineraries(ctx, query)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		p.logger.Warn("itinerary search failed",
			logger.Field{Key: "search_id", Value: searchID},
			logger.Err(err),
		)
		if errors.Is(err, ErrNoResults) {
			return nil, newSearchError(ReasonNoResults, "", err)
		}
		return nil, newSearchError(ReasonUpstreamUnavailable, "", upstreamErr(err))
	}

	if len(itineraries) == 0 {
		return nil, newSearchError(ReasonNoResults, "", ErrNoResults)
	}

	p.logger.Info("search completed",
		logger.Field{Key: "search_id", Value: searchID},
		logger.Field{Key: "results", Value: len(itineraries)},
		logger.Field{Key: "elapsed", Value: time.Since(start)},
	)
	return itineraries, nil
}

type resolution struct {
	origin bool
	ref    AirportRef
	err    error
}

// resolvePair runs both lookups at once and returns on the first failure
// without waiting for the other one.
func (p *Pipeline) resolvePair(ctx context.Context, criteria SearchCriteria) (AirportRef, AirportRef, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan resolution, 2)
	resolve := func(query string, origin bool) {
		ref, err := p.resolver.Resolve(ctx, query)
		results <- resolution{origin: origin, ref: ref, err: err}
	}
	go resolve(criteria.Origin, true)
	go resolve(criteria.Destination, false)

	var origin, destination AirportRef
	for range 2 {
		select {
		case r := <-results:
			if r.err != nil {
				return AirportRef{}, AirportRef{}, r.err
			}
			if r.origin {
				origin = r.ref
			} else {
				destination = r.ref
			}
		case <-ctx.Done():
			return AirportRef{}, AirportRef{}, ctx.Err()
		}
	}
	return origin, destination, nil
}

func upstreamErr(err error) error {
	if errors.Is(err, ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
