package flight

import (
	"cmp"
	"fmt"
	"slices"
)

// Sort returns a stably sorted copy of itineraries. The input is not touched.
func Sort(itineraries []Itinerary, key SortKey) ([]Itinerary, error) {
	sorted := make([]Itinerary, len(itineraries))
	copy(sorted, itineraries)

	switch key {
	case SortNone, "":
		return sorted, nil
	case SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b Itinerary) int {
			return cmp.Compare(a.Price.Amount, b.Price.Amount)
		})
	case SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b Itinerary) int {
			return cmp.Compare(b.Price.Amount, a.Price.Amount)
		})
	case SortDurationAsc, SortDurationDesc:
		for i, it := range sorted {
			if _, ok := it.FirstLeg(); !ok {
				return nil, fmt.Errorf("%w: itinerary %d (%s) has no legs", ErrMalformedItinerary, i, it.ID)
			}
		}
		desc := key == SortDurationDesc
		slices.SortStableFunc(sorted, func(a, b Itinerary) int {
			la, _ := a.FirstLeg()
			lb, _ := b.FirstLeg()
			if desc {
				return cmp.Compare(lb.DurationMinutes, la.DurationMinutes)
			}
			return cmp.Compare(la.DurationMinutes, lb.DurationMinutes)
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	return sorted, nil
}
