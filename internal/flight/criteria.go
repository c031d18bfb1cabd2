package flight

import (
	"fmt"
	"strings"
	"time"
)

// SearchForm is the raw form payload before parsing.
type SearchForm struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"depart_date"`
	ReturnDate  string `json:"return_date,omitempty"`
	Passengers  int    `json:"passengers"`
	CabinClass  string `json:"cabin_class"`
}

// ParseSearchForm turns form fields into validated SearchCriteria.
func ParseSearchForm(form SearchForm) (SearchCriteria, error) {
	criteria := SearchCriteria{
		Origin:      strings.TrimSpace(form.Origin),
		Destination: strings.TrimSpace(form.Destination),
		Passengers:  form.Passengers,
	}
	if criteria.Passengers == 0 {
		criteria.Passengers = MinPassengers
	}

	cabin, err := ParseCabinClass(form.CabinClass)
	if err != nil {
		return SearchCriteria{}, err
	}
	criteria.CabinClass = cabin

	if form.DepartDate != "" {
		depart, err := time.Parse(DateLayout, form.DepartDate)
		if err != nil {
			return SearchCriteria{}, fmt.Errorf("%w: depart_date %q", ErrInvalidCriteria, form.DepartDate)
		}
		criteria.DepartDate = depart
	}

	if form.ReturnDate != "" {
		ret, err := time.Parse(DateLayout, form.ReturnDate)
		if err != nil {
			return SearchCriteria{}, fmt.Errorf("%w: return_date %q", ErrInvalidCriteria, form.ReturnDate)
		}
		criteria.ReturnDate = &ret
	}

	if err := criteria.Validate(); err != nil {
		return SearchCriteria{}, err
	}
	return criteria, nil
}

func (c SearchCriteria) Validate() error {
	switch {
	case strings.TrimSpace(c.Origin) == "":
		return fmt.Errorf("%w: origin is required", ErrInvalidCriteria)
	case strings.TrimSpace(c.Destination) == "":
		return fmt.Errorf("%w: destination is required", ErrInvalidCriteria)
	case c.DepartDate.IsZero():
		return fmt.Errorf("%w: depart date is required", ErrInvalidCriteria)
	case c.Passengers < MinPassengers || c.Passengers > MaxPassengers:
		return fmt.Errorf("%w: passengers must be between %d and %d", ErrInvalidCriteria, MinPassengers, MaxPassengers)
	case !c.CabinClass.Valid():
		return fmt.Errorf("%w: unknown cabin class %q", ErrInvalidCriteria, c.CabinClass)
	case c.ReturnDate != nil && c.ReturnDate.Before(c.DepartDate):
		return fmt.Errorf("%w: return date is before depart date", ErrInvalidCriteria)
	}
	return nil
}

func (c SearchCriteria) departDate() string {
	return c.DepartDate.Format(DateLayout)
}

func (c SearchCriteria) returnDate() *string {
	if c.ReturnDate == nil {
		return nil
	}
	s := c.ReturnDate.Format(DateLayout)
	return &s
}
