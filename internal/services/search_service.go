package services

import (
	"slices"
	"strings"

	"accessitrip/internal/models/response_models"
	"accessitrip/pkg/observable"
)

// FilterAll disables the accessibility filter.
const FilterAll = "All"

// AccessibilityFilters are the filter labels the search screen offers.
var AccessibilityFilters = []string{"Wheelchair Accessible", "Braille Available", "Hearing Aid"}

type searchQuery struct {
	text   string
	filter string
}

type SearchServiceInterface interface {
	SetQuery(text string)
	SetFilter(filter string)
	Results() observable.Readable[[]response_models.Itinerary]
}

// SearchService filters a published itinerary list by free text and an
// accessibility label. It never calls the backend.
type SearchService struct {
	query   *observable.Value[searchQuery]
	results observable.Readable[[]response_models.Itinerary]
}

func NewSearchService(itineraries observable.Readable[[]response_models.Itinerary]) *SearchService {
	query := observable.NewValue(searchQuery{filter: FilterAll})
	return &SearchService{
		query: query,
		results: observable.Combine[[]response_models.Itinerary, searchQuery, []response_models.Itinerary](
			itineraries, query, filterItineraries,
		),
	}
}

func (s *SearchService) SetQuery(text string) {
	s.query.Update(func(q searchQuery) searchQuery {
		q.text = text
		return q
	})
}

func (s *SearchService) SetFilter(filter string) {
	s.query.Update(func(q searchQuery) searchQuery {
		q.filter = filter
		return q
	})
}

func (s *SearchService) Results() observable.Readable[[]response_models.Itinerary] {
	return s.results
}

// filterItineraries matches title or destination name case-insensitively.
// An unknown filter label matches nothing.
func filterItineraries(items []response_models.Itinerary, q searchQuery) []response_models.Itinerary {
	if q.filter != "" && q.filter != FilterAll && !slices.Contains(AccessibilityFilters, q.filter) {
		return []response_models.Itinerary{}
	}

	needle := strings.ToLower(q.text)
	out := make([]response_models.Itinerary, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), needle) ||
			strings.Contains(strings.ToLower(it.DestinationName), needle) {
			out = append(out, it)
		}
	}
	return out
}
