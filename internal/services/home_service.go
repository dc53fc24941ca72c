package services

import (
	"accessitrip/internal/models/response_models"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
)

// SavedItineraryDetail pairs a saved record with the itinerary it points at.
type SavedItineraryDetail struct {
	Saved     response_models.SavedItinerary `json:"saved"`
	Itinerary response_models.Itinerary      `json:"itinerary"`
}

// NextPlanItinerary resolves the next plan pointer against the itinerary
// list. It is nil while either side is missing.
func NextPlanItinerary(
	nextPlan observable.Readable[*response_models.SavedItinerary],
	itineraries observable.Readable[[]response_models.Itinerary],
) observable.Readable[*response_models.Itinerary] {
	return observable.Combine[*response_models.SavedItinerary, []response_models.Itinerary, *response_models.Itinerary](
		nextPlan, itineraries,
		func(plan *response_models.SavedItinerary, items []response_models.Itinerary) *response_models.Itinerary {
			if plan == nil {
				return nil
			}
			return findItinerary(items, plan.ItineraryID)
		},
	)
}

// SavedItineraryDetails keeps the saved order and skips records whose
// itinerary is not loaded.
func SavedItineraryDetails(
	saved observable.Readable[[]response_models.SavedItinerary],
	itineraries observable.Readable[[]response_models.Itinerary],
) observable.Readable[[]SavedItineraryDetail] {
	return observable.Combine[[]response_models.SavedItinerary, []response_models.Itinerary, []SavedItineraryDetail](
		saved, itineraries,
		func(records []response_models.SavedItinerary, items []response_models.Itinerary) []SavedItineraryDetail {
			byID := make(map[uuid.UUID]response_models.Itinerary, len(items))
			for _, it := range items {
				byID[it.ID] = it
			}
			out := make([]SavedItineraryDetail, 0, len(records))
			for _, record := range records {
				if it, ok := byID[record.ItineraryID]; ok {
					out = append(out, SavedItineraryDetail{Saved: record, Itinerary: it})
				}
			}
			return out
		},
	)
}
