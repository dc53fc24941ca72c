package view_models

import "accessitrip/internal/models/response_models"

// ItineraryStepView adds map-ready coordinates to a step. Lat and Lng are
// nil when the backend sent no usable position.
type ItineraryStepView struct {
	response_models.ItineraryStep
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

func NewItineraryStepViews(steps []response_models.ItineraryStep) []ItineraryStepView {
	views := make([]ItineraryStepView, len(steps))
	for i, step := range steps {
		views[i].ItineraryStep = step
		if lat, lng, err := step.Coordinates(); err == nil {
			views[i].Lat, views[i].Lng = &lat, &lng
		}
	}
	return views
}
