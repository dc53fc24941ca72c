package services

import (
	"context"

	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CountryServiceInterface interface {
	Countries() observable.Readable[[]response_models.Country]
	Loading() observable.Readable[bool]
	FetchCountries(ctx context.Context)
	NameToID() map[string]uuid.UUID
	Close()
}

type CountryService struct {
	*taskScope
	repo      repositories.CountryRepository
	log       logrus.FieldLogger
	countries *observable.Value[[]response_models.Country]
	loading   *observable.Value[bool]
}

func NewCountryService(repo repositories.CountryRepository, opts ...Option) *CountryService {
	o := newOptions("country", opts)
	s := &CountryService{
		taskScope: newTaskScope(),
		repo:      repo,
		log:       o.logger,
		countries: observable.NewValue[[]response_models.Country](nil),
		loading:   observable.NewValue(true),
	}
	if !o.skipInitialFetch {
		s.launch(s.FetchCountries)
	}
	return s
}

func (s *CountryService) Countries() observable.Readable[[]response_models.Country] {
	return s.countries
}

func (s *CountryService) Loading() observable.Readable[bool] {
	return s.loading
}

func (s *CountryService) FetchCountries(ctx context.Context) {
	s.loading.Set(true)
	defer s.loading.Set(false)

	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch countries")
		return
	}
	s.countries.Set(countries)
}

// NameToID maps the loaded country names to their ids for sign-up linking.
func (s *CountryService) NameToID() map[string]uuid.UUID {
	countries := s.countries.Get()
	out := make(map[string]uuid.UUID, len(countries))
	for _, c := range countries {
		out[c.Name] = c.ID
	}
	return out
}
