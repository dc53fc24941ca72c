package repositories

import (
	"context"

	"accessitrip/internal/infra"
	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
)

type CountryRepository interface {
	ListCountries(ctx context.Context) ([]response_models.Country, error)
	CreateUserCountryAccess(ctx context.Context, request request_models.UserCountryAccessRequest) (*response_models.UserCountryAccess, error)
}

type countryRepository struct {
	client *infra.APIClient
}

func NewCountryRepository(client *infra.APIClient) CountryRepository {
	return &countryRepository{client: client}
}

func (r *countryRepository) ListCountries(ctx context.Context) ([]response_models.Country, error) {
	var countries []response_models.Country
	if err := r.client.Get(ctx, "/api/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) CreateUserCountryAccess(ctx context.Context, request request_models.UserCountryAccessRequest) (*response_models.UserCountryAccess, error) {
	var created response_models.UserCountryAccess
	if err := r.client.Post(ctx, "/api/user-country-access", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type DestinationRepository interface {
	ListDestinations(ctx context.Context) ([]response_models.Destination, error)
	CreateUserSelectedDestination(ctx context.Context, request request_models.UserSelectedDestinationRequest) (*response_models.UserSelectedDestination, error)
}

type destinationRepository struct {
	client *infra.APIClient
}

func NewDestinationRepository(client *infra.APIClient) DestinationRepository {
	return &destinationRepository{client: client}
}

func (r *destinationRepository) ListDestinations(ctx context.Context) ([]response_models.Destination, error) {
	var destinations []response_models.Destination
	if err := r.client.Get(ctx, "/api/destinations", &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) CreateUserSelectedDestination(ctx context.Context, request request_models.UserSelectedDestinationRequest) (*response_models.UserSelectedDestination, error) {
	var created response_models.UserSelectedDestination
	if err := r.client.Post(ctx, "/api/user-selected-destinations", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
