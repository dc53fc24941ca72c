package repositories

import (
	"context"

	"accessitrip/internal/infra"
	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
)

type AccessibilityFeatureRepository interface {
	ListFeatures(ctx context.Context) ([]response_models.AccessibilityFeature, error)
}

type accessibilityFeatureRepository struct {
	client *infra.APIClient
}

func NewAccessibilityFeatureRepository(client *infra.APIClient) AccessibilityFeatureRepository {
	return &accessibilityFeatureRepository{client: client}
}

func (r *accessibilityFeatureRepository) ListFeatures(ctx context.Context) ([]response_models.AccessibilityFeature, error) {
	var features []response_models.AccessibilityFeature
	if err := r.client.Get(ctx, "/api/accessibility-features", &features); err != nil {
		return nil, err
	}
	return features, nil
}

// UserAccessibilityFeatureRepository is the user/feature link table. The
// backend only lists it whole; callers filter by user.
type UserAccessibilityFeatureRepository interface {
	ListUserFeatures(ctx context.Context) ([]response_models.UserAccessibilityFeature, error)
	CreateUserFeature(ctx context.Context, request request_models.UserAccessibilityFeatureRequest) (*response_models.UserAccessibilityFeature, error)
}

type userAccessibilityFeatureRepository struct {
	client *infra.APIClient
}

func NewUserAccessibilityFeatureRepository(client *infra.APIClient) UserAccessibilityFeatureRepository {
	return &userAccessibilityFeatureRepository{client: client}
}

func (r *userAccessibilityFeatureRepository) ListUserFeatures(ctx context.Context) ([]response_models.UserAccessibilityFeature, error) {
	var links []response_models.UserAccessibilityFeature
	if err := r.client.Get(ctx, "/api/user-accessibility-features", &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *userAccessibilityFeatureRepository) CreateUserFeature(ctx context.Context, request request_models.UserAccessibilityFeatureRequest) (*response_models.UserAccessibilityFeature, error) {
	var created response_models.UserAccessibilityFeature
	if err := r.client.Post(ctx, "/api/user-accessibility-features", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
