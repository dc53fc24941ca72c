package repositories

import (
	"context"

	"accessitrip/internal/infra"
	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	ListReviews(ctx context.Context) ([]response_models.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*response_models.Review, error)
	CreateReview(ctx context.Context, request request_models.ReviewRequest) (*response_models.Review, error)
}

type reviewRepository struct {
	client *infra.APIClient
}

func NewReviewRepository(client *infra.APIClient) ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) ListReviews(ctx context.Context) ([]response_models.Review, error) {
	var reviews []response_models.Review
	if err := r.client.Get(ctx, "/api/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id uuid.UUID) (*response_models.Review, error) {
	var review response_models.Review
	if err := r.client.Get(ctx, "/api/reviews/"+id.String(), &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, request request_models.ReviewRequest) (*response_models.Review, error) {
	var created response_models.Review
	if err := r.client.Post(ctx, "/api/reviews", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
