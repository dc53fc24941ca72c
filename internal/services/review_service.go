package services

import (
	"context"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const reviewsErrorMessage = "Failed to fetch reviews"

type ReviewServiceInterface interface {
	Reviews() observable.Readable[[]response_models.Review]
	Err() observable.Readable[string]
	FetchAll(ctx context.Context)
	ForItinerary(itineraryID uuid.UUID) []response_models.Review
	ForUser(userID uuid.UUID) []response_models.Review
	PostReview(ctx context.Context, request request_models.ReviewRequest, onSuccess func(), onError func(string))
	Close()
}

type ReviewService struct {
	*taskScope
	repo    repositories.ReviewRepository
	log     logrus.FieldLogger
	reviews *observable.Value[[]response_models.Review]
	err     *observable.Value[string]
}

func NewReviewService(repo repositories.ReviewRepository, opts ...Option) *ReviewService {
	o := newOptions("review", opts)
	s := &ReviewService{
		taskScope: newTaskScope(),
		repo:      repo,
		log:       o.logger,
		reviews:   observable.NewValue[[]response_models.Review](nil),
		err:       observable.NewValue(""),
	}
	if !o.skipInitialFetch {
		s.launch(s.FetchAll)
	}
	return s
}

func (s *ReviewService) Reviews() observable.Readable[[]response_models.Review] {
	return s.reviews
}

func (s *ReviewService) Err() observable.Readable[string] {
	return s.err
}

func (s *ReviewService) FetchAll(ctx context.Context) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch reviews")
		s.err.Set(reviewsErrorMessage)
		return
	}
	s.reviews.Set(reviews)
	s.err.Set("")
}

func (s *ReviewService) ForItinerary(itineraryID uuid.UUID) []response_models.Review {
	return filterReviews(s.reviews.Get(), func(r response_models.Review) bool {
		return r.ItineraryID == itineraryID
	})
}

func (s *ReviewService) ForUser(userID uuid.UUID) []response_models.Review {
	return filterReviews(s.reviews.Get(), func(r response_models.Review) bool {
		return r.UserID == userID
	})
}

// PostReview appends the backend's copy of the review. onError receives the
// failure message as is; either callback may be nil.
func (s *ReviewService) PostReview(ctx context.Context, request request_models.ReviewRequest, onSuccess func(), onError func(string)) {
	created, err := s.repo.CreateReview(ctx, request)
	if err != nil {
		s.log.WithError(err).WithField("itinerary_id", request.ItineraryID).Error("failed to post review")
		if onError != nil {
			onError(err.Error())
		}
		return
	}

	s.reviews.Update(func(current []response_models.Review) []response_models.Review {
		return appendCopy(current, *created)
	})
	if onSuccess != nil {
		onSuccess()
	}
}

func filterReviews(reviews []response_models.Review, keep func(response_models.Review) bool) []response_models.Review {
	out := make([]response_models.Review, 0)
	for _, r := range reviews {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
