package services

import (
	"context"

	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccessibilityServiceInterface interface {
	Features() observable.Readable[[]response_models.AccessibilityFeature]
	SelectedLabels() observable.Readable[[]string]
	Loading() observable.Readable[bool]
	FetchAccessibilityFeatures(ctx context.Context)
	FetchUserFeatures(ctx context.Context, userID string)
	Close()
}

// AccessibilityService holds the accessibility feature catalog and the labels
// a user picked. FetchUserFeatures resolves labels through the catalog, so the
// catalog has to be loaded first.
type AccessibilityService struct {
	*taskScope
	featureRepo     repositories.AccessibilityFeatureRepository
	userFeatureRepo repositories.UserAccessibilityFeatureRepository
	log             logrus.FieldLogger
	features        *observable.Value[[]response_models.AccessibilityFeature]
	selectedLabels  *observable.Value[[]string]
	loading         *observable.Value[bool]
}

func NewAccessibilityService(
	featureRepo repositories.AccessibilityFeatureRepository,
	userFeatureRepo repositories.UserAccessibilityFeatureRepository,
	opts ...Option,
) *AccessibilityService {
	o := newOptions("accessibility", opts)
	s := &AccessibilityService{
		taskScope:       newTaskScope(),
		featureRepo:     featureRepo,
		userFeatureRepo: userFeatureRepo,
		log:             o.logger,
		features:        observable.NewValue[[]response_models.AccessibilityFeature](nil),
		selectedLabels:  observable.NewValue[[]string](nil),
		loading:         observable.NewValue(true),
	}
	if !o.skipInitialFetch {
		s.launch(s.FetchAccessibilityFeatures)
	}
	return s
}

func (s *AccessibilityService) Features() observable.Readable[[]response_models.AccessibilityFeature] {
	return s.features
}

func (s *AccessibilityService) SelectedLabels() observable.Readable[[]string] {
	return s.selectedLabels
}

func (s *AccessibilityService) Loading() observable.Readable[bool] {
	return s.loading
}

func (s *AccessibilityService) FetchAccessibilityFeatures(ctx context.Context) {
	s.loading.Set(true)
	defer s.loading.Set(false)

	features, err := s.featureRepo.ListFeatures(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch accessibility features")
		return
	}
	s.features.Set(features)
}

func (s *AccessibilityService) FetchUserFeatures(ctx context.Context, userID string) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("invalid user id")
		return
	}

	links, err := s.userFeatureRepo.ListUserFeatures(ctx)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to fetch user accessibility features")
		return
	}

	selected := make(map[uuid.UUID]struct{})
	for _, link := range links {
		if link.UserID == uid {
			selected[link.FeatureID] = struct{}{}
		}
	}

	labels := make([]string, 0, len(selected))
	for _, feature := range s.features.Get() {
		if _, ok := selected[feature.ID]; ok {
			labels = append(labels, feature.Name)
		}
	}
	s.selectedLabels.Set(labels)
}
