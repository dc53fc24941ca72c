package services

import (
	"context"
	"errors"
	"sync"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

var errBoom = &utils.APIError{StatusCode: 500, Message: "Server error"}

func newTestLogger() (Option, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return WithLogger(logger), hook
}

// calls counts invocations by name.
type calls struct {
	mu     sync.Mutex
	counts map[string]int
	args   map[string][]any
}

func (c *calls) record(name string, arg any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int{}
		c.args = map[string][]any{}
	}
	c.counts[name]++
	c.args[name] = append(c.args[name], arg)
}

func (c *calls) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}

func (c *calls) argsOf(name string) []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.args[name]...)
}

type fakeItineraryRepo struct {
	calls
	items []response_models.Itinerary
	err   error
}

func (f *fakeItineraryRepo) ListItineraries(context.Context) ([]response_models.Itinerary, error) {
	f.record("list", nil)
	return f.items, f.err
}

type fakeStepRepo struct {
	calls
	steps []response_models.ItineraryStep
	err   error
}

func (f *fakeStepRepo) ListStepsByItinerary(_ context.Context, id uuid.UUID) ([]response_models.ItineraryStep, error) {
	f.record("list", id)
	return f.steps, f.err
}

type fakeSavedRepo struct {
	calls
	saved     []response_models.SavedItinerary
	listErr   error
	saveErr   error
	deleteErr error
}

func (f *fakeSavedRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]response_models.SavedItinerary, error) {
	f.record("list", userID)
	return f.saved, f.listErr
}

func (f *fakeSavedRepo) Save(_ context.Context, req request_models.SavedItineraryRequest) (*response_models.SavedItinerary, error) {
	f.record("save", req)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &response_models.SavedItinerary{ID: uuid.New(), UserID: req.UserID, ItineraryID: req.ItineraryID}, nil
}

func (f *fakeSavedRepo) Delete(_ context.Context, savedID uuid.UUID) error {
	f.record("delete", savedID)
	return f.deleteErr
}

type fakeReviewRepo struct {
	calls
	reviews   []response_models.Review
	listErr   error
	createErr error
}

func (f *fakeReviewRepo) ListReviews(context.Context) ([]response_models.Review, error) {
	f.record("list", nil)
	return f.reviews, f.listErr
}

func (f *fakeReviewRepo) GetReview(_ context.Context, id uuid.UUID) (*response_models.Review, error) {
	f.record("get", id)
	for _, r := range f.reviews {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, &utils.APIError{StatusCode: 404}
}

func (f *fakeReviewRepo) CreateReview(_ context.Context, req request_models.ReviewRequest) (*response_models.Review, error) {
	f.record("create", req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &response_models.Review{
		ID:          uuid.New(),
		UserID:      req.UserID,
		ItineraryID: req.ItineraryID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}, nil
}

type fakeSettingRepo struct {
	calls
	settings []response_models.Setting
	err      error
}

func (f *fakeSettingRepo) ListSettings(context.Context) ([]response_models.Setting, error) {
	f.record("list", nil)
	return f.settings, f.err
}

type fakeUserSettingRepo struct {
	calls
	overrides []response_models.UserSetting
	listErr   error
	writeErr  error
	createdID string
}

func (f *fakeUserSettingRepo) ListUserSettings(context.Context) ([]response_models.UserSetting, error) {
	f.record("list", nil)
	return f.overrides, f.listErr
}

func (f *fakeUserSettingRepo) CreateUserSetting(_ context.Context, req request_models.UserSettingRequest) (*response_models.UserSetting, error) {
	f.record("create", req)
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &response_models.UserSetting{ID: f.createdID, UserID: req.UserID, SettingID: req.SettingID, Value: req.Value}, nil
}

func (f *fakeUserSettingRepo) UpdateUserSetting(_ context.Context, id string, req request_models.UserSettingRequest) (*response_models.UserSetting, error) {
	f.record("update", id)
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &response_models.UserSetting{ID: id, UserID: req.UserID, SettingID: req.SettingID, Value: req.Value}, nil
}

type fakeFeatureRepo struct {
	calls
	features []response_models.AccessibilityFeature
	err      error
}

func (f *fakeFeatureRepo) ListFeatures(context.Context) ([]response_models.AccessibilityFeature, error) {
	f.record("list", nil)
	return f.features, f.err
}

type fakeUserFeatureRepo struct {
	calls
	links   []response_models.UserAccessibilityFeature
	listErr error
	failFor map[uuid.UUID]bool
}

func (f *fakeUserFeatureRepo) ListUserFeatures(context.Context) ([]response_models.UserAccessibilityFeature, error) {
	f.record("list", nil)
	return f.links, f.listErr
}

func (f *fakeUserFeatureRepo) CreateUserFeature(_ context.Context, req request_models.UserAccessibilityFeatureRequest) (*response_models.UserAccessibilityFeature, error) {
	f.record("create", req)
	if f.failFor[req.FeatureID] {
		return nil, errBoom
	}
	return &response_models.UserAccessibilityFeature{ID: uuid.New(), UserID: req.UserID, FeatureID: req.FeatureID}, nil
}

type fakeCountryRepo struct {
	calls
	countries []response_models.Country
	listErr   error
	failFor   map[uuid.UUID]bool
}

func (f *fakeCountryRepo) ListCountries(context.Context) ([]response_models.Country, error) {
	f.record("list", nil)
	return f.countries, f.listErr
}

func (f *fakeCountryRepo) CreateUserCountryAccess(_ context.Context, req request_models.UserCountryAccessRequest) (*response_models.UserCountryAccess, error) {
	f.record("create", req)
	if f.failFor[req.CountryID] {
		return nil, errBoom
	}
	return &response_models.UserCountryAccess{ID: uuid.New(), UserID: req.UserID, CountryID: req.CountryID}, nil
}

type fakeDestinationRepo struct {
	calls
	destinations []response_models.Destination
	listErr      error
}

func (f *fakeDestinationRepo) ListDestinations(context.Context) ([]response_models.Destination, error) {
	f.record("list", nil)
	return f.destinations, f.listErr
}

func (f *fakeDestinationRepo) CreateUserSelectedDestination(_ context.Context, req request_models.UserSelectedDestinationRequest) (*response_models.UserSelectedDestination, error) {
	f.record("create", req)
	return &response_models.UserSelectedDestination{ID: uuid.New(), UserID: req.UserID, DestinationID: req.DestinationID}, nil
}

type fakeUserRepo struct {
	calls
	user      *response_models.User
	err       error
	createErr error
}

func (f *fakeUserRepo) CreateUser(_ context.Context, req request_models.UserRequest) (*response_models.User, error) {
	f.record("create", req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &response_models.User{ID: uuid.NewString(), Name: req.Name, Email: req.Email, Phone: req.Phone}, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*response_models.User, error) {
	f.record("byID", id)
	return f.user, f.err
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*response_models.User, error) {
	f.record("byEmail", email)
	return f.user, f.err
}

func (f *fakeUserRepo) GetUserByPhone(_ context.Context, phone string) (*response_models.User, error) {
	f.record("byPhone", phone)
	return f.user, f.err
}

type fakeAuthRepo struct {
	calls
	auth *response_models.AuthResponse
	err  error
}

func (f *fakeAuthRepo) Login(_ context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	f.record("login", req)
	return f.auth, f.err
}

func (f *fakeAuthRepo) LoginWithProvider(_ context.Context, provider repositories.IdentityProvider, req request_models.FederatedSignInRequest) (*response_models.AuthResponse, error) {
	f.record(string(provider), req)
	return f.auth, f.err
}

type fakeSession struct {
	mu      sync.Mutex
	token   string
	userID  string
	saveErr error
	cleared int
}

func (f *fakeSession) SaveToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}

func (f *fakeSession) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.cleared++
	return nil
}

func (f *fakeSession) CurrentUserID(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.token == "" {
		return "", utils.ErrNoSession
	}
	if f.userID == "" {
		return "", errors.New("no user id claim")
	}
	return f.userID, nil
}

func (f *fakeSession) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}
