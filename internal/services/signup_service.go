package services

import (
	"context"
	"fmt"
	"time"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	mem "accessitrip/pkg/memcache"
	"accessitrip/pkg/observable"
	"accessitrip/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SignUpDraft collects sign-up input across screens. Setters do no
// validation.
type SignUpDraft struct {
	ID                    uuid.UUID
	fullName              *observable.Value[string]
	nickname              *observable.Value[*string]
	phone                 *observable.Value[string]
	email                 *observable.Value[string]
	password              *observable.Value[string]
	accessibilityFeatures *observable.Value[[]uuid.UUID]
	destinations          *observable.Value[[]string]
	places                *observable.Value[[]string]
}

func NewSignUpDraft() *SignUpDraft {
	return &SignUpDraft{
		ID:                    uuid.New(),
		fullName:              observable.NewValue(""),
		nickname:              observable.NewValue[*string](nil),
		phone:                 observable.NewValue(""),
		email:                 observable.NewValue(""),
		password:              observable.NewValue(""),
		accessibilityFeatures: observable.NewValue[[]uuid.UUID](nil),
		destinations:          observable.NewValue[[]string](nil),
		places:                observable.NewValue[[]string](nil),
	}
}

func (d *SignUpDraft) FullName() observable.Readable[string] { return d.fullName }
func (d *SignUpDraft) Nickname() observable.Readable[*string] { return d.nickname }
func (d *SignUpDraft) Phone() observable.Readable[string] { return d.phone }
func (d *SignUpDraft) Email() observable.Readable[string] { return d.email }
func (d *SignUpDraft) Password() observable.Readable[string] { return d.password }
func (d *SignUpDraft) Destinations() observable.Readable[[]string] { return d.destinations }
func (d *SignUpDraft) Places() observable.Readable[[]string] { return d.places }

func (d *SignUpDraft) AccessibilityFeatures() observable.Readable[[]uuid.UUID] {
	return d.accessibilityFeatures
}

func (d *SignUpDraft) SetFullName(name string) { d.fullName.Set(name) }
func (d *SignUpDraft) SetNickname(nickname *string) { d.nickname.Set(nickname) }
func (d *SignUpDraft) SetPhone(phone string) { d.phone.Set(phone) }
func (d *SignUpDraft) SetEmail(email string) { d.email.Set(email) }
func (d *SignUpDraft) SetPassword(password string) { d.password.Set(password) }
func (d *SignUpDraft) SetPlaces(names []string) { d.places.Set(uniq(names)) }
func (d *SignUpDraft) SetDestinations(names []string) { d.destinations.Set(uniq(names)) }

func (d *SignUpDraft) SetAccessibilityFeatures(ids []uuid.UUID) {
	d.accessibilityFeatures.Set(uniq(ids))
}

// DraftSnapshot is the draft as the UI shell reads it. The password is
// never echoed back.
type DraftSnapshot struct {
	ID                    uuid.UUID   `json:"id"`
	FullName              string      `json:"fullName"`
	Nickname              *string     `json:"nickname"`
	Phone                 string      `json:"phone"`
	Email                 string      `json:"email"`
	HasPassword           bool        `json:"hasPassword"`
	AccessibilityFeatures []uuid.UUID `json:"accessibilityFeatures"`
	Destinations          []string    `json:"destinations"`
	Places                []string    `json:"places"`
}

func (d *SignUpDraft) Snapshot() DraftSnapshot {
	return DraftSnapshot{
		ID:                    d.ID,
		FullName:              d.fullName.Get(),
		Nickname:              d.nickname.Get(),
		Phone:                 d.phone.Get(),
		Email:                 d.email.Get(),
		HasPassword:           d.password.Get() != "",
		AccessibilityFeatures: d.accessibilityFeatures.Get(),
		Destinations:          d.destinations.Get(),
		Places:                d.places.Get(),
	}
}

// uniq keeps the first occurrence of each item, in order.
func uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

type LinkKind string

const (
	LinkAccessibilityFeature LinkKind = "accessibility_feature"
	LinkCountry              LinkKind = "country"
	LinkDestination          LinkKind = "destination"
)

// LinkResult reports one link created after sign-up. Skipped means the name
// had no known id and no call was made.
type LinkResult struct {
	Kind    LinkKind  `json:"kind"`
	Name    string    `json:"name,omitempty"`
	ID      uuid.UUID `json:"id"`
	Skipped bool      `json:"skipped,omitempty"`
	Err     error     `json:"-"`
	Error   string    `json:"error,omitempty"`
}

func (r LinkResult) OK() bool {
	return !r.Skipped && r.Err == nil
}

type SignUpResult struct {
	UserID uuid.UUID             `json:"userId"`
	User   *response_models.User `json:"user"`
	Links  []LinkResult          `json:"links"`
	// CatalogErr is set when the destination catalog could not be loaded;
	// no place links were attempted then.
	CatalogErr   error  `json:"-"`
	CatalogError string `json:"catalogError,omitempty"`
}

// Failed returns the link attempts that reached the backend and failed.
func (r *SignUpResult) Failed() []LinkResult {
	var out []LinkResult
	for _, link := range r.Links {
		if link.Err != nil {
			out = append(out, link)
		}
	}
	return out
}

type SignUpServiceInterface interface {
	Begin() *SignUpDraft
	Draft(flowID uuid.UUID) (*SignUpDraft, error)
	Discard(flowID uuid.UUID)
	SubmitSignup(ctx context.Context, flowID uuid.UUID, countryNameToID map[string]uuid.UUID) (*SignUpResult, error)
}

type SignUpConfig struct {
	FlowTTL         time.Duration
	LinkConcurrency int
}

// SignUpService keeps one draft per sign-up flow and turns a finished draft
// into an account with its links.
type SignUpService struct {
	userRepo        repositories.UserRepository
	authRepo        repositories.AuthRepository
	userFeatureRepo repositories.UserAccessibilityFeatureRepository
	countryRepo     repositories.CountryRepository
	destinationRepo repositories.DestinationRepository
	session         SessionManager
	flows           mem.TTLStore[*SignUpDraft]
	cfg             SignUpConfig
	log             logrus.FieldLogger
}

func NewSignUpService(
	userRepo repositories.UserRepository,
	authRepo repositories.AuthRepository,
	userFeatureRepo repositories.UserAccessibilityFeatureRepository,
	countryRepo repositories.CountryRepository,
	destinationRepo repositories.DestinationRepository,
	session SessionManager,
	flows mem.TTLStore[*SignUpDraft],
	cfg SignUpConfig,
	opts ...Option,
) *SignUpService {
	o := newOptions("signup", opts)
	if cfg.FlowTTL <= 0 {
		cfg.FlowTTL = 30 * time.Minute
	}
	if cfg.LinkConcurrency < 1 {
		cfg.LinkConcurrency = 1
	}
	return &SignUpService{
		userRepo:        userRepo,
		authRepo:        authRepo,
		userFeatureRepo: userFeatureRepo,
		countryRepo:     countryRepo,
		destinationRepo: destinationRepo,
		session:         session,
		flows:           flows,
		cfg:             cfg,
		log:             o.logger,
	}
}

// Begin starts a new flow. Abandoned flows expire after the configured TTL.
func (s *SignUpService) Begin() *SignUpDraft {
	if n := s.flows.Sweep(); n > 0 {
		s.log.WithField("count", n).Debug("expired sign-up drafts dropped")
	}
	draft := NewSignUpDraft()
	s.flows.Set(draft.ID.String(), draft, s.cfg.FlowTTL)
	return draft
}

// Draft returns the flow's draft and extends its lifetime.
func (s *SignUpService) Draft(flowID uuid.UUID) (*SignUpDraft, error) {
	draft, ok := s.flows.Get(flowID.String())
	if !ok {
		return nil, utils.ErrFlowNotFound
	}
	s.flows.Set(flowID.String(), draft, s.cfg.FlowTTL)
	return draft, nil
}

func (s *SignUpService) Discard(flowID uuid.UUID) {
	s.flows.Delete(flowID.String())
}

// SubmitSignup creates the account, logs in and stores the token, in that
// order; any failure there aborts and the draft is kept. Links are then
// created independently and reported per item. The draft is removed once
// the account exists.
func (s *SignUpService) SubmitSignup(ctx context.Context, flowID uuid.UUID, countryNameToID map[string]uuid.UUID) (*SignUpResult, error) {
	draft, err := s.Draft(flowID)
	if err != nil {
		return nil, err
	}
	log := s.log.WithField("flow_id", flowID)

	request := request_models.UserRequest{
		Name:         draft.fullName.Get(),
		Nickname:     draft.nickname.Get(),
		Email:        draft.email.Get(),
		PasswordHash: draft.password.Get(),
		Phone:        draft.phone.Get(),
	}

	user, err := s.userRepo.CreateUser(ctx, request)
	if err != nil {
		log.WithError(err).Error("sign-up failed creating user")
		return nil, fmt.Errorf("create user: %w", err)
	}
	auth, err := s.authRepo.Login(ctx, request_models.LoginRequest{Identifier: request.Email, Password: request.PasswordHash})
	if err != nil {
		log.WithError(err).Error("sign-up failed logging in")
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.session.SaveToken(ctx, auth.Token); err != nil {
		log.WithError(err).Error("sign-up failed storing token")
		return nil, fmt.Errorf("save token: %w", err)
	}
	s.flows.Delete(flowID.String())

	userID, err := uuid.Parse(auth.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", auth.UserID).Error("login returned an invalid user id")
		return nil, fmt.Errorf("%w: user id %q", utils.ErrInvalidRequest, auth.UserID)
	}
	log = log.WithField("user_id", userID)

	result := &SignUpResult{UserID: userID, User: user}
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.LinkConcurrency)

	features := draft.accessibilityFeatures.Get()
	featureLinks := make([]LinkResult, len(features))
	for i, featureID := range features {
		i, featureID := i, featureID
		featureLinks[i] = LinkResult{Kind: LinkAccessibilityFeature, ID: featureID}
		g.Go(func() error {
			_, err := s.userFeatureRepo.CreateUserFeature(ctx, request_models.UserAccessibilityFeatureRequest{UserID: userID, FeatureID: featureID})
			featureLinks[i].setErr(err)
			return nil
		})
	}

	countries := draft.destinations.Get()
	countryLinks := make([]LinkResult, len(countries))
	for i, name := range countries {
		i := i
		countryID, ok := countryNameToID[name]
		countryLinks[i] = LinkResult{Kind: LinkCountry, Name: name, ID: countryID, Skipped: !ok}
		if !ok {
			continue
		}
		g.Go(func() error {
			_, err := s.countryRepo.CreateUserCountryAccess(ctx, request_models.UserCountryAccessRequest{UserID: userID, CountryID: countryID})
			countryLinks[i].setErr(err)
			return nil
		})
	}

	var placeLinks []LinkResult
	catalog, err := s.destinationRepo.ListDestinations(ctx)
	if err != nil {
		log.WithError(err).Error("failed to load destination catalog for sign-up")
		result.CatalogErr = err
		result.CatalogError = err.Error()
	} else {
		nameToID := make(map[string]uuid.UUID, len(catalog))
		for _, d := range catalog {
			nameToID[d.Name] = d.ID
		}
		places := draft.places.Get()
		placeLinks = make([]LinkResult, len(places))
		for i, name := range places {
			i := i
			destinationID, ok := nameToID[name]
			placeLinks[i] = LinkResult{Kind: LinkDestination, Name: name, ID: destinationID, Skipped: !ok}
			if !ok {
				continue
			}
			g.Go(func() error {
				_, err := s.destinationRepo.CreateUserSelectedDestination(ctx, request_models.UserSelectedDestinationRequest{UserID: userID, DestinationID: destinationID})
				placeLinks[i].setErr(err)
				return nil
			})
		}
	}

	_ = g.Wait()

	result.Links = make([]LinkResult, 0, len(featureLinks)+len(countryLinks)+len(placeLinks))
	result.Links = append(result.Links, featureLinks...)
	result.Links = append(result.Links, countryLinks...)
	result.Links = append(result.Links, placeLinks...)

	for _, link := range result.Failed() {
		log.WithError(link.Err).WithFields(logrus.Fields{
			"kind": link.Kind,
			"id":   link.ID,
		}).Error("failed to link sign-up selection")
	}
	return result, nil
}

func (r *LinkResult) setErr(err error) {
	if err == nil {
		return
	}
	r.Err = err
	r.Error = err.Error()
}
