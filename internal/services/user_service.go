package services

import (
	"context"
	"fmt"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/sirupsen/logrus"
)

// SessionManager is the credential store the holders write through.
type SessionManager interface {
	SaveToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	CurrentUserID(ctx context.Context) (string, error)
}

type UserServiceInterface interface {
	User() observable.Readable[*response_models.User]
	Loading() observable.Readable[bool]
	Err() observable.Readable[string]
	CreateUser(ctx context.Context, request request_models.UserRequest)
	FetchUser(ctx context.Context, id string)
	FetchUserByEmail(ctx context.Context, email string) *response_models.User
	FetchUserByPhone(ctx context.Context, phone string) *response_models.User
	Login(ctx context.Context, identifier, password string) bool
	LoginWithGoogle(ctx context.Context, idToken string) bool
	LoginWithFacebook(ctx context.Context, idToken string) bool
	LoadUserFromToken(ctx context.Context)
	Logout(ctx context.Context)
}

// UserService holds the signed-in user and owns writes to the session store.
type UserService struct {
	userRepo repositories.UserRepository
	authRepo repositories.AuthRepository
	session  SessionManager
	log      logrus.FieldLogger
	user     *observable.Value[*response_models.User]
	loading  *observable.Value[bool]
	err      *observable.Value[string]
}

func NewUserService(
	userRepo repositories.UserRepository,
	authRepo repositories.AuthRepository,
	session SessionManager,
	opts ...Option,
) *UserService {
	o := newOptions("user", opts)
	return &UserService{
		userRepo: userRepo,
		authRepo: authRepo,
		session:  session,
		log:      o.logger,
		user:     observable.NewValue[*response_models.User](nil),
		loading:  observable.NewValue(false),
		err:      observable.NewValue(""),
	}
}

func (s *UserService) User() observable.Readable[*response_models.User] {
	return s.user
}

func (s *UserService) Loading() observable.Readable[bool] {
	return s.loading
}

func (s *UserService) Err() observable.Readable[string] {
	return s.err
}

// begin marks a call in flight and returns the func that ends it.
func (s *UserService) begin() func() {
	s.loading.Set(true)
	s.err.Set("")
	return func() { s.loading.Set(false) }
}

func (s *UserService) CreateUser(ctx context.Context, request request_models.UserRequest) {
	defer s.begin()()

	user, err := s.userRepo.CreateUser(ctx, request)
	if err != nil {
		s.log.WithError(err).Error("failed to create user")
		s.err.Set(messageOr(err, "Unexpected error"))
		return
	}
	s.user.Set(user)
}

func (s *UserService) FetchUser(ctx context.Context, id string) {
	defer s.begin()()

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("failed to fetch user")
		s.err.Set(messageOr(err, "Unable to load user"))
		return
	}
	s.user.Set(user)
}

// FetchUserByEmail returns nil and clears the current user when the lookup
// fails.
func (s *UserService) FetchUserByEmail(ctx context.Context, email string) *response_models.User {
	return s.lookup(ctx, "email", email, s.userRepo.GetUserByEmail)
}

func (s *UserService) FetchUserByPhone(ctx context.Context, phone string) *response_models.User {
	return s.lookup(ctx, "phone", phone, s.userRepo.GetUserByPhone)
}

func (s *UserService) lookup(
	ctx context.Context,
	field, value string,
	get func(context.Context, string) (*response_models.User, error),
) *response_models.User {
	defer s.begin()()

	user, err := get(ctx, value)
	if err != nil {
		s.log.WithError(err).WithField(field, value).Warn("user lookup failed")
		s.user.Set(nil)
		return nil
	}
	s.user.Set(user)
	return user
}

func (s *UserService) Login(ctx context.Context, identifier, password string) bool {
	return s.authenticate(ctx, func() (*response_models.AuthResponse, error) {
		return s.authRepo.Login(ctx, request_models.LoginRequest{Identifier: identifier, Password: password})
	})
}

func (s *UserService) LoginWithGoogle(ctx context.Context, idToken string) bool {
	return s.loginWithProvider(ctx, repositories.ProviderGoogle, idToken)
}

func (s *UserService) LoginWithFacebook(ctx context.Context, idToken string) bool {
	return s.loginWithProvider(ctx, repositories.ProviderFacebook, idToken)
}

func (s *UserService) loginWithProvider(ctx context.Context, provider repositories.IdentityProvider, idToken string) bool {
	return s.authenticate(ctx, func() (*response_models.AuthResponse, error) {
		return s.authRepo.LoginWithProvider(ctx, provider, request_models.FederatedSignInRequest{IDToken: idToken})
	})
}

// authenticate stores the issued token and publishes the user described by
// the auth response.
func (s *UserService) authenticate(ctx context.Context, call func() (*response_models.AuthResponse, error)) bool {
	defer s.begin()()

	auth, err := call()
	if err == nil {
		err = s.session.SaveToken(ctx, auth.Token)
	}
	if err != nil {
		s.log.WithError(err).Warn("login failed")
		s.err.Set(fmt.Sprintf("Login failed: %s", err.Error()))
		s.user.Set(nil)
		return false
	}

	s.user.Set(&response_models.User{
		ID:    auth.UserID,
		Name:  auth.Name,
		Email: auth.Email,
		Phone: auth.Phone,
	})
	return true
}

// LoadUserFromToken restores the user of a stored session. A missing or
// unreadable token leaves the user cell as is.
func (s *UserService) LoadUserFromToken(ctx context.Context) {
	userID, err := s.session.CurrentUserID(ctx)
	if err != nil {
		s.log.WithError(err).Debug("no user to restore from session")
		return
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to load user from token")
		return
	}
	s.user.Set(user)
}

// Logout drops the stored credential along with the user.
func (s *UserService) Logout(ctx context.Context) {
	if err := s.session.Clear(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear session token")
	}
	s.user.Set(nil)
	s.err.Set("")
}

func messageOr(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
