package repositories

import (
	"context"
	"net/url"

	"accessitrip/internal/infra"
	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, request request_models.UserRequest) (*response_models.User, error)
	GetUserByID(ctx context.Context, id string) (*response_models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*response_models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*response_models.User, error)
}

type userRepository struct {
	client *infra.APIClient
}

func NewUserRepository(client *infra.APIClient) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) CreateUser(ctx context.Context, request request_models.UserRequest) (*response_models.User, error) {
	var user response_models.User
	if err := r.client.Post(ctx, "/api/users", request, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*response_models.User, error) {
	return r.getUser(ctx, "/api/users/"+url.PathEscape(id))
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*response_models.User, error) {
	return r.getUser(ctx, "/api/users/email/"+url.PathEscape(email))
}

func (r *userRepository) GetUserByPhone(ctx context.Context, phone string) (*response_models.User, error) {
	return r.getUser(ctx, "/api/users/phone/"+url.PathEscape(phone))
}

func (r *userRepository) getUser(ctx context.Context, path string) (*response_models.User, error) {
	var user response_models.User
	if err := r.client.Get(ctx, path, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type IdentityProvider string

const (
	ProviderGoogle   IdentityProvider = "google"
	ProviderFacebook IdentityProvider = "facebook"
)

type AuthRepository interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	// LoginWithProvider exchanges an identity token issued by provider.
	LoginWithProvider(ctx context.Context, provider IdentityProvider, request request_models.FederatedSignInRequest) (*response_models.AuthResponse, error)
}

type authRepository struct {
	client *infra.APIClient
}

func NewAuthRepository(client *infra.APIClient) AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	var auth response_models.AuthResponse
	if err := r.client.Post(ctx, "/api/auth/login", request, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *authRepository) LoginWithProvider(ctx context.Context, provider IdentityProvider, request request_models.FederatedSignInRequest) (*response_models.AuthResponse, error) {
	var auth response_models.AuthResponse
	if err := r.client.Post(ctx, "/api/auth/"+url.PathEscape(string(provider)), request, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}
