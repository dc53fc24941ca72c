package services

import (
	"context"
	"testing"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
)

func newUserService(t *testing.T, users *fakeUserRepo, auth *fakeAuthRepo, session *fakeSession) *UserService {
	t.Helper()
	logOpt, _ := newTestLogger()
	return NewUserService(users, auth, session, logOpt)
}

func TestLoginStoresTokenAndPublishesUser(t *testing.T) {
	session := &fakeSession{}
	auth := &fakeAuthRepo{auth: &response_models.AuthResponse{Token: "jwt", UserID: "u-1", Name: "Ana", Email: "ana@example.com"}}
	svc := newUserService(t, &fakeUserRepo{}, auth, session)

	if !svc.Login(context.Background(), "ana@example.com", "secret") {
		t.Fatalf("expected login to succeed")
	}
	if session.Token() != "jwt" {
		t.Fatalf("expected token stored, got %q", session.Token())
	}
	user := svc.User().Get()
	if user == nil || user.ID != "u-1" || user.Email != "ana@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	req := auth.argsOf("login")[0].(request_models.LoginRequest)
	if req.Identifier != "ana@example.com" || req.Password != "secret" {
		t.Fatalf("unexpected login request %+v", req)
	}
}

func TestLoginFailure(t *testing.T) {
	session := &fakeSession{}
	svc := newUserService(t, &fakeUserRepo{}, &fakeAuthRepo{err: errBoom}, session)

	if svc.Login(context.Background(), "ana@example.com", "wrong") {
		t.Fatalf("expected login to fail")
	}
	if svc.Err().Get() != "Login failed: Server error" {
		t.Fatalf("unexpected error %q", svc.Err().Get())
	}
	if svc.User().Get() != nil || session.Token() != "" {
		t.Fatalf("expected no user and no token")
	}
	if svc.Loading().Get() {
		t.Fatalf("expected loading reset")
	}
}

func TestFederatedLoginUsesProvider(t *testing.T) {
	session := &fakeSession{}
	auth := &fakeAuthRepo{auth: &response_models.AuthResponse{Token: "fb", UserID: "u-2"}}
	svc := newUserService(t, &fakeUserRepo{}, auth, session)

	if !svc.LoginWithFacebook(context.Background(), "id-token") {
		t.Fatalf("expected facebook login to succeed")
	}
	if auth.count(string(repositories.ProviderFacebook)) != 1 || auth.count(string(repositories.ProviderGoogle)) != 0 {
		t.Fatalf("expected one facebook call")
	}
	if req := auth.argsOf(string(repositories.ProviderFacebook))[0].(request_models.FederatedSignInRequest); req.IDToken != "id-token" {
		t.Fatalf("unexpected request %+v", req)
	}
	if session.Token() != "fb" {
		t.Fatalf("expected token stored")
	}
}

func TestLookupClearsUserOnFailure(t *testing.T) {
	users := &fakeUserRepo{user: &response_models.User{ID: "u-1", Phone: "+351"}}
	svc := newUserService(t, users, &fakeAuthRepo{}, &fakeSession{})

	if got := svc.FetchUserByPhone(context.Background(), "+351"); got == nil || got.ID != "u-1" {
		t.Fatalf("expected user by phone, got %+v", got)
	}

	users.user, users.err = nil, errBoom
	if got := svc.FetchUserByEmail(context.Background(), "x@example.com"); got != nil {
		t.Fatalf("expected nil on failure, got %+v", got)
	}
	if svc.User().Get() != nil {
		t.Fatalf("expected user cleared")
	}
}

func TestFetchUserSetsError(t *testing.T) {
	users := &fakeUserRepo{err: errBoom}
	svc := newUserService(t, users, &fakeAuthRepo{}, &fakeSession{})

	svc.FetchUser(context.Background(), "u-1")
	if svc.Err().Get() != "Server error" {
		t.Fatalf("unexpected error %q", svc.Err().Get())
	}
}

func TestLoadUserFromToken(t *testing.T) {
	users := &fakeUserRepo{user: &response_models.User{ID: "u-9", Name: "Rui"}}
	session := &fakeSession{}
	svc := newUserService(t, users, &fakeAuthRepo{}, session)

	svc.LoadUserFromToken(context.Background())
	if users.count("byID") != 0 || svc.User().Get() != nil {
		t.Fatalf("expected nothing loaded without a token")
	}

	session.token, session.userID = "jwt", "u-9"
	svc.LoadUserFromToken(context.Background())
	if users.argsOf("byID")[0] != "u-9" {
		t.Fatalf("expected lookup by the claimed user id")
	}
	if user := svc.User().Get(); user == nil || user.Name != "Rui" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestLogoutClearsCredential(t *testing.T) {
	session := &fakeSession{token: "jwt"}
	auth := &fakeAuthRepo{auth: &response_models.AuthResponse{Token: "jwt", UserID: "u-1"}}
	svc := newUserService(t, &fakeUserRepo{}, auth, session)
	svc.Login(context.Background(), "a", "b")

	svc.Logout(context.Background())

	if session.Token() != "" || session.cleared != 1 {
		t.Fatalf("expected stored credential cleared")
	}
	if svc.User().Get() != nil {
		t.Fatalf("expected user cleared")
	}
}

func TestCreateUserPublishes(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newUserService(t, users, &fakeAuthRepo{}, &fakeSession{})

	svc.CreateUser(context.Background(), request_models.UserRequest{Name: "Ana", Email: "ana@example.com"})
	if user := svc.User().Get(); user == nil || user.Name != "Ana" {
		t.Fatalf("unexpected user %+v", user)
	}
}
