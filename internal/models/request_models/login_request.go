package request_models

// LoginRequest identifier is an email or a phone number.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// FederatedSignInRequest carries an identity token issued by Google or
// Facebook sign-in.
type FederatedSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserRequest sends the raw password in passwordHash; the backend hashes it.
type UserRequest struct {
	Name         string  `json:"name"`
	Nickname     *string `json:"nickname"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"passwordHash"`
	Phone        string  `json:"phone"`
}
