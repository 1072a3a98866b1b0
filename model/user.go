package model

// UserStatus mirrors the identity provider's account status values.
type UserStatus string

const (
	UserStatusConfirmed   UserStatus = "CONFIRMED"
	UserStatusUnconfirmed UserStatus = "UNCONFIRMED"
)

// SignUpRequest for user registration
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required,password_policy"`
}

type SignUpResponse struct {
	Message string `json:"message"`
}

// SignInRequest carries the same credentials; the email doubles as username.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required,password_policy"`
}

type SignInResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthTokens is the token set returned by a successful authentication.
type AuthTokens struct {
	AccessToken string
	IDToken     string
	ExpiresIn   int32
}

// Identity is the caller resolved from a bearer token.
type Identity struct {
	Username string
	Email    string
}
