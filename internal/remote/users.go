package remote

import (
	"context"
	"net/http"

	"github.com/cineseat/booking-gateway/internal/model"
)

// AuthToken is the credential envelope returned by the upstream auth
// endpoints.  The gateway never stores it; the browser keeps it and
// sends it back on every request.
type AuthToken struct {
	AccessToken string `json:"accessToken"`
}

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// LoginRequest carries the fields of the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account upstream and returns its access token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthToken, error) {
	var tok AuthToken
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", req, &tok)
	return tok, err
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthToken, error) {
	var tok AuthToken
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", req, &tok)
	return tok, err
}

// CurrentUser fetches the profile of the token's owner.
func (c *Client) CurrentUser(ctx context.Context, token string) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodGet, "/users/me", nil, token, nil, &u)
	return u, err
}

// ProfileUpdate carries the editable profile fields.  Pointer fields
// distinguish "leave unchanged" from an explicit zero value.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

// UpdateCurrentUser updates the profile of the token's owner.
func (c *Client) UpdateCurrentUser(ctx context.Context, token string, upd ProfileUpdate) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodPut, "/users/me", nil, token, upd, &u)
	return u, err
}
