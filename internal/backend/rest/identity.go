package rest

import (
	"context"
	"net/http"

	"vitalmotion/client/internal/backend"
)

// Identity endpoints. Sign-in/sign-up talk to the identity host (the dev
// server in local setups); token verification and account setup talk to the
// backend itself.

type credentialsRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

type verifyTokenResponse struct {
	UID string `json:"uid"`
}

type setupUserRequest struct {
	UID       string `json:"uid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignIn authenticates against the identity provider and returns a bearer
// token to exchange with VerifyToken.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.doJSON(ctx, http.MethodPost, c.identityURL+"/identity/signin",
		credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// SignUp registers a new identity and returns its bearer token.
func (c *Client) SignUp(ctx context.Context, email, password, firstName, lastName string) (string, error) {
	var resp tokenResponse
	err := c.doJSON(ctx, http.MethodPost, c.identityURL+"/identity/signup",
		credentialsRequest{Email: email, Password: password, FirstName: firstName, LastName: lastName}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// VerifyToken exchanges an identity token for the backend uid.
func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	var resp verifyTokenResponse
	err := c.doJSON(ctx, http.MethodPost, c.url("/verify-token"), verifyTokenRequest{Token: token}, &resp)
	if err != nil {
		return "", err
	}
	return resp.UID, nil
}

// SetupUser initializes a freshly signed-up account (the backend copies the
// premade exercise and workout catalogs into it).
func (c *Client) SetupUser(ctx context.Context, uid, firstName, lastName string) error {
	return c.doJSON(ctx, http.MethodPost, c.url("/setup-user"),
		setupUserRequest{UID: uid, FirstName: firstName, LastName: lastName}, nil)
}

var _ backend.IdentityAPI = (*Client)(nil)
