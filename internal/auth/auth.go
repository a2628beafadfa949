// Package auth replaces the app's old ambient "current user" context with
// an explicit value: callers load a State once and pass it into every
// backend operation. Persistence is a small file-backed store with explicit
// load-on-startup and clear-on-logout.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrNotLoggedIn = errors.New("not logged in")

// State identifies the authenticated user for the duration of a run.
type State struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

// LoggedIn reports whether the state carries a usable identity.
func (s State) LoggedIn() bool {
	return s.UID != "" && s.Token != ""
}

// Provider is the external sign-in/sign-up capability (the identity
// provider, out of scope for this module).
type Provider interface {
	SignIn(ctx context.Context, email, password string) (token string, err error)
	SignUp(ctx context.Context, email, password, firstName, lastName string) (token string, err error)
}

// Verifier exchanges an identity token for the backend uid and initializes
// new accounts.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (uid string, err error)
	SetupUser(ctx context.Context, uid, firstName, lastName string) error
}

// Login signs in with the provider and exchanges the token for a uid.
func Login(ctx context.Context, provider Provider, verifier Verifier, email, password string) (State, error) {
	token, err := provider.SignIn(ctx, email, password)
	if err != nil {
		return State{}, fmt.Errorf("sign in: %w", err)
	}
	uid, err := verifier.VerifyToken(ctx, token)
	if err != nil {
		return State{}, fmt.Errorf("verify token: %w", err)
	}
	return State{UID: uid, Token: token}, nil
}

// SignUp registers a new identity, exchanges its token and runs first-time
// account setup on the backend.
func SignUp(ctx context.Context, provider Provider, verifier Verifier, email, password, firstName, lastName string) (State, error) {
	token, err := provider.SignUp(ctx, email, password, firstName, lastName)
	if err != nil {
		return State{}, fmt.Errorf("sign up: %w", err)
	}
	uid, err := verifier.VerifyToken(ctx, token)
	if err != nil {
		return State{}, fmt.Errorf("verify token: %w", err)
	}
	if err := verifier.SetupUser(ctx, uid, firstName, lastName); err != nil {
		return State{}, fmt.Errorf("setup user: %w", err)
	}
	return State{UID: uid, Token: token}, nil
}

// TokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job, this only decides whether a
// saved session is worth presenting at all. Unparseable tokens count as
// expired.
func TokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
