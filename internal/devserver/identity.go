package devserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")
)

// jwtClaims defines the structure of the dev identity token payload.
type jwtClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// identity issues and verifies the dev server's bearer tokens, standing in
// for the external identity provider.
type identity struct {
	store      *Store
	secret     string
	expiration time.Duration
}

func newIdentity(store *Store, secret string, expiration time.Duration) *identity {
	if secret == "" {
		panic("JWT secret cannot be empty")
	}
	if expiration <= 0 {
		expiration = time.Hour
	}
	return &identity{store: store, secret: secret, expiration: expiration}
}

// SignUp registers a new user and returns their uid and a fresh token.
func (id *identity) SignUp(email, password, firstName, lastName string) (string, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}
	u, err := id.store.CreateUser(email, hash, firstName, lastName)
	if err != nil {
		return "", "", err
	}
	token, err := id.issueToken(u.UID)
	if err != nil {
		return "", "", err
	}
	return u.UID, token, nil
}

// SignIn authenticates an existing user and returns their uid and a token.
func (id *identity) SignIn(email, password string) (string, string, error) {
	u, err := id.store.UserByEmail(email)
	if err != nil {
		return "", "", ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return "", "", ErrAuthenticationFailed
	}
	token, err := id.issueToken(u.UID)
	if err != nil {
		return "", "", err
	}
	return u.UID, token, nil
}

func (id *identity) issueToken(uid string) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(now.Add(id.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "vitalmotion-devserver",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(id.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the uid it carries.
func (id *identity) Verify(tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(id.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UID == "" {
		return "", ErrInvalidToken
	}
	if _, err := id.store.UserByUID(claims.UID); err != nil {
		return "", ErrInvalidToken
	}
	return claims.UID, nil
}
