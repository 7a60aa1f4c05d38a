package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/gommon/log"
)

// URL where Google publishes its public signing keys
const jwksURL = "https://www.googleapis.com/oauth2/v3/certs"

// Identity is the subset of a verified ID-token payload the service needs.
type Identity struct {
	Email   string
	Name    string
	Subject string
}

type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// IDTokenVerifier validates Google-issued ID tokens against Google's JWKS
// and the configured OAuth client ID.
type IDTokenVerifier struct {
	jwks     keyfunc.Keyfunc
	clientID string
}

func NewIDTokenVerifier(clientID string) (*IDTokenVerifier, error) {
	jwks, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS from resource at %s: %w", jwksURL, err)
	}

	log.Infof("Google JWKS initialized. Keys loaded from %s", jwksURL)
	return &IDTokenVerifier{jwks: jwks, clientID: clientID}, nil
}

func (v *IDTokenVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := jwt.Parse(idToken, v.jwks.Keyfunc,
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims format")
	}

	// Google tokens carry either the bare or the https issuer
	iss, _ := claims.GetIssuer()
	if iss != "accounts.google.com" && iss != "https://accounts.google.com" {
		return nil, fmt.Errorf("unexpected issuer: %s", iss)
	}

	identity := &Identity{
		Email:   getValue(claims, "email"),
		Name:    getValue(claims, "name"),
		Subject: getValue(claims, "sub"),
	}
	if identity.Email == "" || identity.Subject == "" {
		return nil, errors.New("token payload is missing email or subject")
	}
	return identity, nil
}

func getValue(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}
