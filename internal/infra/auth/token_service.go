// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"herald/config"
	"herald/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtTokenService resolves application tokens issued as signed JWTs. The
// subject claim carries the application ID, so resolution needs no storage
// round trip.
type jwtTokenService struct {
	secret string
	issuer string
}

// NewTokenService is the constructor for jwtTokenService.
func NewTokenService(cfg *config.Config) (service.AuthenticationService, error) {
	if cfg.Auth.TokenSecret == "" {
		return nil, errors.New("auth token secret must be provided")
	}

	return &jwtTokenService{
		secret: cfg.Auth.TokenSecret,
		issuer: cfg.Auth.Issuer,
	}, nil
}

// GetTokenInfo validates the token signature and expiry and resolves the
// application behind it.
func (s *jwtTokenService) GetTokenInfo(_ context.Context, tokenID string, tokenType service.TokenType) (*service.TokenInfo, error) {
	if tokenType != service.TokenTypeApplication {
		return nil, errors.Errorf("unsupported token type %q", tokenType)
	}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenID, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, options...)
	if err != nil {
		return nil, errors.Wrap(err, "parse application token")
	}
	if !token.Valid {
		return nil, errors.New("application token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("application token carries no claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "read token subject")
	}
	appID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not an application id")
	}

	info := &service.TokenInfo{
		TokenID:       tokenID,
		Type:          service.TokenTypeApplication,
		ApplicationID: appID,
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}

// IssueApplicationToken signs a token for an application. Used by
// provisioning tooling and tests.
func IssueApplicationToken(secret, issuer string, appID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": appID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	if issuer != "" {
		claims["iss"] = issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign application token")
	}

	return signed, nil
}
