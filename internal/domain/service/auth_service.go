package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes token audiences during resolution.
type TokenType string

// TokenTypeApplication marks tokens issued to message-sending applications.
const TokenTypeApplication TokenType = "application"

// TokenInfo is the resolved identity behind a presented token.
type TokenInfo struct {
	TokenID       string
	Type          TokenType
	ApplicationID uuid.UUID
	ExpiresAt     time.Time
}

// AuthenticationService resolves presented tokens. Consumed by the ingestion
// boundary only; the reaction engine never sees tokens.
type AuthenticationService interface {
	// GetTokenInfo resolves a token of the given type. Failure means the
	// caller cannot be authenticated.
	GetTokenInfo(ctx context.Context, tokenID string, tokenType TokenType) (*TokenInfo, error)
}
