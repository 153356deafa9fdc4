package service

import (
	"context"

	"github.com/mkosarev/keepsake/internal/config"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/utils"
	"github.com/mkosarev/keepsake/models"
)

// authService is the concrete implementation of AuthService. The vault has
// no accounts of its own; tokens come from the external identity provider
// and are only verified here.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	// Must match the key the identity provider signs with.
	tokenSignKey string

	// tokenIssuer is the "iss" claim expected on every inbound token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// verification parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
