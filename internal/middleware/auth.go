package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	ContextPrincipal = "principal"
	ContextClaims    = "claims"
)

// TokenParser validates a raw bearer token.
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token.
// A nil revoker skips the denylist lookup.
func AuthMiddleware(tokens TokenParser, revoker auth.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "authentication required")
			c.Abort()
			return
		}
		if !authenticate(c, header, tokens, revoker) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through but still rejects a token
// that is present and invalid.
func OptionalAuth(tokens TokenParser, revoker auth.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(ContextPrincipal, identity.Anonymous())
			c.Next()
			return
		}
		if !authenticate(c, header, tokens, revoker) {
			c.Abort()
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, header string, tokens TokenParser, revoker auth.Revoker) bool {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		httperr.Unauthorized(c, "invalid_authorization_header", "expected a bearer token")
		return false
	}

	claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		httperr.Unauthorized(c, "invalid_token", "token is invalid or expired")
		return false
	}

	principal, err := claims.Principal()
	if err != nil {
		httperr.Unauthorized(c, "invalid_token_payload", "token is invalid or expired")
		return false
	}

	if revoker != nil {
		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Msg("token denylist lookup failed")
			httperr.Internal(c, "internal_error", "internal server error")
			return false
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "token has been revoked")
			return false
		}
	}

	c.Set(ContextClaims, claims)
	c.Set(ContextPrincipal, principal)
	return true
}

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// ActiveUser reloads the caller's account on every request. Deleted or
// inactive accounts are rejected and the stored role replaces the one in
// the token. Anonymous callers pass through. Must run after AuthMiddleware
// or OptionalAuth.
func ActiveUser(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if !p.IsAuthenticated() {
			c.Next()
			return
		}

		u, err := users.GetUser(c.Request.Context(), p.UserID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && !u.IsActive) {
			httperr.Unauthorized(c, "user_inactive", "user is inactive or deleted")
			c.Abort()
			return
		}
		if err != nil {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Msg("user lookup failed")
			httperr.Internal(c, "internal_error", "internal server error")
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, identity.Principal{UserID: u.ID, Role: u.UserType})
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		for _, r := range roles {
			if p.Is(r) {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "insufficient_role", "you do not have permission to perform this action")
		c.Abort()
	}
}

// PrincipalFrom returns the caller, or an anonymous principal.
func PrincipalFrom(c *gin.Context) identity.Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(identity.Principal); ok {
			return p
		}
	}
	return identity.Anonymous()
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
