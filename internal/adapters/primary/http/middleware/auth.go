package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"release-management-service/internal/core/domain"
)

const (
	ContextSession  = "session"
	ContextUsername = "username"
)

// SessionResolver looks up a live dashboard session.
type SessionResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

// Auth requires a bearer session id and attaches the session's backend token
// to the request context.
func Auth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, domain.ErrMissingToken)
			return
		}

		id, err := uuid.Parse(token)
		if err != nil {
			abortUnauthorized(c, domain.ErrSessionNotFound)
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), id)
		switch {
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			abortUnauthorized(c, err)
			return
		case err != nil:
			log.WithError(err).Error("resolve session failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ContextSession, session)
		c.Set(ContextUsername, session.Username)
		c.Request = c.Request.WithContext(domain.WithAccessToken(c.Request.Context(), session.AccessToken))
		c.Next()
	}
}

// ForwardToken passes the caller's bearer token to the backend unchanged.
func ForwardToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			c.Request = c.Request.WithContext(domain.WithAccessToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

// SessionFrom returns the session set by Auth, if any.
func SessionFrom(c *gin.Context) (*domain.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*domain.Session)
	return s, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortUnauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
