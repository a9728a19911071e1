package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ev-storefront/internal/domain"
	"ev-storefront/pkg/logger"
)

const (
	headerRequestID = "X-Request-Id"
	bearerKey       = "bearer_token"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithContext(c.Request.Context()).Info("http_request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int("bytes", c.Writer.Size()),
			logger.Any("latency", time.Since(start)),
		)
	}
}

// RequireBearer rejects requests without a bearer token before the body is
// read. Verifying the token is left to the order service.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := parseBearer(c.GetHeader("Authorization"))
		if token == "" {
			status, body := errorStatus(domain.ErrUnauthenticated)
			c.AbortWithStatusJSON(status, body)
			return
		}
		c.Set(bearerKey, token)
		c.Next()
	}
}

// parseBearer strips the Bearer scheme word, so "Bearer" with nothing after it
// yields an empty token. A header without the scheme is taken as the token.
func parseBearer(header string) string {
	raw := strings.TrimSpace(header)
	scheme, rest, _ := strings.Cut(raw, " ")
	if strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return raw
}

func bearerToken(c *gin.Context) string {
	return c.GetString(bearerKey)
}
