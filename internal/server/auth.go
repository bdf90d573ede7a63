package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jwalitptl/clinic-console/pkg/errors"
	"github.com/jwalitptl/clinic-console/pkg/httputil"
)

// tokenTTL is generous; this server only ever backs local development.
const tokenTTL = 24 * time.Hour

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// issueToken hands out a dev bearer token for the given username.
func issueToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondWithError(c, errors.BadRequest("username is required", err))
			return
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   req.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			httputil.RespondWithError(c, errors.Internal(err))
			return
		}

		httputil.RespondWithData(c, http.StatusOK, tokenResponse{
			Token:     token,
			ExpiresAt: claims.ExpiresAt.Unix(),
		})
	}
}

// authRequired validates the bearer token on every collection route.
func authRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, fmt.Errorf("missing bearer token"))
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, err)
			return
		}

		if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok {
			c.Set("username", claims.Subject)
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	httputil.RespondWithError(c, errors.Unauthorized(err))
	c.Abort()
}
