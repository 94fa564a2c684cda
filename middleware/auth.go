package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lly61/TaskFlow/utils"
)

// Context keys populated by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "uid"
	ContextEmail  = "email"
	ContextName   = "name"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "token"

// AuthMiddleware gates every protected route. It reads the session cookie,
// verifies the token and stores the identity claims in the request context.
func AuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := issuer.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}
