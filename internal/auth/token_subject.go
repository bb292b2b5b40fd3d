package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenUserIDKey is the context key holding the subject of a valid token.
const TokenUserIDKey = "tokenUserID"

// TokenParser extracts the user ID from a signed token.
type TokenParser interface {
	ParseToken(token string) (uint, error)
}

// TokenFromRequest returns the token sent in X-Auth-Token, or as a Bearer Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader("X-Auth-Token")); token != "" {
		return token
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// TokenSubjectMiddleware records the user ID of a valid token for request logging.
// It never rejects a request: identifiers in request bodies are trusted as sent.
func TokenSubjectMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := TokenFromRequest(c); token != "" {
			if userID, err := parser.ParseToken(token); err == nil {
				c.Set(TokenUserIDKey, userID)
			}
		}
		c.Next()
	}
}
