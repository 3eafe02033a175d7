package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"demandcast/internal/auth"
)

const (
	ContextKeySessionID = "session_id"
	ContextKeyClaims    = "session_claims"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": message},
	})
}

// SessionAuth validates the Bearer session token handed out on upload. When
// required is false, requests without a token pass through; a presented token
// is still validated so a bad one never degrades to anonymous access.
func SessionAuth(sessions *auth.Sessions, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abortUnauthorized(c, "Falta el encabezado de autorización")
				return
			}
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Encabezado de autorización inválido")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := sessions.Validate(token)
		if err != nil {
			abortUnauthorized(c, "Token de sesión inválido o expirado")
			return
		}

		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// SessionAllowed reports whether the request may act on the given session.
// Requests without claims (token auth disabled) may act on any session; a
// presented token is scoped to the session it was issued for.
func SessionAllowed(c *gin.Context, sessionID uuid.UUID) bool {
	v, ok := c.Get(ContextKeyClaims)
	if !ok {
		return true
	}
	claims, ok := v.(*auth.SessionClaims)
	if !ok {
		return false
	}
	return claims.SessionID == sessionID
}

// AdminKey guards admin endpoints with the X-API-Key header, checked against
// the configured bcrypt hash. An empty hash rejects every key.
func AdminKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.VerifyAdminKey(hash, c.GetHeader("X-API-Key")); err != nil {
			abortUnauthorized(c, "Clave de API inválida")
			return
		}
		c.Next()
	}
}
