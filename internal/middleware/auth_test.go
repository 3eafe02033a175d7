package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast/internal/auth"
	"demandcast/internal/config"
	"demandcast/internal/middleware"
)

func testSessions() *auth.Sessions {
	return auth.NewSessions(config.AuthConfig{
		Secret:        "test-secret",
		SessionExpiry: time.Hour,
		Issuer:        "demandcast-test",
	})
}

func TestSessionAuth_ValidToken(t *testing.T) {
	sessions := testSessions()
	sessionID := uuid.New()
	token, _, err := sessions.Issue(sessionID)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.SessionAuth(sessions, true))
	r.GET("/test", func(c *gin.Context) {
		got, exists := c.Get(middleware.ContextKeySessionID)
		require.True(t, exists)
		assert.Equal(t, sessionID, got)
		assert.True(t, middleware.SessionAllowed(c, sessionID))
		assert.False(t, middleware.SessionAllowed(c, uuid.New()))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuth_MissingHeaderOptional(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SessionAuth(testSessions(), false))
	r.GET("/test", func(c *gin.Context) {
		// Without claims every session is reachable.
		assert.True(t, middleware.SessionAllowed(c, uuid.New()))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuth_MissingHeaderRequired(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SessionAuth(testSessions(), true))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_MalformedBearer(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SessionAuth(testSessions(), false))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Basic some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_InvalidTokenRejectedEvenWhenOptional(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SessionAuth(testSessions(), false))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKey_Valid(t *testing.T) {
	hash, err := auth.HashAdminKey("super-secret-key")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", middleware.AdminKey(hash), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", http.NoBody)
	req.Header.Set("X-API-Key", "super-secret-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_WrongKey(t *testing.T) {
	hash, err := auth.HashAdminKey("super-secret-key")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", middleware.AdminKey(hash), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", http.NoBody)
	req.Header.Set("X-API-Key", "wrong-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKey_EmptyHashRejectsAll(t *testing.T) {
	r := gin.New()
	r.GET("/admin", middleware.AdminKey(""), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", http.NoBody)
	req.Header.Set("X-API-Key", "anything")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
