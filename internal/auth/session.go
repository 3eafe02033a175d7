package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"demandcast/internal/config"
	"demandcast/internal/domain"
)

// SessionClaims ties a token to one upload session (the dataset ID).
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"session_id"`
}

// Sessions issues and validates the per-dataset session tokens handed out on
// upload. Engine-style: immutable after construction, safe for concurrent use.
type Sessions struct {
	cfg config.AuthConfig
}

// NewSessions creates a session token issuer from auth configuration.
func NewSessions(cfg config.AuthConfig) *Sessions {
	return &Sessions{cfg: cfg}
}

// Issue signs a token for the given session and returns it with its expiry.
func (s *Sessions) Issue(sessionID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(s.cfg.SessionExpiry)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{"session"},
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, expiry, nil
}

// Validate parses and verifies a session token string.
func (s *Sessions) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	aud, _ := claims.GetAudience()
	for _, a := range aud {
		if a == "session" {
			return claims, nil
		}
	}
	return nil, domain.ErrInvalidToken
}

// VerifyAdminKey checks a presented API key against the configured bcrypt
// hash. An empty hash disables the admin surface entirely.
func VerifyAdminKey(hash, key string) error {
	if hash == "" || key == "" {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// HashAdminKey produces a bcrypt hash suitable for the auth.admin_key_hash
// config value.
func HashAdminKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing admin key: %w", err)
	}
	return string(hashed), nil
}
