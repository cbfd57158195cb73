package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
)

// Maker issues and validates PASETO v2 local tokens for the admin
// identity. The symmetric key must be 32 bytes after base64 decoding.
type Maker struct {
	instance *paseto.V2
	key      []byte
	ttl      time.Duration
}

func NewMaker(secretBase64 string, ttl time.Duration) (*Maker, error) {
	key, err := decodeKey(secretBase64)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("paseto secret must be exactly 32 bytes after base64 decoding, got %d", len(key))
	}
	return &Maker{instance: paseto.NewV2(), key: key, ttl: ttl}, nil
}

func decodeKey(secret string) ([]byte, error) {
	if key, err := base64.URLEncoding.DecodeString(secret); err == nil {
		return key, nil
	}
	if key, err := base64.RawURLEncoding.DecodeString(secret); err == nil {
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("paseto secret is not valid base64: %w", err)
	}
	return key, nil
}

func (m *Maker) GenerateToken(claims *models.Claims) (string, error) {
	now := time.Now()
	token := paseto.JSONToken{
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: now.Add(m.ttl),
	}
	token.Set("email", claims.Email)
	token.Set("role", claims.Role)

	return m.instance.Encrypt(m.key, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.instance.Decrypt(tokenString, m.key, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	return &models.Claims{
		Email: token.Get("email"),
		Role:  token.Get("role"),
	}, nil
}
