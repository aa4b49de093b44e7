package auth

import (
	"errors"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingEmail = errors.New("payload must carry an email")
)

// Claims is the decoded token payload: whatever the caller signed plus iat/exp.
type Claims map[string]any

func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs payload with the process secret. Any iat/exp supplied by the
// caller is replaced by the issuer's own pair.
func (m *Manager) Issue(payload map[string]any) (string, error) {
	email, _ := payload["email"].(string)
	if email == "" {
		return "", ErrMissingEmail
	}

	now := m.now().UTC()

	claims := make(jwt.MapClaims, len(payload)+2)
	maps.Copy(claims, payload)
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(m.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Verify(tokenStr string) (Claims, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Enforce HS256
		_, ok := t.Method.(*jwt.SigningMethodHMAC)

		if !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return Claims(claims), nil
}
