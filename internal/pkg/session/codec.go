package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried inside the user_session cookie.
type Claims struct {
	Email          string `json:"email"`
	OrganizationId string `json:"organization_id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session cookies. The session is stateless: expiry
// lives inside the signature, invalidation is cookie deletion.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec fails when the secret is empty. That is a fatal startup condition,
// not a runtime error.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) Issue(email, organizationId string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:          email,
		OrganizationId: organizationId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify returns (nil, false) for tampered, malformed or expired tokens.
// Callers must treat false as "no session"; the reason is never surfaced.
func (c *Codec) Verify(tokenStr string) (*Claims, bool) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.Email == "" || claims.OrganizationId == "" {
		return nil, false
	}
	return &claims, true
}
