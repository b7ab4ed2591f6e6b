package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/BMarcano/dispatcher/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

var (
	ErrInvalid = errors.New("token invalid")
	ErrExpired = errors.New("token expired")
)

type Claims struct {
	UserID   string      `json:"user_id"`
	Email    string      `json:"email,omitempty"`
	Role     domain.Role `json:"role"`
	WorkerID string      `json:"worker_id,omitempty"`
	Type     string      `json:"typ"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens with one shared secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

func (i *Issuer) Sign(c Claims, ttl time.Duration) (string, error) {
	now := i.now()
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	c.Subject = c.UserID

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and checks the token type.
func (i *Issuer) Parse(raw, wantType string) (*Claims, error) {
	var c Claims
	t, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !t.Valid || c.UserID == "" || c.Type != wantType {
		return nil, ErrInvalid
	}
	return &c, nil
}
