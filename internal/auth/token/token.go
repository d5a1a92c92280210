package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authdomain "crockpot-backend/internal/auth/domain"
)

// ErrSecretNotConfigured is returned from issuance when the signing
// secret for the requested token class is unset. This is a
// configuration defect, not a request-time condition.
var ErrSecretNotConfigured = errors.New("jwt signing secret is not configured")

// ErrInvalidToken covers every verification failure: malformed input,
// bad signature, wrong token class, expired token, or an unset secret.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by both token classes.
type Claims struct {
	UserID string `json:"_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies access and refresh tokens. The two classes
// are signed with independent secrets; there is no token-type claim,
// so secret separation is the only thing that stops a refresh token
// from being replayed as an access token (and vice versa).
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (c *Codec) IssueAccessToken(user *authdomain.User) (string, error) {
	return c.issue(user, c.accessSecret, c.accessTTL)
}

func (c *Codec) IssueRefreshToken(user *authdomain.User) (string, error) {
	return c.issue(user, c.refreshSecret, c.refreshTTL)
}

func (c *Codec) VerifyAccessToken(tokenString string) (*Claims, error) {
	return c.verify(tokenString, c.accessSecret)
}

func (c *Codec) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return c.verify(tokenString, c.refreshSecret)
}

func (c *Codec) issue(user *authdomain.User, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrSecretNotConfigured
	}

	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (c *Codec) verify(tokenString string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
