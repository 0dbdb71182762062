package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/pixgate/internal/common"
)

// TokenCodec mints an identity token from a verified email and recovers the
// claimed email from a presented token.
type TokenCodec interface {
	Mint(email string) (string, error)
	Resolve(token string) (string, error)
}

// PlainCodec is the original token scheme: the token is literally the email,
// with no signature and no expiry. Anyone who knows an email can forge a
// token for it; the scheme exists for behavioral parity with the original
// prototype and SignedCodec is the production alternative.
type PlainCodec struct{}

func NewPlainCodec() *PlainCodec {
	return &PlainCodec{}
}

func (c *PlainCodec) Mint(email string) (string, error) {
	return email, nil
}

// Resolve applies only a presence check: the scheme has no structure to
// validate beyond non-emptiness.
func (c *PlainCodec) Resolve(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", common.ErrInvalidToken
	}
	return token, nil
}

// Claims carries the registered claims plus the identity email.
type Claims struct {
	jwt.RegisteredClaims
	Email string
}

// SignedCodec mints HS256 JWTs over the identity email with an expiry.
type SignedCodec struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewSignedCodec(secretKey []byte, validityDuration time.Duration) *SignedCodec {
	return &SignedCodec{secretKey: secretKey, validityDuration: validityDuration}
}

func (c *SignedCodec) Mint(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (c *SignedCodec) Resolve(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}
