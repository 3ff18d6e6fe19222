// Package token issues and verifies the signed refresh/access pair handed
// out at login and embedded in user responses.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	// ClaimUserID carries the subject; handlers read it back from the
	// verified token.
	ClaimUserID    = "user_id"
	ClaimTokenType = "token_type"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

// Pair is one refresh token and one access token for the same user.
type Pair struct {
	Refresh string
	Access  string
}

// Issuer signs tokens with HS256.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// SigningKey is the key handed to the verifying middleware.
func (i *Issuer) SigningKey() []byte {
	return i.secret
}

// IssuePair mints a fresh pair. Every call carries a new jti, so two pairs
// minted within the same second still differ.
func (i *Issuer) IssuePair(userID int64) (Pair, error) {
	refresh, err := i.sign(userID, TypeRefresh, i.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	access, err := i.sign(userID, TypeAccess, i.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Refresh: refresh, Access: access}, nil
}

func (i *Issuer) sign(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		ClaimTokenType: tokenType,
		ClaimUserID:    userID,
		"iat":          now.Unix(),
		"exp":          now.Add(ttl).Unix(),
		"jti":          uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the claims.
func (i *Issuer) Parse(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID reads the user_id claim. JSON numbers decode as float64.
func UserID(claims jwt.MapClaims) (int64, bool) {
	switch v := claims[ClaimUserID].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// Type reports the token_type claim, or "" when absent.
func Type(claims jwt.MapClaims) string {
	s, _ := claims[ClaimTokenType].(string)
	return s
}
