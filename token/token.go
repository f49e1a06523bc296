package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is shared by both tokens of a pair. SessionID and SessionExpiresAt
// are the same in the access and the refresh token, so revoking the session
// ends both.
type Claims struct {
	UserID           uuid.UUID        `json:"uid"`
	Role             string           `json:"role"`
	Kind             string           `json:"kind"`
	SessionID        string           `json:"sid"`
	SessionExpiresAt *jwt.NumericDate `json:"sexp,omitempty"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	AccessID     string
	SessionID    string
}

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

func (i *Issuer) Issue(userID uuid.UUID, role string) (*Pair, error) {
	now := i.now()
	accessID := uuid.NewString()
	sessionID := uuid.NewString()
	sessionExpiresAt := jwt.NewNumericDate(now.Add(i.refreshTTL))

	access, err := i.sign(Claims{
		UserID: userID,
		Role:   role,
		Kind:   KindAccess,

		SessionID:        sessionID,
		SessionExpiresAt: sessionExpiresAt,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        accessID,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	if err != nil {
		return nil, err
	}

	refresh, err := i.sign(Claims{
		UserID: userID,
		Role:   role,
		Kind:   KindRefresh,

		SessionID:        sessionID,
		SessionExpiresAt: sessionExpiresAt,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: sessionExpiresAt,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    now.Add(i.accessTTL),
		AccessID:     accessID,
		SessionID:    sessionID,
	}, nil
}

func (i *Issuer) sign(claims Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.Kind, err)
	}
	return signed, nil
}

// Parse validates the signature, expiry and kind of a token.
func (i *Issuer) Parse(tokenStr, kind string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
