// Package jwtauth implementa auth.AuthVerifier y auth.TokenIssuer con
// HS256 local. Reemplaza la necesidad de un verificador externo: el portal
// emite y verifica sus propios tokens.
package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-portal/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadToken  = errors.New("invalid token")
	ErrNoSecret  = errors.New("jwt secret not configured")
	ErrNoSubject = errors.New("token missing user id")
)

const defaultTTL = 24 * time.Hour

type claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Provider emite y verifica tokens con un secreto compartido.
type Provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (*Provider, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Provider{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (p *Provider) Issue(userID, email, role string) (string, error) {
	now := p.now()
	c := claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(p.secret)
}

func (p *Provider) Verify(ctx context.Context, raw string) (auth.Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (any, error) {
		// bloquea alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		return auth.Claims{}, err
	}

	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return auth.Claims{}, ErrBadToken
	}
	if strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, ErrNoSubject
	}

	role := c.Role
	if role == "" {
		role = auth.RoleUser
	}

	return auth.Claims{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   role,
	}, nil
}
