package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"techfest/internal/domain"
)

// JWTProvider implements domain.TokenIssuer and domain.TokenVerifier with
// HS256-signed JWTs. The admin session lives entirely in the token expiry;
// there is no server-side session state.
type JWTProvider struct {
	secret []byte
}

var (
	_ domain.TokenIssuer   = (*JWTProvider)(nil)
	_ domain.TokenVerifier = (*JWTProvider)(nil)
)

// NewJWTProvider returns a provider signing with the given secret.
func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

func (p *JWTProvider) Issue(username string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (p *JWTProvider) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
