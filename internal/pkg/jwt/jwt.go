package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lernora/conversation-service/internal/model"
)

type Generator struct {
	secret   string
	tokenTTL time.Duration
}

func New(secret string, tokenTTL time.Duration) *Generator {
	return &Generator{
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// GenerateConnectToken issues the Centrifugo connection token for a
// participant. The subject is the platform uuid; the role travels as a
// custom claim so the connect proxy can rebuild the participant.
func (g *Generator) GenerateConnectToken(userID string, role model.Role) (string, int64, error) {
	expiresAt := time.Now().Add(g.tokenTTL)

	claims := model.CentrifugoConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(g.secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect token: %w", err)
	}

	return signed, expiresAt.Unix(), nil
}

func (g *Generator) GenerateSubscribeToken(userID string, role model.Role, channel string) (string, int64, error) {
	expiresAt := time.Now().Add(g.tokenTTL)

	claims := model.CentrifugoSubscribeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Channel: channel,
		UserID:  userID,
		Role:    role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(g.secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign subscribe token: %w", err)
	}

	return signed, expiresAt.Unix(), nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error) {
	claims := &model.CentrifugoConnectClaims{}
	if err := g.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (g *Generator) ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error) {
	claims := &model.CentrifugoSubscribeClaims{}
	if err := g.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (g *Generator) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(g.secret), nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("token is invalid")
	}
	return nil
}
