package auth

import (
	"errors"
	"fmt"
	"time"

	"booksmart/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims represents the claims in the session JWT
type TokenClaims struct {
	ParticipantID uint   `json:"participant_id"`
	Email         string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and validates signed session tokens
type Manager struct {
	secret    []byte
	expiresIn time.Duration
	issuer    string
}

func NewManager(cfg config.JWTConfig) *Manager {
	return &Manager{
		secret:    []byte(cfg.Secret),
		expiresIn: cfg.ExpiresIn,
		issuer:    cfg.Issuer,
	}
}

// Generate creates a new JWT session token bound to a participant
func (m *Manager) Generate(participantID uint, email string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		ParticipantID: participantID,
		Email:         email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", participantID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

// Validate parses and validates a session token
func (m *Manager) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
