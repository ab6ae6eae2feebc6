package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// TokenIssuer is the iss claim of every session token.
const TokenIssuer = "bashir.inc"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Claims identify the signed-in user. The role is not carried: it is read
// from the profile on every request so a role change applies at once.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager signs and checks HS256 session tokens.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	parser        *jwt.Parser
}

func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(TokenIssuer),
			jwt.WithIssuedAt(),
		),
	}
}

// Generate issues a token for identity valid for the manager's duration.
func (m *JWTManager) Generate(identity *models.Identity) (string, error) {
	issued := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   identity.ID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.tokenDuration)),
		},
	}).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the claims of a well-formed, unexpired token signed with
// this manager's key.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	if _, err := m.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" || claims.Subject != claims.UserID {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
