package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
)

// Claims represents the JWT claims for a cashier session
type Claims struct {
	CashierID uuid.UUID `json:"cashier_id"`
	BranchID  uuid.UUID `json:"branch_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenType string    `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// JWTManager handles JWT token generation and validation
type JWTManager struct {
	secret        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:        secret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// GenerateAccessToken creates a new access token for a cashier
func (m *JWTManager) GenerateAccessToken(cashierID, branchID uuid.UUID, email, role string) (string, error) {
	return m.generate(cashierID, branchID, email, role, "access", m.accessExpiry)
}

// GenerateRefreshToken creates a new refresh token for a cashier
func (m *JWTManager) GenerateRefreshToken(cashierID, branchID uuid.UUID, email, role string) (string, error) {
	return m.generate(cashierID, branchID, email, role, "refresh", m.refreshExpiry)
}

func (m *JWTManager) generate(cashierID, branchID uuid.UUID, email, role, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		CashierID: cashierID,
		BranchID:  branchID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cashierID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateAccessToken validates an access token and returns its claims
func (m *JWTManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, "access")
}

// ValidateRefreshToken validates a refresh token and returns its claims
func (m *JWTManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, "refresh")
}

func (m *JWTManager) validate(tokenString, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.ErrInvalidToken
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}
