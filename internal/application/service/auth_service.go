package service

import (
	"context"

	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/pkg/apperror"
	"github.com/wekesadev/sokopos-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles cashier authentication
type AuthService struct {
	cashierRepo repository.CashierRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cashierRepo repository.CashierRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{cashierRepo: cashierRepo, jwtManager: jwtManager}
}

// AuthTokens carries the issued token pair.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult is the login response payload.
type LoginResult struct {
	Cashier *entity.Cashier `json:"cashier"`
	Tokens  AuthTokens      `json:"tokens"`
}

// Login verifies the credentials and issues a token pair scoped to the
// cashier's branch.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	cashier, err := s.cashierRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cashier.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(cashier)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Cashier: cashier, Tokens: *tokens}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	cashier, err := s.cashierRepo.GetByID(ctx, claims.CashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(cashier)
}

func (s *AuthService) issueTokens(cashier *entity.Cashier) (*AuthTokens, error) {
	access, err := s.jwtManager.GenerateAccessToken(cashier.ID, cashier.BranchID, cashier.Email, cashier.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(cashier.ID, cashier.BranchID, cashier.Email, cashier.Role)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
