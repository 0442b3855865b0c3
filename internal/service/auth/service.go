package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/backoffice-go/internal/domain/auth"
	"github.com/peoplecore/backoffice-go/internal/domain/user"
	"github.com/peoplecore/backoffice-go/internal/pkg/jwt"
	"github.com/peoplecore/backoffice-go/internal/repository/postgresql"
)

type AuthService struct {
	userRepo   user.UserRepository
	jwtRepo    postgresql.JWTRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtRepo postgresql.JWTRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtRepo:    jwtRepo,
		jwtService: jwtService,
	}
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, u)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued, so each refresh token is single-use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	revoked, err := s.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if revoked {
		return auth.TokenPair{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenPair{}, auth.ErrUserNotFound
		}
		return auth.TokenPair{}, err
	}

	if err := s.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenPair{}, err
	}
	return s.issueTokenPair(ctx, u)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	return s.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}

func (s *AuthService) issueTokenPair(ctx context.Context, u user.User) (auth.TokenPair, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if err := s.jwtRepo.CreateRefreshToken(ctx, u.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.TokenPair{}, err
	}

	return auth.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
