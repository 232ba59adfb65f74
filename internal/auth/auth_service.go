package auth

import (
	"context"
	"time"

	autherrors "go-ems/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type service struct {
	repo   Repository
	token  TokenConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, token TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if token.TTL <= 0 {
		token.TTL = 24 * time.Hour
	}
	return &service{repo: repo, token: token, now: time.Now, logger: l}
}

// Login checks the credential pair and issues a session token. Unknown email
// and wrong password produce the same error.
func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Info("login rejected", zap.String("email", email), zap.String("reason", "unknown email"))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("email", email), zap.String("reason", "password mismatch"))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.token.TTL)
	token, err := s.generateToken(admin.Email, RoleAdmin, expiresAt)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("email", admin.Email))
	return LoginResponse{
		User:        mapToResponse(*admin),
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	admin, err := s.repo.GetByEmail(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := mapToResponse(*admin)
	return &resp, nil
}

func (s *service) generateToken(subject, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  s.now().Unix(),
		"exp":  expiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.token.Secret))
}

func mapToResponse(a Admin) AuthResponse {
	return AuthResponse{
		Email: a.Email,
		Name:  a.Name,
		Role:  RoleAdmin,
	}
}
