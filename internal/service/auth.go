package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pizza-platform/internal/config"
	"pizza-platform/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
}

type authService struct {
	logger *slog.Logger
	repo   UserRepo
	cfg    config.JWT
}

func NewAuthService(logger *slog.Logger, repo UserRepo, cfg config.JWT) *authService {
	return &authService{
		logger: logger.With(slog.String("service", "auth")),
		repo:   repo,
		cfg:    cfg,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a signed token. A missing user and
// a wrong password both surface as ErrInvalidCredentials so the response
// does not leak which one it was.
func (s *authService) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		return "", entities.User{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", entities.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, entities.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.TTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", entities.User{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, user, nil
}

func (s *authService) Profile(ctx context.Context, id string) (entities.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
