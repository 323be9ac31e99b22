package service_test

import (
	"context"
	"testing"
	"time"

	"pizza-platform/internal/config"
	"pizza-platform/internal/entities"
	"pizza-platform/internal/service"
	mocks "pizza-platform/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWT = config.JWT{Secret: "test-secret", TTL: time.Hour}

func TestAuthService_Register(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)

		var saved entities.User
		repo.EXPECT().CreateUser(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, user entities.User) error {
				saved = user
				return nil
			}).Once()

		svc := service.NewAuthService(newTestLogger(), repo, testJWT)

		got, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Mario",
			Email:    "mario@example.com",
			Password: "secret123",
			Phone:    "+3901234567",
			Address:  "1 Main St",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "mario@example.com", got.Email)
		assert.Equal(t, entities.RoleUser, got.Role)
		assert.Equal(t, got, saved)

		// the stored hash must verify against the original password
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secret123")))
		assert.NotEqual(t, "secret123", saved.PasswordHash)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().CreateUser(mock.Anything, mock.Anything).
			Return(entities.ErrEmailTaken).Once()

		svc := service.NewAuthService(newTestLogger(), repo, testJWT)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Mario",
			Email:    "mario@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := entities.User{
		ID:           "u1",
		Email:        "mario@example.com",
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
	}

	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().GetUserByEmail(mock.Anything, "mario@example.com").Return(user, nil).Once()

		svc := service.NewAuthService(newTestLogger(), repo, testJWT)

		token, got, err := svc.Login(context.Background(), "mario@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, user, got)

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			return []byte(testJWT.Secret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "u1", claims["sub"])
		assert.Equal(t, string(entities.RoleUser), claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().GetUserByEmail(mock.Anything, "mario@example.com").Return(user, nil).Once()

		svc := service.NewAuthService(newTestLogger(), repo, testJWT)

		_, _, err := svc.Login(context.Background(), "mario@example.com", "wrong")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		repo.EXPECT().GetUserByEmail(mock.Anything, "nobody@example.com").
			Return(entities.User{}, entities.ErrUserNotFound).Once()

		svc := service.NewAuthService(newTestLogger(), repo, testJWT)

		_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})
}
