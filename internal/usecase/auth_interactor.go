package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/core/ports"
	"github.com/GoArmGo/MarketApp/internal/domain"
)

// authUseCase implements AuthUseCase
type authUseCase struct {
	userStorage ports.UserStorage
	hasher      PasswordHasher
	tokens      TokenIssuer
	logger      *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(
	userStorage ports.UserStorage,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userStorage: userStorage,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register создает нового пользователя с хешированным паролем
func (uc *authUseCase) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	if name == "" || email == "" || password == "" {
		return uuid.Nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("usecase: ошибка при хешировании пароля: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("usecase: ошибка при создании пользователя: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID)
	return user.ID, nil
}

// Login проверяет учетные данные и выпускает токен.
// Отсутствующий пользователь и неверный пароль неразличимы для клиента.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userStorage.GetUserByEmailFromDB(ctx, email)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка при поиске пользователя: %w", err)
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	ok, err := uc.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка при проверке пароля: %w", err)
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка при выпуске токена: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}
