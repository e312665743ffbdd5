package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// PasswordHasher определяет интерфейс хеширования и проверки паролей
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify возвращает false без ошибки при несовпадении пароля,
	// ошибку — только при поврежденном хеше
	Verify(plaintext, hash string) (bool, error)
}

// TokenIssuer определяет интерфейс выпуска bearer-токенов для пользователя
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// AuthUseCase определяет интерфейс для бизнес-логики регистрации и входа
type AuthUseCase interface {
	// Register создает нового пользователя и возвращает его ID.
	// domain.ErrDuplicateEmail если email уже занят
	Register(ctx context.Context, name, email, password string) (uuid.UUID, error)

	// Login проверяет учетные данные и возвращает подписанный токен.
	// domain.ErrInvalidCredentials при неверной паре email/пароль
	Login(ctx context.Context, email, password string) (string, error)
}
