package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// PasswordHasher хеширует и проверяет пароли с использованием bcrypt.
// Соль генерируется bcrypt'ом на каждый вызов, поэтому один и тот же пароль
// дает разные хеши.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создает новый PasswordHasher.
// cost <= 0 означает bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}
	return string(hash), nil
}

// Verify сравнивает пароль с сохраненным хешем.
// Несовпадение пароля не является ошибкой, ошибка возвращается только
// если сам хеш поврежден (domain.ErrCorruptHash).
func (h *PasswordHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", domain.ErrCorruptHash, err)
}
