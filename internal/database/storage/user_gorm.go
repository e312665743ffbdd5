package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// GormUserStorage реализует интерфейс ports.UserStorage с использованием GORM
type GormUserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUserStorage создает новый экземпляр GormUserStorage
func NewGormUserStorage(db *gorm.DB, logger *slog.Logger) *GormUserStorage {
	return &GormUserStorage{db: db, logger: logger}
}

// CreateUser сохраняет нового пользователя.
// Уникальность email обеспечивается индексом в бд: нарушение
// транслируется в domain.ErrDuplicateEmail (требует gorm.Config{TranslateError: true}).
func (s *GormUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			s.logger.Warn("duplicate email on user create", "email", user.Email)
			return domain.ErrDuplicateEmail
		}
		s.logger.Error("failed to create user", "error", result.Error)
		return fmt.Errorf("ошибка при создании пользователя: %w", result.Error)
	}

	s.logger.Info("user created successfully",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByEmailFromDB получает пользователя по email, nil если не найден
func (s *GormUserStorage) GetUserByEmailFromDB(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.logger.Warn("user not found by email", "email", email)
			return nil, nil
		}
		s.logger.Error("failed to get user by email", "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", result.Error)
	}
	return &user, nil
}
