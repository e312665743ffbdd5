package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// ListingStorage определяет методы для взаимодействия с хранилищем объявлений
type ListingStorage interface {
	SaveListing(ctx context.Context, listing *domain.Listing) error
	GetListingByIDFromDB(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	// CountListingsInDB считает все объявления, попадающие под фильтр,
	// тем же набором предикатов, что и ListListingsInDB
	CountListingsInDB(ctx context.Context, filter domain.ListingFilter) (int, error)
	ListListingsInDB(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) ([]domain.Listing, error)
	DeleteListingFromDB(ctx context.Context, id uuid.UUID) error
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет нового пользователя,
	// возвращает domain.ErrDuplicateEmail если email уже занят
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByEmailFromDB возвращает nil, nil если пользователь не найден
	GetUserByEmailFromDB(ctx context.Context, email string) (*domain.User, error)
}
