package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAuthUseCase implements usecase.AuthUseCase
type mockAuthUseCase struct {
	registerFn func(ctx context.Context, name, email, password string) (uuid.UUID, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUseCase) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	return m.loginFn(ctx, email, password)
}

// mockListingUseCase implements usecase.ListingUseCase
type mockListingUseCase struct {
	browseFn func(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) (*domain.ListingPage, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	createFn func(ctx context.Context, input usecase.CreateListingInput) (*domain.Listing, error)
	deleteFn func(ctx context.Context, id, requesterID uuid.UUID) error
}

func (m *mockListingUseCase) BrowseListings(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) (*domain.ListingPage, error) {
	return m.browseFn(ctx, filter, sort, page, perPage)
}

func (m *mockListingUseCase) GetListingDetailsFromDB(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return m.getFn(ctx, id)
}

func (m *mockListingUseCase) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*domain.Listing, error) {
	return m.createFn(ctx, input)
}

func (m *mockListingUseCase) DeleteListing(ctx context.Context, id, requesterID uuid.UUID) error {
	return m.deleteFn(ctx, id, requesterID)
}
