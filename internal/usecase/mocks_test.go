package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
	"github.com/GoArmGo/MarketApp/internal/messaging/payloads"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockListingStorage implements ports.ListingStorage
type mockListingStorage struct {
	saveFn   func(ctx context.Context, listing *domain.Listing) error
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	countFn  func(ctx context.Context, filter domain.ListingFilter) (int, error)
	listFn   func(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) ([]domain.Listing, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockListingStorage) SaveListing(ctx context.Context, listing *domain.Listing) error {
	return m.saveFn(ctx, listing)
}

func (m *mockListingStorage) GetListingByIDFromDB(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return m.getFn(ctx, id)
}

func (m *mockListingStorage) CountListingsInDB(ctx context.Context, filter domain.ListingFilter) (int, error) {
	return m.countFn(ctx, filter)
}

func (m *mockListingStorage) ListListingsInDB(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) ([]domain.Listing, error) {
	return m.listFn(ctx, filter, sort, page, perPage)
}

func (m *mockListingStorage) DeleteListingFromDB(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// mockUserStorage implements ports.UserStorage
type mockUserStorage struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStorage) GetUserByEmailFromDB(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

// mockFileStorage implements FileStorage
type mockFileStorage struct {
	uploadFn func(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	deleteFn func(ctx context.Context, key string) error
}

func (m *mockFileStorage) UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	return m.uploadFn(ctx, key, reader, contentType)
}

func (m *mockFileStorage) DeleteFile(ctx context.Context, key string) error {
	return m.deleteFn(ctx, key)
}

// mockPublisher implements ports.ImageCleanupPublisher and records payloads
type mockPublisher struct {
	published []payloads.ImageCleanupPayload
	err       error
}

func (m *mockPublisher) PublishImageCleanup(ctx context.Context, payload payloads.ImageCleanupPayload) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, payload)
	return nil
}

// mockHasher implements PasswordHasher without real bcrypt work
type mockHasher struct {
	hashFn   func(plaintext string) (string, error)
	verifyFn func(plaintext, hash string) (bool, error)
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	return m.hashFn(plaintext)
}

func (m *mockHasher) Verify(plaintext, hash string) (bool, error) {
	return m.verifyFn(plaintext, hash)
}

// mockTokenIssuer implements TokenIssuer
type mockTokenIssuer struct {
	issueFn func(user *domain.User) (string, error)
}

func (m *mockTokenIssuer) Issue(user *domain.User) (string, error) {
	return m.issueFn(user)
}
