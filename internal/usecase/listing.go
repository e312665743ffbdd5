package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// FileStorage определяет интерфейс для работы с файловым хранилищем (AWS S3, MinIO)
// порт для хранения бинарных данных (картинок объявлений)
type FileStorage interface {
	// UploadFile загружает файл в хранилище и возвращает его публичный URL.
	// `key` - это уникальное имя файла в хранилище.
	// `reader` - источник данных файла (например, часть multipart-запроса).
	// `contentType` - MIME-тип файла (например, "image/jpeg").
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// DeleteFile удаляет файл из хранилища по его ключу.
	DeleteFile(ctx context.Context, key string) error
}

// ImageUpload описывает картинку, прикрепленную к создаваемому объявлению.
type ImageUpload struct {
	Content     io.Reader
	ContentType string
}

// CreateListingInput — входные данные для создания объявления.
// OwnerID всегда берется из claims аутентифицированного пользователя,
// а не из тела запроса.
type CreateListingInput struct {
	Title       string
	Description string
	Location    string
	Price       *float64
	OwnerID     uuid.UUID
	Image       *ImageUpload
}

// ListingUseCase определяет интерфейс для бизнес-логики работы с объявлениями
type ListingUseCase interface {
	// BrowseListings возвращает страницу объявлений по фильтрам и сортировке.
	// total_pages считается отдельным count-запросом по тем же предикатам,
	// что и выборка
	BrowseListings(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) (*domain.ListingPage, error)

	// GetListingDetailsFromDB получает объявление из бд по ID,
	// domain.ErrNotFound если его нет
	GetListingDetailsFromDB(ctx context.Context, id uuid.UUID) (*domain.Listing, error)

	// CreateListing создает объявление, при наличии картинки загружает ее
	// в файловое хранилище и сохраняет полученный URL
	CreateListing(ctx context.Context, input CreateListingInput) (*domain.Listing, error)

	// DeleteListing удаляет объявление. Удалить может только владелец:
	// domain.ErrForbidden для чужого объявления, domain.ErrNotFound если его нет
	DeleteListing(ctx context.Context, id, requesterID uuid.UUID) error
}
