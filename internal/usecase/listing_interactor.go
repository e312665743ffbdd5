package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/core/ports"
	"github.com/GoArmGo/MarketApp/internal/domain"
	"github.com/GoArmGo/MarketApp/internal/messaging/payloads"
)

// imageExtensions — закрытый список допустимых MIME-типов картинок
// и расширений для ключей в файловом хранилище
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// listingUseCase implements ListingUseCase
type listingUseCase struct {
	listingStorage ports.ListingStorage
	fileStorage    FileStorage
	publisher      ports.ImageCleanupPublisher
	logger         *slog.Logger
}

// NewListingUseCase создает новый экземпляр ListingUseCase
func NewListingUseCase(
	listingStorage ports.ListingStorage,
	fileStorage FileStorage,
	publisher ports.ImageCleanupPublisher,
	logger *slog.Logger,
) ListingUseCase {
	return &listingUseCase{
		listingStorage: listingStorage,
		fileStorage:    fileStorage,
		publisher:      publisher,
		logger:         logger,
	}
}

// BrowseListings возвращает страницу объявлений вместе с метаданными пагинации
func (uc *listingUseCase) BrowseListings(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) (*domain.ListingPage, error) {
	// Значения по умолчанию, если пагинация не указана или некорректна
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	total, err := uc.listingStorage.CountListingsInDB(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при подсчете объявлений: %w", err)
	}

	listings, err := uc.listingStorage.ListListingsInDB(ctx, filter, sort, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка объявлений: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	return &domain.ListingPage{
		TotalResults: total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		Limit:        perPage,
		Listings:     listings,
	}, nil
}

// GetListingDetailsFromDB получает объявление из бд по ID
func (uc *listingUseCase) GetListingDetailsFromDB(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := uc.listingStorage.GetListingByIDFromDB(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении объявления по ID %s: %w", id, err)
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}
	return listing, nil
}

// CreateListing создает объявление от имени аутентифицированного пользователя.
// Картинка (если есть) загружается в файловое хранилище, в строке объявления
// сохраняется ее публичный URL.
func (uc *listingUseCase) CreateListing(ctx context.Context, input CreateListingInput) (*domain.Listing, error) {
	if input.Title == "" || input.Location == "" || input.Price == nil {
		return nil, fmt.Errorf("%w: title, location and price are required", domain.ErrValidation)
	}
	if *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if input.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}

	now := time.Now()
	listing := &domain.Listing{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Price:       *input.Price,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.Image != nil {
		ext, ok := imageExtensions[input.Image.ContentType]
		if !ok {
			return nil, fmt.Errorf("%w: only images (JPEG, PNG, GIF) are allowed", domain.ErrValidation)
		}

		objectKey := fmt.Sprintf("listing-images/%s%s", listing.ID, ext)
		imageURL, err := uc.fileStorage.UploadFile(ctx, objectKey, input.Image.Content, input.Image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка загрузки картинки объявления %s: %w", listing.ID, err)
		}
		listing.ImageURL = imageURL
	}

	if err := uc.listingStorage.SaveListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении объявления: %w", err)
	}

	uc.logger.Info("listing created", "listing_id", listing.ID, "owner_id", listing.OwnerID)
	return listing, nil
}

// DeleteListing удаляет объявление владельца. Проверка владельца и само
// удаление выполняются двумя запросами без транзакции: узкое окно гонки
// между чтением и удалением — принятое ограничение.
func (uc *listingUseCase) DeleteListing(ctx context.Context, id, requesterID uuid.UUID) error {
	listing, err := uc.listingStorage.GetListingByIDFromDB(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: ошибка при получении объявления %s: %w", id, err)
	}
	if listing == nil {
		return domain.ErrNotFound
	}
	if listing.OwnerID != requesterID {
		return domain.ErrForbidden
	}

	if err := uc.listingStorage.DeleteListingFromDB(ctx, id); err != nil {
		return fmt.Errorf("usecase: ошибка при удалении объявления %s: %w", id, err)
	}

	// Картинку чистим асинхронно через очередь. Неудачная публикация
	// не откатывает удаление объявления, задача просто теряется —
	// логируем и продолжаем.
	if listing.ImageURL != "" {
		payload := payloads.ImageCleanupPayload{
			ListingID: listing.ID.String(),
			ObjectKey: fmt.Sprintf("listing-images/%s%s", listing.ID, path.Ext(listing.ImageURL)),
		}
		if err := uc.publisher.PublishImageCleanup(ctx, payload); err != nil {
			uc.logger.Error("failed to publish image cleanup task",
				"listing_id", listing.ID,
				"error", err,
			)
		}
	}

	uc.logger.Info("listing deleted", "listing_id", id, "owner_id", requesterID)
	return nil
}
