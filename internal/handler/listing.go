package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

// Лимит на размер multipart-формы при создании объявления
const maxUploadSize = 32 << 20

// allowedImageTypes — допустимые MIME-типы картинок объявлений
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ListingHandler — обработчик HTTP-запросов для работы с объявлениями.
type ListingHandler struct {
	listingUseCase usecase.ListingUseCase
	logger         *slog.Logger
}

// NewListingHandler создаёт новый экземпляр ListingHandler.
func NewListingHandler(uc usecase.ListingUseCase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		listingUseCase: uc,
		logger:         logger,
	}
}

// ListListings — возвращает страницу объявлений с фильтрами, сортировкой
// и пагинацией. Некорректные значения фильтров и пагинации игнорируются
// и заменяются значениями по умолчанию.
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.ListingFilter{
		Location: q.Get("location"),
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}

	sort := domain.ListingSort{
		Column:    q.Get("sort_by"),
		Direction: q.Get("order"),
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.listingUseCase.BrowseListings(r.Context(), filter, sort, page, limit)
	if err != nil {
		h.logger.Error("failed to list listings", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve listings", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// GetListing — возвращает одно объявление по ID.
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Listing not found", h.logger)
		return
	}

	listing, err := h.listingUseCase.GetListingDetailsFromDB(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Listing not found", h.logger)
			return
		}
		h.logger.Error("failed to get listing", "listing_id", id, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve listing", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, listing, h.logger)
}

// CreateListing — создает объявление от имени аутентифицированного
// пользователя. Принимает multipart-форму с опциональным файлом "image".
// Владелец всегда берется из claims, а не из тела запроса.
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form", h.logger)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	location := r.FormValue("location")
	priceStr := r.FormValue("price")

	if title == "" || location == "" || priceStr == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required fields", h.logger)
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid price", h.logger)
		return
	}

	input := usecase.CreateListingInput{
		Title:       title,
		Description: description,
		Location:    location,
		Price:       &price,
		OwnerID:     claims.UserID,
	}

	file, fileHeader, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()

		contentType := fileHeader.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			respondWithError(w, http.StatusBadRequest, "Only images (JPEG, PNG, GIF) are allowed", h.logger)
			return
		}
		input.Image = &usecase.ImageUpload{
			Content:     file,
			ContentType: contentType,
		}
	case errors.Is(err, http.ErrMissingFile):
		// Картинка опциональна
	default:
		respondWithError(w, http.StatusBadRequest, "Invalid image upload", h.logger)
		return
	}

	listing, err := h.listingUseCase.CreateListing(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Missing required fields", h.logger)
			return
		}
		h.logger.Error("failed to create listing", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create listing", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":    listing.ID,
		"image": listing.ImageURL,
	}, h.logger)
}

// DeleteListing — удаляет объявление. Разрешено только владельцу.
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", h.logger)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Listing not found", h.logger)
		return
	}

	if err := h.listingUseCase.DeleteListing(r.Context(), id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Listing not found", h.logger)
		case errors.Is(err, domain.ErrForbidden):
			respondWithError(w, http.StatusForbidden, "Unauthorized", h.logger)
		default:
			h.logger.Error("failed to delete listing", "listing_id", id, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to delete listing", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Listing deleted successfully",
	}, h.logger)
}
