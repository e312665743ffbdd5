package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// listingSortColumns — закрытый список колонок, по которым разрешена
// сортировка. Идентификаторы никогда не подставляются из пользовательского
// ввода напрямую.
var listingSortColumns = map[string]string{
	"price": "price",
	"id":    "id",
	"title": "title",
}

type ListingStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewListingStorage(db *sqlx.DB, logger *slog.Logger) *ListingStorage {
	return &ListingStorage{db: db, logger: logger}
}

// buildListingFilter собирает WHERE-часть запроса из набора фильтров.
// Возвращает SQL-фрагмент (пустой, если фильтров нет) и аргументы
// для позиционных плейсхолдеров.
func buildListingFilter(f domain.ListingFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Location != "" {
		args = append(args, f.Location)
		clauses = append(clauses, fmt.Sprintf("location = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// buildListingOrder собирает ORDER BY-часть запроса. Колонка вне закрытого
// списка дает пустой фрагмент (порядок вставки), некорректное направление
// заменяется на ASC.
func buildListingOrder(s domain.ListingSort) string {
	col, ok := listingSortColumns[s.Column]
	if !ok {
		return ""
	}

	dir := "ASC"
	if strings.EqualFold(s.Direction, "desc") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}

// SaveListing сохраняет объявление в базе данных
func (s *ListingStorage) SaveListing(ctx context.Context, listing *domain.Listing) error {
	start := time.Now()

	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}

	query := `
	INSERT INTO listings (id, title, description, location, price, owner_id, image, created_at, updated_at)
	VALUES (:id, :title, :description, :location, :price, :owner_id, :image, :created_at, :updated_at)
	`

	_, err := s.db.NamedExecContext(ctx, query, listing)
	if err != nil {
		s.logger.Error("failed to save listing", "listing_id", listing.ID, "error", err)
		return fmt.Errorf("ошибка при сохранении объявления: %w", err)
	}

	s.logger.Info("listing saved successfully",
		"listing_id", listing.ID,
		"owner_id", listing.OwnerID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetListingByIDFromDB получает объявление по ID, nil если не найдено
func (s *ListingStorage) GetListingByIDFromDB(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	start := time.Now()

	var listing domain.Listing
	query := `SELECT * FROM listings WHERE id = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("listing not found by id", "listing_id", id)
			return nil, nil
		}
		s.logger.Error("failed to get listing by id", "listing_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении объявления по ID: %w", err)
	}

	s.logger.Info("listing retrieved by id",
		"listing_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &listing, nil
}

// CountListingsInDB считает объявления, попадающие под фильтр.
// Использует тот же набор предикатов, что и ListListingsInDB, поэтому
// total_pages считается корректно относительно выборки.
func (s *ListingStorage) CountListingsInDB(ctx context.Context, filter domain.ListingFilter) (int, error) {
	where, args := buildListingFilter(filter)
	query := `SELECT COUNT(*) FROM listings` + where

	var total int
	if err := s.db.GetContext(ctx, &total, query, args...); err != nil {
		s.logger.Error("failed to count listings", "error", err)
		return 0, fmt.Errorf("ошибка при подсчете объявлений: %w", err)
	}
	return total, nil
}

// ListListingsInDB получает страницу объявлений с фильтрацией и сортировкой
func (s *ListingStorage) ListListingsInDB(ctx context.Context, filter domain.ListingFilter, sort domain.ListingSort, page, perPage int) ([]domain.Listing, error) {
	start := time.Now()

	where, args := buildListingFilter(filter)
	order := buildListingOrder(sort)

	offset := (page - 1) * perPage
	args = append(args, perPage)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	offsetClause := fmt.Sprintf(" OFFSET $%d", len(args))

	query := `SELECT * FROM listings` + where + order + limitClause + offsetClause

	listings := []domain.Listing{}
	if err := s.db.SelectContext(ctx, &listings, query, args...); err != nil {
		s.logger.Error("failed to list listings",
			"page", page,
			"per_page", perPage,
			"error", err,
		)
		return nil, fmt.Errorf("ошибка при получении списка объявлений: %w", err)
	}

	s.logger.Info("listings listed successfully",
		"page", page,
		"per_page", perPage,
		"count", len(listings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return listings, nil
}

// DeleteListingFromDB удаляет объявление по ID.
// Возвращает domain.ErrNotFound, если строки с таким ID нет.
func (s *ListingStorage) DeleteListingFromDB(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	res, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete listing", "listing_id", id, "error", err)
		return fmt.Errorf("ошибка при удалении объявления: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при удалении объявления: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("listing deleted successfully",
		"listing_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
