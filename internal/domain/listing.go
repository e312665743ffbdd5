package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing представляет модель объявления в системе,
// соответствует таблице listings в бд
type Listing struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Price       float64   `json:"price" db:"price"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`
	ImageURL    string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// ListingFilter описывает набор фильтров для выборки объявлений.
// Отсутствующий фильтр (пустая строка / nil) не накладывает ограничений,
// фильтры комбинируются через логическое AND.
type ListingFilter struct {
	Location string
	MinPrice *float64
	MaxPrice *float64
}

// ListingSort описывает сортировку выборки. Колонка проверяется по закрытому
// списку на уровне хранилища, направление по умолчанию ASC.
type ListingSort struct {
	Column    string
	Direction string
}

// ListingPage представляет страницу выборки объявлений вместе с метаданными
// пагинации, как их отдает API.
type ListingPage struct {
	TotalResults int       `json:"total_results"`
	TotalPages   int       `json:"total_pages"`
	CurrentPage  int       `json:"current_page"`
	Limit        int       `json:"limit"`
	Listings     []Listing `json:"listings"`
}
