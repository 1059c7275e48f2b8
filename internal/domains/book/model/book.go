package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book represents a single record on a user's shelf. Every book has
// exactly one owner, assigned at creation from the authenticated identity.
type Book struct {
	ID            int64           `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	Author        string          `json:"author" db:"author"`
	Price         decimal.Decimal `json:"price" db:"price"`
	PublishedDate time.Time       `json:"published_date" db:"published_date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
	OwnerID       int64           `json:"owner_id" db:"owner_id"`
}
