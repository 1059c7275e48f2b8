package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// DefaultSearchLimit caps the public search endpoint when the caller
// does not supply a limit.
const DefaultSearchLimit = 10

// CreateBookRequest is the payload for POST /book. Owner and timestamps
// are assigned server-side, never taken from the payload.
type CreateBookRequest struct {
	Title         string          `json:"title" binding:"required"`
	Author        string          `json:"author" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	PublishedDate time.Time       `json:"published_date"`
}

func (r CreateBookRequest) Validate() error {
	// Price >= 0 is deliberately not enforced.
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateBookRequest is the partial-update payload for PUT /book/:book_id.
// A nil field leaves the stored value untouched; a present field
// overwrites it. That includes owner_id, created_at and updated_at:
// updated_at is only refreshed when the caller supplies it.
type UpdateBookRequest struct {
	Title         *string          `json:"title"`
	Author        *string          `json:"author"`
	Price         *decimal.Decimal `json:"price"`
	PublishedDate *time.Time       `json:"published_date"`
	CreatedAt     *time.Time       `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at"`
	OwnerID       *int64           `json:"owner_id"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty"), validation.Length(1, 500)),
		validation.Field(&r.Author, validation.NilOrNotEmpty.Error("author cannot be empty"), validation.Length(1, 255)),
	)
}

// IsEmpty reports whether the patch would change nothing.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Author == nil && r.Price == nil &&
		r.PublishedDate == nil && r.CreatedAt == nil && r.UpdatedAt == nil &&
		r.OwnerID == nil
}

// ApplyTo overwrites the fields of b that are present in the patch.
// This mirrors the COALESCE semantics of the SQL update statement.
func (r UpdateBookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.PublishedDate != nil {
		b.PublishedDate = *r.PublishedDate
	}
	if r.CreatedAt != nil {
		b.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		b.UpdatedAt = *r.UpdatedAt
	}
	if r.OwnerID != nil {
		b.OwnerID = *r.OwnerID
	}
}

// SearchBooksRequest holds the public catalog filters. Title and author
// are case-insensitive substring matches, ANDed when both are present.
type SearchBooksRequest struct {
	Title  string `form:"title"`
	Author string `form:"author"`
	Limit  int    `form:"limit"`
}

// Normalize fills in the default limit.
func (r *SearchBooksRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultSearchLimit
	}
}
