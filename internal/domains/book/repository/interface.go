package repository

import (
	"context"

	"bookshelf-api/internal/domains/book/model"
)

// Repository is the record store contract the book core depends on.
// Lookup, update and delete are all scoped by id+owner so that a book
// not owned by the caller is indistinguishable from a nonexistent one.
type Repository interface {
	// Create persists a new book and fills in the store-assigned id.
	Create(ctx context.Context, b *model.Book) error

	// ListAll returns every book in the store, unfiltered.
	ListAll(ctx context.Context) ([]model.Book, error)

	// ListByOwner returns all books owned by ownerID.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Book, error)

	// FindByIDAndOwner returns the book matching id+owner,
	// or model.ErrBookNotFound.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Book, error)

	// Search returns books matching the case-insensitive title/author
	// substrings (ANDed when both are set), capped to limit.
	Search(ctx context.Context, title, author string, limit int) ([]model.Book, error)

	// Update applies the patch to the book matching id+owner in a single
	// atomic statement. Fields absent from the patch keep their stored
	// value. Returns model.ErrBookNotFound when no row matches.
	Update(ctx context.Context, id, ownerID int64, patch model.UpdateBookRequest) error

	// Delete removes the book, conditioned on the same id+owner pair the
	// caller was validated against. Returns model.ErrBookNotFound when no
	// row matches.
	Delete(ctx context.Context, id, ownerID int64) error
}
