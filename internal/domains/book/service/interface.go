package service

import (
	"context"

	"bookshelf-api/internal/domains/book/model"
)

// ServiceInterface is the business-logic contract consumed by the HTTP
// handlers. Every owner-scoped operation takes the caller's identity as
// an explicit parameter.
type ServiceInterface interface {
	ListAll(ctx context.Context) ([]model.Book, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Book, error)
	Create(ctx context.Context, ownerID int64, req model.CreateBookRequest) (*model.Book, error)
	GetByID(ctx context.Context, id, ownerID int64) (*model.Book, error)
	Update(ctx context.Context, id, ownerID int64, req model.UpdateBookRequest) error
	Delete(ctx context.Context, id, ownerID int64) error
	Search(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error)
}
