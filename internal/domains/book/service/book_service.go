package service

import (
	"context"
	"fmt"
	"time"

	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/internal/domains/book/repository"
)

type bookService struct {
	repo repository.Repository
}

func NewBookService(repo repository.Repository) ServiceInterface {
	return &bookService{
		repo: repo,
	}
}

func (s *bookService) ListAll(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all books: %w", err)
	}
	return books, nil
}

func (s *bookService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Book, error) {
	books, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list books for owner %d: %w", ownerID, err)
	}
	return books, nil
}

// Create builds the book from the payload plus server-assigned fields:
// created_at == updated_at == now, owner from the authenticated identity.
func (s *bookService) Create(ctx context.Context, ownerID int64, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Price:         req.Price,
		PublishedDate: req.PublishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
		OwnerID:       ownerID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return b, nil
}

func (s *bookService) GetByID(ctx context.Context, id, ownerID int64) (*model.Book, error) {
	return s.repo.FindByIDAndOwner(ctx, id, ownerID)
}

// Update applies the patch to the caller's book. updated_at is not
// refreshed unless the patch carries it explicitly.
func (s *bookService) Update(ctx context.Context, id, ownerID int64, req model.UpdateBookRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.repo.Update(ctx, id, ownerID, req)
}

func (s *bookService) Delete(ctx context.Context, id, ownerID int64) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func (s *bookService) Search(ctx context.Context, req model.SearchBooksRequest) ([]model.Book, error) {
	req.Normalize()

	books, err := s.repo.Search(ctx, req.Title, req.Author, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}
