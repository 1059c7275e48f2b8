package repository

import (
	"context"

	"bookshelf-api/internal/domains/user/model"
)

// Repository is the user store contract.
type Repository interface {
	// Create persists a new user and fills in the store-assigned id.
	// Returns model.ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, u *model.User) error

	// FindByID returns the user or model.ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByEmail returns the user or model.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
