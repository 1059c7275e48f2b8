package service

import (
	"context"

	"bookshelf-api/internal/domains/user/model"
)

// ServiceInterface is the identity-issuance contract.
type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.LoginResponse, error)
}
