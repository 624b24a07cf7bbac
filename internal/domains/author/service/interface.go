package service

import (
	"context"
	"time"

	"library-api/internal/domains/author/model"
)

// ServiceInterface - business logic cho authors (CRUD + nested views)
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id int64) error

	ListWithBooks(ctx context.Context) ([]model.AuthorBooksItem, error)
	GetWithBooks(ctx context.Context, id int64) (*model.AuthorWithBooks, error)
}

// AuthServiceInterface - register/login của author
type AuthServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.Author, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, authorID int64) (*model.Author, error)
}

// TokenIssuer is the part of *jwt.Manager the auth service needs.
type TokenIssuer interface {
	GenerateAccessToken(authorID int64, name string) (string, time.Time, error)
}
