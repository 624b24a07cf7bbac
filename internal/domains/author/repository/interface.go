package repository

import (
	"context"

	"library-api/internal/domains/author/model"
)

// RepositoryInterface defines data access operations for authors
type RepositoryInterface interface {
	// CRUD
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id int64) error

	// Auth: chỉ tìm trong các author đã đăng ký (password NOT NULL)
	GetRegisteredByName(ctx context.Context, name string) (*model.Author, error)

	// Join rows (authors LEFT JOIN books), chưa flatten
	ListWithBooks(ctx context.Context) ([]model.AuthorBookRow, error)
	GetWithBooks(ctx context.Context, id int64) ([]model.AuthorBookRow, error)
}
