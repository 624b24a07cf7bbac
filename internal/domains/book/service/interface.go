package service

import (
	"context"

	"library-api/internal/domains/book/model"
)

// ServiceInterface - business logic cho books
type ServiceInterface interface {
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, req model.BookRequest) (*model.Book, error)
	Update(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	GetWithAuthor(ctx context.Context, id int64) (*model.BookWithAuthor, error)
}
