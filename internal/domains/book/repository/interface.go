package repository

import (
	"context"

	"library-api/internal/domains/book/model"
)

// RepositoryInterface - data access methods cho books
type RepositoryInterface interface {
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	Update(ctx context.Context, id int64, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	// books LEFT JOIN authors cho một book, chưa flatten
	GetWithAuthor(ctx context.Context, id int64) ([]model.BookAuthorRow, error)
}
