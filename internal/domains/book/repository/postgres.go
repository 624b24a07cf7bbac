package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-api/internal/domains/book/model"
	"library-api/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates a new book repository instance
func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.PublishedDate.Time, &b.AuthorID); err != nil {
		return nil, err
	}
	return &b, nil
}

// translateWriteError: FK violation -> ErrAuthorNotFound, no rows -> ErrBookNotFound
func translateWriteError(err error) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return model.ErrAuthorNotFound
	case database.IsNoRows(err):
		return model.ErrBookNotFound
	}
	return err
}

func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list books query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query, args, err := buildGetByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build get book query: %w", err)
	}

	b, err := scanBook(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query, args, err := buildInsertQuery(b)
	if err != nil {
		return nil, fmt.Errorf("build insert book query: %w", err)
	}

	created, err := scanBook(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, b *model.Book) (*model.Book, error) {
	query, args, err := buildUpdateQuery(id, b)
	if err != nil {
		return nil, fmt.Errorf("build update book query: %w", err)
	}

	updated, err := scanBook(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if translated := translateWriteError(err); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteQuery(id)
	if err != nil {
		return fmt.Errorf("build delete book query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) GetWithAuthor(ctx context.Context, id int64) ([]model.BookAuthorRow, error) {
	query, args, err := buildGetWithAuthorQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build book with author query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query book with author: %w", err)
	}
	defer rows.Close()

	result := make([]model.BookAuthorRow, 0, 1)
	for rows.Next() {
		var row model.BookAuthorRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.AuthorID, &row.AuthorName, &row.AuthorBio); err != nil {
			return nil, fmt.Errorf("failed to scan book author row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book author rows: %w", err)
	}

	return result, nil
}
