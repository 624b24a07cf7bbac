package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-api/internal/domains/author/model"
	"library-api/internal/infrastructure/database"
)

// postgresRepository implements RepositoryInterface on top of pgxpool
type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

// scanAuthor scans a row selected with authorColumns
func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(&a.ID, &a.Name, &a.Bio, &a.Birthdate.Time, &a.PasswordHash); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query, args, err := buildListQuery()
	if err != nil {
		return nil, fmt.Errorf("build list authors query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query, args, err := buildGetByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build get author query: %w", err)
	}

	a, err := scanAuthor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return a, nil
}

func (r *postgresRepository) GetRegisteredByName(ctx context.Context, name string) (*model.Author, error) {
	query, args, err := buildGetRegisteredByNameQuery(name)
	if err != nil {
		return nil, fmt.Errorf("build get author by name query: %w", err)
	}

	a, err := scanAuthor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}
	return a, nil
}

// Create inserts the author and returns the stored row (id assigned by the DB)
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query, args, err := buildInsertQuery(a)
	if err != nil {
		return nil, fmt.Errorf("build insert author query: %w", err)
	}

	created, err := scanAuthor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		// partial unique index trên name của author đã đăng ký
		if database.IsUniqueViolation(err) {
			return nil, model.ErrNameAlreadyTaken
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error) {
	query, args, err := buildUpdateQuery(id, a)
	if err != nil {
		return nil, fmt.Errorf("build update author query: %w", err)
	}

	updated, err := scanAuthor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case database.IsNoRows(err):
			return nil, model.ErrAuthorNotFound
		case database.IsUniqueViolation(err):
			return nil, model.ErrNameAlreadyTaken
		}
		return nil, fmt.Errorf("failed to update author %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes the author; books cascade (ON DELETE CASCADE)
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteQuery(id)
	if err != nil {
		return fmt.Errorf("build delete author query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

// ========================================
// JOIN ROWS
// ========================================

func (r *postgresRepository) ListWithBooks(ctx context.Context) ([]model.AuthorBookRow, error) {
	query, args, err := buildListWithBooksQuery()
	if err != nil {
		return nil, fmt.Errorf("build authors with books query: %w", err)
	}
	return r.queryJoinRows(ctx, query, args)
}

func (r *postgresRepository) GetWithBooks(ctx context.Context, id int64) ([]model.AuthorBookRow, error) {
	query, args, err := buildGetWithBooksQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build author with books query: %w", err)
	}
	return r.queryJoinRows(ctx, query, args)
}

func (r *postgresRepository) queryJoinRows(ctx context.Context, query string, args []interface{}) ([]model.AuthorBookRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors with books: %w", err)
	}
	defer rows.Close()

	result := make([]model.AuthorBookRow, 0)
	for rows.Next() {
		var row model.AuthorBookRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Bio, &row.BookID, &row.BookTitle); err != nil {
			return nil, fmt.Errorf("failed to scan author book row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author book rows: %w", err)
	}

	return result, nil
}
