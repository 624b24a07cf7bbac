package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/utils"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args, err := buildListQuery(model.BookFilter{})
		require.NoError(t, err)

		assert.Equal(t, `SELECT "id", "title", "description", "published_date", "author_id" FROM "books" ORDER BY "id" ASC`, query)
		assert.Empty(t, args)
	})

	t.Run("author filter", func(t *testing.T) {
		authorID := int64(2)
		query, args, err := buildListQuery(model.BookFilter{AuthorID: &authorID})
		require.NoError(t, err)

		assert.Contains(t, query, `WHERE ("author_id" = $1)`)
		assert.Equal(t, []interface{}{int64(2)}, args)
	})
}

func TestBuildWriteQueries(t *testing.T) {
	authorID := int64(1)
	b := &model.Book{Title: "T", PublishedDate: utils.NewDate(1968, 11, 1), AuthorID: &authorID}

	insert, args, err := buildInsertQuery(b)
	require.NoError(t, err)
	assert.Contains(t, insert, `INSERT INTO "books"`)
	assert.Contains(t, insert, `RETURNING "id", "title", "description", "published_date", "author_id"`)
	assert.Contains(t, args, "T")
	assert.Contains(t, args, int64(1))

	update, args, err := buildUpdateQuery(8, b)
	require.NoError(t, err)
	assert.Contains(t, update, `UPDATE "books" SET`)
	assert.Contains(t, update, `WHERE ("id" = $`)
	assert.Contains(t, args, int64(8))

	del, args, err := buildDeleteQuery(8)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "books" WHERE ("id" = $1)`, del)
	assert.Equal(t, []interface{}{int64(8)}, args)
}

func TestBuildGetWithAuthorQuery(t *testing.T) {
	query, args, err := buildGetWithAuthorQuery(5)
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "books" AS "b" LEFT JOIN "authors" AS "a" ON ("a"."id" = "b"."author_id")`)
	assert.Contains(t, query, `WHERE ("b"."id" = $1)`)
	assert.Equal(t, []interface{}{int64(5)}, args)
}

// ========================================
// ERROR TRANSLATION
// ========================================

type fakeRow struct{ err error }

func (r fakeRow) Scan(dest ...any) error { return r.err }

type fakeQuerier struct {
	rowErr error
	tag    pgconn.CommandTag
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{err: q.rowErr}
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.tag, nil
}

func TestCreate_UnknownAuthor(t *testing.T) {
	repo := NewPostgresRepository(&fakeQuerier{rowErr: &pgconn.PgError{Code: "23503"}})

	_, err := repo.Create(context.Background(), &model.Book{Title: "T"})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestUpdate_Errors(t *testing.T) {
	t.Run("missing book", func(t *testing.T) {
		repo := NewPostgresRepository(&fakeQuerier{rowErr: pgx.ErrNoRows})
		_, err := repo.Update(context.Background(), 1, &model.Book{Title: "T"})
		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})

	t.Run("unknown author", func(t *testing.T) {
		repo := NewPostgresRepository(&fakeQuerier{rowErr: &pgconn.PgError{Code: "23503"}})
		_, err := repo.Update(context.Background(), 1, &model.Book{Title: "T"})
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	})

	t.Run("other error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		repo := NewPostgresRepository(&fakeQuerier{rowErr: boom})
		_, err := repo.Update(context.Background(), 1, &model.Book{Title: "T"})
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "failed to update book 1")
	})
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewPostgresRepository(&fakeQuerier{rowErr: pgx.ErrNoRows})

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := NewPostgresRepository(&fakeQuerier{tag: pgconn.NewCommandTag("DELETE 0")})

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), model.ErrBookNotFound)
}
