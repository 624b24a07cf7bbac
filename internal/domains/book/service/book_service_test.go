package service

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book/model"
)

type fakeRepo struct {
	books     map[int64]*model.Book
	authorIDs map[int64]bool
	rows      []model.BookAuthorRow
	nextID    int64
	err       error

	lastFilter model.BookFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		books:     map[int64]*model.Book{},
		authorIDs: map[int64]bool{1: true},
		nextID:    1,
	}
}

func (r *fakeRepo) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	r.lastFilter = filter
	out := []model.Book{}
	for id := int64(1); id < r.nextID; id++ {
		b, ok := r.books[id]
		if !ok {
			continue
		}
		if filter.AuthorID != nil && (b.AuthorID == nil || *b.AuthorID != *filter.AuthorID) {
			continue
		}
		out = append(out, *b)
	}
	return out, r.err
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeRepo) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	if b.AuthorID != nil && !r.authorIDs[*b.AuthorID] {
		return nil, model.ErrAuthorNotFound
	}
	stored := *b
	stored.ID = r.nextID
	r.nextID++
	r.books[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeRepo) Update(ctx context.Context, id int64, b *model.Book) (*model.Book, error) {
	if _, ok := r.books[id]; !ok {
		return nil, model.ErrBookNotFound
	}
	stored := *b
	stored.ID = id
	r.books[id] = &stored
	return &stored, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeRepo) GetWithAuthor(ctx context.Context, id int64) ([]model.BookAuthorRow, error) {
	out := []model.BookAuthorRow{}
	for _, row := range r.rows {
		if row.ID == id {
			out = append(out, row)
		}
	}
	return out, r.err
}

func ptr[T any](v T) *T { return &v }

func TestBookService_CRUD(t *testing.T) {
	svc := NewBookService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, model.BookRequest{Title: "T", PublishedDate: "1968-11-01", AuthorID: ptr(int64(1))})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := svc.Update(ctx, created.ID, model.BookRequest{Title: "T2", PublishedDate: "1969-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Nil(t, updated.AuthorID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), model.ErrBookNotFound)
}

func TestBookService_CreateUnknownAuthor(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	_, err := svc.Create(context.Background(), model.BookRequest{Title: "T", PublishedDate: "1968-11-01", AuthorID: ptr(int64(99))})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestBookService_Validation(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	_, err := svc.Create(context.Background(), model.BookRequest{})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "title")
	assert.Contains(t, verrs, "published_date")
}

func TestBookService_ListByAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.BookRequest{Title: "A1", PublishedDate: "1968-11-01", AuthorID: ptr(int64(1))})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.BookRequest{Title: "Orphan", PublishedDate: "1968-11-01"})
	require.NoError(t, err)

	all, err := svc.List(ctx, model.BookFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byAuthor, err := svc.List(ctx, model.BookFilter{AuthorID: ptr(int64(1))})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "A1", byAuthor[0].Title)
}

func TestBookService_GetWithAuthor(t *testing.T) {
	repo := newFakeRepo()
	repo.rows = []model.BookAuthorRow{{ID: 5, Title: "T"}}
	svc := NewBookService(repo)

	view, err := svc.GetWithAuthor(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, view.Author.ID)
	assert.Nil(t, view.Author.Name)

	_, err = svc.GetWithAuthor(context.Background(), 6)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	boom := errors.New("db down")
	repo.err = boom
	_, err = svc.GetWithAuthor(context.Background(), 5)
	assert.ErrorIs(t, err, boom)
}
