package service

import (
	"context"
	"fmt"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
)

// authorService implements ServiceInterface
type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	a, err := s.toEntity(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return created, nil
}

// Update replaces name, bio and birthdate (full-row replace)
func (s *authorService) Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	a, err := s.toEntity(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, a)
	if err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// ListWithBooks: join rows -> flatten -> [{id, name, books}]
func (s *authorService) ListWithBooks(ctx context.Context) ([]model.AuthorBooksItem, error) {
	rows, err := s.repo.ListWithBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors with books: %w", err)
	}
	return model.GroupAuthorsWithBooks(rows), nil
}

func (s *authorService) GetWithBooks(ctx context.Context, id int64) (*model.AuthorWithBooks, error) {
	rows, err := s.repo.GetWithBooks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author with books: %w", err)
	}

	view, found := model.AuthorWithBooksFromRows(rows)
	if !found {
		return nil, model.ErrAuthorNotFound
	}
	return view, nil
}

// toEntity normalizes + validates the request; validation errors are
// returned unwrapped so handlers can render them per field.
func (s *authorService) toEntity(req model.AuthorRequest) (*model.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req.ToEntity()
}
