package service

import (
	"context"
	"fmt"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
)

type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService creates a new book service instance
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Create(ctx context.Context, req model.BookRequest) (*model.Book, error) {
	b, err := toEntity(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error) {
	b, err := toEntity(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, b)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// GetWithAuthor: join row -> flatten -> {id, title, description, author{...}}
func (s *bookService) GetWithAuthor(ctx context.Context, id int64) (*model.BookWithAuthor, error) {
	rows, err := s.repo.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book with author: %w", err)
	}

	view, found := model.BookWithAuthorFromRows(rows)
	if !found {
		return nil, model.ErrBookNotFound
	}
	return view, nil
}

func toEntity(req model.BookRequest) (*model.Book, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req.ToEntity()
}
