package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
)

// DefaultBcryptCost - cân bằng giữa security và latency của login
const DefaultBcryptCost = 12

type authService struct {
	repo       repository.RepositoryInterface
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService wires the auth service; cost <= 0 uses DefaultBcryptCost.
func NewAuthService(repo repository.RepositoryInterface, tokens TokenIssuer, cost int) AuthServiceInterface {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &authService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: cost,
	}
}

// Register tạo author mới kèm password hash
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.Author, error) {
	// 1. VALIDATE INPUT
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := req.AuthorRequest().ToEntity()
	if err != nil {
		return nil, err
	}

	// 2. HASH PASSWORD
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashed := string(hash)
	a.PasswordHash = &hashed

	// 3. PERSIST (unique index trên name -> ErrNameAlreadyTaken)
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("register author: %w", err)
	}

	log.Info().Int64("author_id", created.ID).Msg("author registered")
	return created, nil
}

// Login xác thực name + password và trả về access token
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetRegisteredByName(ctx, req.Name)
	if err != nil {
		// Không phân biệt "không tồn tại" và "sai password"
		if errors.Is(err, model.ErrAuthorNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find author by name: %w", err)
	}
	if !a.IsRegistered() {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(a.ID, a.Name)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiresAt,
		Author:    a,
	}, nil
}

// Me trả về author sở hữu token
func (s *authService) Me(ctx context.Context, authorID int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, authorID)
}
