package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/utils"
)

const MaxTitleLength = 255

// BookRequest - POST /books, PUT /books/:id (full-row replace)
type BookRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	PublishedDate string  `json:"published_date"`
	AuthorID      *int64  `json:"author_id"`
}

func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.PublishedDate = strings.TrimSpace(r.PublishedDate)
	r.Description = utils.NullableString(r.Description)
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title must be a non-empty string"),
			validation.RuneLength(1, MaxTitleLength).Error("title must be at most 255 characters"),
		),
		validation.Field(&r.PublishedDate,
			validation.Required.Error("published_date is required"),
			utils.DateRule("published_date must be a valid date (YYYY-MM-DD or RFC 3339)"),
		),
		validation.Field(&r.AuthorID,
			validation.NilOrNotEmpty.Error("author_id must be a positive integer"),
			validation.Min(int64(1)).Error("author_id must be a positive integer"),
			validation.Max(int64(utils.MaxID)).Error("author_id must be a positive integer"),
		),
	)
}

// ToEntity converts a validated request to a Book.
func (r BookRequest) ToEntity() (*Book, error) {
	published, err := utils.ParseDate(r.PublishedDate)
	if err != nil {
		return nil, err
	}
	return &Book{
		Title:         r.Title,
		Description:   r.Description,
		PublishedDate: published,
		AuthorID:      r.AuthorID,
	}, nil
}
