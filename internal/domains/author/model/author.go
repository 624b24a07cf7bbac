package model

import (
	"library-api/internal/shared/utils"
)

// Author represents the core Author entity (bảng authors)
type Author struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Bio       *string    `json:"bio"`
	Birthdate utils.Date `json:"birthdate"`

	// PasswordHash chỉ có với author đã đăng ký (register), không bao giờ trả về client
	PasswordHash *string `json:"-"`
}

// IsRegistered reports whether the author can log in.
func (a *Author) IsRegistered() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// BookSummary là phần child trong nested view: chỉ id + title
type BookSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// AuthorBooksItem - một phần tử của GET /authors/with-books
type AuthorBooksItem struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Books []BookSummary `json:"books"`
}

// AuthorWithBooks - GET /authors/:id/books
type AuthorWithBooks struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Bio   *string       `json:"bio"`
	Books []BookSummary `json:"books"`
}
