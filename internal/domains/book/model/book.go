package model

import "library-api/internal/shared/utils"

// Book represents the core Book entity (bảng books)
type Book struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	PublishedDate utils.Date `json:"published_date"`
	AuthorID      *int64     `json:"author_id"`
}

// BookFilter - filter duy nhất được hỗ trợ: author_id = ?
type BookFilter struct {
	AuthorID *int64
}

// NestedAuthor là parent trong book-with-author view.
// Tất cả field là null khi book chưa gán author.
type NestedAuthor struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

// BookWithAuthor - GET /books/:id/author
type BookWithAuthor struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Author      NestedAuthor `json:"author"`
}
