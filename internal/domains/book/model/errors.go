package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// books.author_id trỏ tới author không tồn tại (FK violation)
	ErrAuthorNotFound = errors.New("author_id does not reference an existing author")
)
