package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxID - authors.id, books.id, books.author_id là SERIAL/INTEGER (int4)
const MaxID = math.MaxInt32

// ErrInvalidID is returned when a path or query id is not a positive integer.
var ErrInvalidID = errors.New("id must be a positive integer")

// ParseID parses a path/query identifier. Values outside int4 are rejected
// here, pgx cannot encode them for an int4 column.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// NullableString trả về nil cho chuỗi rỗng sau khi trim, để lưu NULL vào DB.
func NullableString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
