package response

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError là một lỗi validation của một field trong request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageBody - {message}
type MessageBody struct {
	Message string `json:"message"`
}

// ValidationBody - {errors: [...]}
type ValidationBody struct {
	Errors []FieldError `json:"errors"`
}

// ErrorBody - body của 500, stack chỉ có ngoài production
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// ========================================
// SUCCESS RESPONSES
// ========================================

// JSON writes an entity (or list) as the whole body.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Written responds to a create/update with {message, <key>: entity}.
func Written(c *gin.Context, statusCode int, message, key string, entity interface{}) {
	c.JSON(statusCode, gin.H{
		"message": message,
		key:       entity,
	})
}

// Message responds with {message} only (delete, 401, 404, 409).
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// ========================================
// ERROR RESPONSES
// ========================================

// NotFound - 404 {message: "<Entity> not found"}
func NotFound(c *gin.Context, entity string) {
	Message(c, http.StatusNotFound, entity+" not found")
}

func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusConflict, message)
}

// BadRequest - 400 {errors: [...]}
func BadRequest(c *gin.Context, errs ...FieldError) {
	if errs == nil {
		errs = []FieldError{}
	}
	c.JSON(http.StatusBadRequest, ValidationBody{Errors: errs})
}

// Validation converts err into field errors and writes a 400.
func Validation(c *gin.Context, err error) {
	BadRequest(c, FieldErrors(err)...)
}

// InternalServerError - 500 {success:false, message, stack?}
func InternalServerError(c *gin.Context, message, stack string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Success: false,
		Message: message,
		Stack:   stack,
	})
}

// FieldErrors flattens ozzo validation errors into a stable, field-sorted
// list. Any other error becomes a single entry without a field.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return []FieldError{}
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, FieldError{Field: field, Message: verrs[field].Error()})
	}
	return out
}
