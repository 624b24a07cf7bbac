package response

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// BindErrors maps a ShouldBindJSON failure onto field errors: type mismatches
// keep the offending field, everything else is reported against "body".
func BindErrors(err error) []FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
		}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Message: "request body is required"}}
	}
	return []FieldError{{Field: "body", Message: "request body must be valid JSON"}}
}

// BindJSON binds the body into req, writing a 400 on failure.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		BadRequest(c, BindErrors(err)...)
		return false
	}
	return true
}
