package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestNotFound(t *testing.T) {
	w := record(func(c *gin.Context) { NotFound(c, "Author") })

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Author not found"}`, w.Body.String())
}

func TestWritten(t *testing.T) {
	w := record(func(c *gin.Context) {
		Written(c, http.StatusCreated, "Book created successfully", "book", map[string]int{"id": 3})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Book created successfully","book":{"id":3}}`, w.Body.String())
}

func TestBadRequest_EmptyListIsArray(t *testing.T) {
	w := record(func(c *gin.Context) { BadRequest(c) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[]}`, w.Body.String())
}

func TestInternalServerError(t *testing.T) {
	w := record(func(c *gin.Context) { InternalServerError(c, "Internal server error", "") })
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())

	w = record(func(c *gin.Context) { InternalServerError(c, "boom", "goroutine 1") })
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "goroutine 1", body.Stack)
}

func TestFieldErrors(t *testing.T) {
	err := validation.Errors{
		"name":      errors.New("cannot be blank"),
		"birthdate": errors.New("must be a valid date"),
	}

	got := FieldErrors(err)

	assert.Equal(t, []FieldError{
		{Field: "birthdate", Message: "must be a valid date"},
		{Field: "name", Message: "cannot be blank"},
	}, got)

	assert.Equal(t, []FieldError{{Message: "bad body"}}, FieldErrors(errors.New("bad body")))
	assert.Empty(t, FieldErrors(nil))
}

func TestBindJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
		Year  int    `json:"year"`
	}

	bind := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		var p payload
		if BindJSON(c, &p) {
			c.Status(http.StatusNoContent)
		}
		return w
	}

	t.Run("ok", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, bind(`{"title":"T","year":2000}`).Code)
	})

	t.Run("type mismatch names the field", func(t *testing.T) {
		w := bind(`{"title":"T","year":"two thousand"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body ValidationBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "year", body.Errors[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := bind(`{"title":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"body"`)
	})

	t.Run("empty body", func(t *testing.T) {
		w := bind(``)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "request body is required")
	})
}
