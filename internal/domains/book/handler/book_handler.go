package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
	"library-api/internal/shared/utils"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// List godoc
// GET /v1/books?author=<id>
func (h *BookHandler) List(c *gin.Context) {
	var filter model.BookFilter
	if raw, ok := c.GetQuery("author"); ok {
		authorID, err := utils.ParseID(raw)
		if err != nil {
			response.BadRequest(c, response.FieldError{Field: "author", Message: "author must be a positive integer"})
			return
		}
		filter.AuthorID = &authorID
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// GetWithAuthor - GET /v1/books/:id/author
func (h *BookHandler) GetWithAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.GetWithAuthor(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if !response.BindJSON(c, &req) {
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Written(c, http.StatusCreated, "Book created successfully", "book", b)
}

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.BookRequest
	if !response.BindJSON(c, &req) {
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Written(c, http.StatusOK, "Book updated successfully", "book", b)
}

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, response.FieldError{Field: "id", Message: err.Error()})
		return 0, false
	}
	return id, true
}

// ========================================
// ERROR MAPPING
// ========================================

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.Validation(c, verrs)

	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book")

	// FK violation: author_id không tồn tại -> 400 trên field author_id
	case errors.Is(err, model.ErrAuthorNotFound):
		response.BadRequest(c, response.FieldError{Field: "author_id", Message: model.ErrAuthorNotFound.Error()})

	default:
		middleware.AbortWithError(c, err)
	}
}
