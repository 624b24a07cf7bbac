package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
	"library-api/internal/shared/utils"
)

const entityName = "Author"

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// NESTED: GET /v1/authors/with-books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) ListWithBooks(c *gin.Context) {
	items, err := h.service.ListWithBooks(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// ════════════════════════════════════════════════════════════════
// NESTED: GET /v1/authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetWithBooks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorRequest
	if !response.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Written(c, http.StatusCreated, "Author created successfully", "author", a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.AuthorRequest
	if !response.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Written(c, http.StatusOK, "Author updated successfully", "author", a)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Author deleted successfully")
}

// ========================================
// HELPERS
// ========================================

func parseID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, response.FieldError{Field: "id", Message: err.Error()})
		return 0, false
	}
	return id, true
}

// handleError map domain errors thành HTTP status; còn lại -> ErrorHandler (500)
func handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Validation(c, verrs)

	case errors.Is(err, model.ErrAuthorNotFound):
		response.NotFound(c, entityName)

	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())

	case errors.Is(err, model.ErrNameAlreadyTaken):
		response.Conflict(c, err.Error())

	default:
		middleware.AbortWithError(c, err)
	}
}
