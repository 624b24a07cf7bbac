package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
)

type AuthHandler struct {
	service service.AuthServiceInterface
}

func NewAuthHandler(svc service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// Register xử lý POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !response.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Written(c, http.StatusCreated, "Author registered successfully", "author", a)
}

// Login xử lý POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !response.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Me xử lý GET /auth/me (cần AuthMiddleware)
func (h *AuthHandler) Me(c *gin.Context) {
	authorID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	a, err := h.service.Me(c.Request.Context(), authorID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}
