package model

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/utils"
)

const (
	MaxNameLength     = 255
	MinPasswordLength = 8
	// bcrypt chỉ dùng 72 bytes đầu của password
	MaxPasswordLength = 72
)

var (
	nameRules = []validation.Rule{
		validation.Required.Error("name must be a non-empty string"),
		validation.RuneLength(1, MaxNameLength).Error("name must be at most 255 characters"),
	}
	birthdateRules = []validation.Rule{
		validation.Required.Error("birthdate is required"),
		utils.DateRule("birthdate must be a valid date (YYYY-MM-DD or RFC 3339)"),
	}
)

// ========================================
// AUTHOR DTOs
// ========================================

// AuthorRequest - POST /authors, PUT /authors/:id (full-row replace)
type AuthorRequest struct {
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	Birthdate string  `json:"birthdate"`
}

// Normalize trims whitespace so a blank name fails Required.
func (r *AuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Birthdate = strings.TrimSpace(r.Birthdate)
	r.Bio = utils.NullableString(r.Bio)
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.Birthdate, birthdateRules...),
	)
}

// ToEntity converts a validated request to an Author.
func (r AuthorRequest) ToEntity() (*Author, error) {
	birthdate, err := utils.ParseDate(r.Birthdate)
	if err != nil {
		return nil, err
	}
	return &Author{
		Name:      r.Name,
		Bio:       r.Bio,
		Birthdate: birthdate,
	}, nil
}

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest - POST /auth/register
type RegisterRequest struct {
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	Birthdate string  `json:"birthdate"`
	Password  string  `json:"password"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Birthdate = strings.TrimSpace(r.Birthdate)
	r.Bio = utils.NullableString(r.Bio)
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.Birthdate, birthdateRules...),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, MaxPasswordLength).Error("password must be 8-72 characters"),
			validation.Match(regexp.MustCompile(`[A-Za-z]`)).Error("password must contain at least one letter"),
			validation.Match(regexp.MustCompile(`[0-9]`)).Error("password must contain at least one number"),
		),
	)
}

// AuthorRequest returns the author part of the registration.
func (r RegisterRequest) AuthorRequest() AuthorRequest {
	return AuthorRequest{Name: r.Name, Bio: r.Bio, Birthdate: r.Birthdate}
}

// LoginRequest - POST /auth/login
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse - token + author đang đăng nhập
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Author    *Author   `json:"author"`
}
