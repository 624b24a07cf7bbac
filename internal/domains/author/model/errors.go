package model

import "errors"

var (
	// Not Found
	ErrAuthorNotFound = errors.New("author not found")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrNameAlreadyTaken   = errors.New("an author with this name is already registered")
)
