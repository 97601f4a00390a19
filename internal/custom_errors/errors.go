package custom_errors

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrForbidden       = errors.New("operation not allowed")
	ErrUnauthenticated = errors.New("authentication required")

	ErrValidationFailed  = errors.New("validation failed")
	ErrNoUpdateRows      = errors.New("no fields to update")
	ErrUsernameExists    = errors.New("username already exists")
	ErrCategorySlugExists = errors.New("category slug already exists")

	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")

	ErrCacheMiss = errors.New("cache miss")
)
