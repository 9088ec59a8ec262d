// Package common holds the sentinel errors shared by services, repositories
// and the HTTP layer.
package common

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrUserExists       = errors.New("username already exists")
	ErrInvalidToken     = errors.New("invalid token")
	ErrQuotaExceeded    = errors.New("too many posts")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrImmutableField   = errors.New("immutable field")
)
