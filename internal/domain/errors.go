package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrRunNotFound       = errors.New("forecast run not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidToken      = errors.New("invalid session token")
	ErrDatasetInvalid    = errors.New("dataset failed validation")
	ErrDatasetNotReady   = errors.New("dataset has no completed forecast run")
	ErrModelUnknown      = errors.New("unknown forecast model")
	ErrEmptyFile         = errors.New("uploaded file is empty")
	ErrUnsupportedFormat = errors.New("unsupported upload format")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
	ErrMissingColumns    = errors.New("required month/demand columns not found")
	ErrUploadFailed      = errors.New("file upload to storage failed")
)
