// Package llmwire - errors.go
// Defines construction-time validation errors.

package llmwire

import "errors"

var (
	ErrNoModel         = errors.New("model is required")
	ErrNoBaseURL       = errors.New("base URL is required")
	ErrNoCredential    = errors.New("no credential: set an API key, an Azure AD token or a token provider")
	ErrUnknownProvider = errors.New("unknown provider")
)
