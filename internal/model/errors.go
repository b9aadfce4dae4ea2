package model

import (
	"errors"
)

var (
	// ErrInvalidURL is returned when no default target can be derived from a URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrMissingLanguageType is returned when workflow.language.type is not set.
	ErrMissingLanguageType = errors.New("no language type")
	// ErrMissingAuthor is returned when the config has no authors.
	ErrMissingAuthor = errors.New("no author")
)
