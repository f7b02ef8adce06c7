package domain

import "errors"

var (
	// ErrInvalidDefinition indicates a concept or dimension definition is
	// missing a required field. It signals an upstream contract violation.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrNoDocuments indicates ingestion found nothing to analyse.
	ErrNoDocuments = errors.New("no documents found")
)
