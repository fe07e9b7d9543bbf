package application

import "dircompare/internal/domain"

// Re-export domain types for use by adapters
type (
	MissingFile = domain.MissingFile
)
