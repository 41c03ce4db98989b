package games

import (
	"context"

	"gamelibrary/models"
	"gamelibrary/services"
)

// Error message constants
const (
	ErrInvalidRequestBody = "Invalid request body"
)

// GameStore is the part of the catalog store the handlers use
type GameStore interface {
	Load(ctx context.Context)
	Append(ctx context.Context, candidate models.NewGame) services.AppendResult
	Snapshot() services.CatalogSnapshot
}

// CategorySource provides the allowed categories for validation
type CategorySource interface {
	Load(ctx context.Context)
	Categories() []string
	Snapshot() services.CategorySnapshot
}

// GamesResponse is the catalog as seen by presentation clients
type GamesResponse = services.CatalogSnapshot

// CategoriesResponse is the category set with its loading state
type CategoriesResponse = services.CategorySnapshot
