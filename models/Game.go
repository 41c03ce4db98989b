package models

// Game represents a catalog entry confirmed by the remote game library service
type Game struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	ReleaseYear   int     `json:"release_year"`
	Rating        float64 `json:"rating"`
	IsMultiplayer bool    `json:"is_multiplayer"`
}

// NewGame is a game that has not been submitted yet. It has no ID: only the
// remote service assigns one.
type NewGame struct {
	Title         string  `json:"title" validate:"min=2,max=100"`
	Category      string  `json:"category" validate:"required,known_category"`
	ReleaseYear   int     `json:"release_year" validate:"gt=1970,lt=2025"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=10"`
	IsMultiplayer bool    `json:"is_multiplayer"`
}

// Candidate returns the submittable part of a game
func (g Game) Candidate() NewGame {
	return NewGame{
		Title:         g.Title,
		Category:      g.Category,
		ReleaseYear:   g.ReleaseYear,
		Rating:        g.Rating,
		IsMultiplayer: g.IsMultiplayer,
	}
}
