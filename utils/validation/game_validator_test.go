package validation

import (
	"math"
	"strings"
	"testing"

	"gamelibrary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGame() models.NewGame {
	return models.NewGame{
		Title:         "Go",
		Category:      "Board",
		ReleaseYear:   2005,
		Rating:        9.0,
		IsMultiplayer: true,
	}
}

func TestValidateGame_Valid(t *testing.T) {
	violations := ValidateGame(validGame(), nil)
	assert.True(t, violations.Empty())
	assert.Empty(t, violations.Fields())
}

func TestValidateGame_Title(t *testing.T) {
	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"empty", "", false},
		{"one char", "G", false},
		{"two chars", "Go", true},
		{"hundred chars", strings.Repeat("a", 100), true},
		{"hundred and one chars", strings.Repeat("a", 101), false},
		{"multibyte counted as characters", strings.Repeat("é", 100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := validGame()
			game.Title = tt.title
			violations := ValidateGame(game, nil)
			if tt.valid {
				assert.NotContains(t, violations, "title")
				return
			}
			assert.Equal(t, MsgTitleLength, violations["title"])
		})
	}
}

func TestValidateGame_CollectsEveryViolation(t *testing.T) {
	game := models.NewGame{Title: "x", Category: "", ReleaseYear: 1970, Rating: 11}

	violations := ValidateGame(game, nil)

	assert.Equal(t, []string{"category", "rating", "release_year", "title"}, violations.Fields())
	assert.Equal(t, MsgCategoryRequired, violations["category"])
	assert.Equal(t, MsgRatingRange, violations["rating"])
	assert.Equal(t, MsgReleaseYearRange, violations["release_year"])
	assert.Equal(t, MsgTitleLength, violations["title"])
}

func TestValidateGame_EmptyCategoryAlwaysFlagged(t *testing.T) {
	game := validGame()
	game.Category = ""

	violations := ValidateGame(game, []string{"Board", "Puzzle"})

	require.Len(t, violations, 1)
	assert.Equal(t, MsgCategoryRequired, violations["category"])
}

func TestValidateGame_CategoryMembership(t *testing.T) {
	game := validGame()
	game.Category = "Racing"

	t.Run("unknown category with a set", func(t *testing.T) {
		violations := ValidateGame(game, []string{"Board", "Puzzle"})
		assert.Equal(t, MsgCategoryUnknown, violations["category"])
	})

	t.Run("empty set falls back to the non-empty check", func(t *testing.T) {
		violations := ValidateGame(game, []string{})
		assert.True(t, violations.Empty())
	})

	t.Run("known category", func(t *testing.T) {
		violations := ValidateGame(game, []string{"Board", "Racing"})
		assert.True(t, violations.Empty())
	})
}

func TestValidateGame_ReleaseYearBounds(t *testing.T) {
	for year, valid := range map[int]bool{
		0:    false,
		1970: false,
		1971: true,
		2024: true,
		2025: false,
		3000: false,
	} {
		game := validGame()
		game.ReleaseYear = year
		_, flagged := ValidateGame(game, nil)["release_year"]
		assert.Equal(t, !valid, flagged, "release year %d", year)
	}
}

func TestValidateGame_RatingBounds(t *testing.T) {
	for _, tt := range []struct {
		rating float64
		valid  bool
	}{
		{-0.1, false},
		{0, true},
		{5.5, true},
		{10, true},
		{10.01, false},
		{math.NaN(), false},
	} {
		game := validGame()
		game.Rating = tt.rating
		_, flagged := ValidateGame(game, nil)["rating"]
		assert.Equal(t, !tt.valid, flagged, "rating %v", tt.rating)
	}
}

func TestValidateGame_Idempotent(t *testing.T) {
	game := models.NewGame{Title: "", Category: "Unknown", ReleaseYear: 2030, Rating: -1}
	categories := []string{"Board"}

	first := ValidateGame(game, categories)
	second := ValidateGame(game, categories)

	assert.Equal(t, first, second)
	assert.Equal(t, models.NewGame{Title: "", Category: "Unknown", ReleaseYear: 2030, Rating: -1}, game)
}

func TestViolations_Error(t *testing.T) {
	violations := Violations{"title": MsgTitleLength, "rating": MsgRatingRange}
	assert.Equal(t,
		"invalid game: rating: "+MsgRatingRange+"; title: "+MsgTitleLength,
		violations.Error())
}
