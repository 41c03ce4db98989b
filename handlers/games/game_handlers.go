package games

import (
	"log/slog"
	"net/http"

	"gamelibrary/metrics"
	"gamelibrary/models"
	"gamelibrary/services"
	"gamelibrary/utils/response"
	"gamelibrary/utils/validation"

	"github.com/gin-gonic/gin"
)

// Handler serves the catalog store to presentation clients
type Handler struct {
	Games      GameStore
	Categories CategorySource
	Logger     *slog.Logger
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// GetGames returns the games held for this session
// @Summary Get all games
// @Description Get the games held by the catalog store together with its load status
// @Tags Games
// @Produce json
// @Success 200 {object} GamesResponse
// @Router /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.Games.Snapshot())
}

// LoadGames fetches the full game set from the remote catalog
// @Summary Reload games
// @Description Replace the held games with the remote catalog. A failed load keeps the previous games and reports the failure in the status.
// @Tags Games
// @Produce json
// @Success 200 {object} GamesResponse
// @Router /games/load [post]
func (h *Handler) LoadGames(c *gin.Context) {
	h.Games.Load(c.Request.Context())
	c.JSON(http.StatusOK, h.Games.Snapshot())
}

// CreateGame validates a new game and submits it to the remote catalog
// @Summary Add a game
// @Description Validate the game against the field rules and the known categories, then submit it. The game is only added once the remote catalog confirmed it.
// @Tags Games
// @Accept json
// @Produce json
// @Param game body models.NewGame true "Game to add"
// @Success 201 {object} models.Game
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /games [post]
// @Security Bearer
func (h *Handler) CreateGame(c *gin.Context) {
	var candidate models.NewGame
	if err := c.ShouldBindJSON(&candidate); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequestBody)
		return
	}

	violations := validation.ValidateGame(candidate, h.Categories.Categories())
	if !violations.Empty() {
		for _, field := range violations.Fields() {
			metrics.ValidationRejections.WithLabelValues(field).Inc()
		}
		h.logger().Debug("Game rejected", "fields", violations.Fields())
		response.ValidationError(c, violations)
		return
	}

	result := h.Games.Append(c.Request.Context(), candidate)
	if !result.Success {
		message := services.ServerMessage(result.Err)
		if message == "" {
			message = services.MsgAddGameFailed
		}
		response.Error(c, http.StatusBadGateway, message)
		return
	}

	c.JSON(http.StatusCreated, result.Record)
}

// GetCategories returns the allowed game categories
// @Summary Get game categories
// @Description Get the allowed categories with their loading state. A failed load yields an empty list and an error message.
// @Tags Games
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /game-categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Categories.Snapshot())
}

// LoadCategories fetches the category set again
// @Summary Reload game categories
// @Tags Games
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /game-categories/load [post]
func (h *Handler) LoadCategories(c *gin.Context) {
	h.Categories.Load(c.Request.Context())
	c.JSON(http.StatusOK, h.Categories.Snapshot())
}
