package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gamelibrary/metrics"
	"gamelibrary/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Remote endpoints of the game library service
const (
	GamesPath          = "/games/"
	GameCategoriesPath = "/game-categories"
)

// ErrDecodeResponse is returned when the remote service answers with a body
// that is not the expected JSON document
var ErrDecodeResponse = errors.New("failed to decode JSON response")

// RemoteError is a non-2xx answer from the remote service
type RemoteError struct {
	StatusCode int
	Status     string
	// Message is the server supplied {"message": ...} field, if any
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog service returned %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("catalog service returned %s", e.Status)
}

// GameService reads and writes games on the remote catalog
type GameService interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, game models.NewGame) (models.Game, error)
}

// CategoryService reads the allowed game categories
type CategoryService interface {
	ListCategories(ctx context.Context) ([]string, error)
}

// CatalogClient talks HTTP/JSON to the remote game library service
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a client for the service at baseURL. A zero
// timeout leaves requests unbounded.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ListGames fetches the full game set
func (c *CatalogClient) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := c.do(ctx, "list_games", http.MethodGet, GamesPath, nil, &games); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// CreateGame submits a new game and returns the record the service stored
func (c *CatalogClient) CreateGame(ctx context.Context, game models.NewGame) (models.Game, error) {
	var created models.Game
	if err := c.do(ctx, "create_game", http.MethodPost, GamesPath, game, &created); err != nil {
		return models.Game{}, fmt.Errorf("create game: %w", err)
	}
	return created, nil
}

// ListCategories fetches the allowed game categories
func (c *CatalogClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, "list_categories", http.MethodGet, GameCategoriesPath, nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (c *CatalogClient) do(ctx context.Context, operation, method, path string, body any, out any) (err error) {
	defer func(start time.Time) {
		metrics.RecordRemoteCall(operation, start, err)
	}(time.Now())

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRemoteError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return nil
}

func newRemoteError(resp *http.Response) *RemoteError {
	remoteErr := &RemoteError{StatusCode: resp.StatusCode, Status: resp.Status}

	var payload struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(raw, &payload) == nil {
		remoteErr.Message = payload.Message
	}
	return remoteErr
}

// ServerMessage returns the message the remote service attached to a
// failure, or "" when there is none
func ServerMessage(err error) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return ""
}
