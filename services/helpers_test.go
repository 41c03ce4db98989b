package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gamelibrary/models"
)

// recordingNotifier keeps every notification it receives
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (r *recordingNotifier) Notify(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.notifications...)
}

// fakeGameService lets a test script the remote calls directly
type fakeGameService struct {
	listGames  func(ctx context.Context) ([]models.Game, error)
	createGame func(ctx context.Context, game models.NewGame) (models.Game, error)
}

func (f *fakeGameService) ListGames(ctx context.Context) ([]models.Game, error) {
	return f.listGames(ctx)
}

func (f *fakeGameService) CreateGame(ctx context.Context, game models.NewGame) (models.Game, error) {
	return f.createGame(ctx, game)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// newCatalogServer starts a fake remote catalog service
func newCatalogServer(t *testing.T, handler http.HandlerFunc) *CatalogClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCatalogClient(server.URL, 0)
}

var chess = models.Game{
	ID:            1,
	Title:         "Chess",
	Category:      "Board",
	ReleaseYear:   1990,
	Rating:        8.5,
	IsMultiplayer: true,
}
