package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gamelibrary/config"
	"gamelibrary/models"
	"gamelibrary/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeCatalog(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	posts := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/game-categories":
			_ = json.NewEncoder(w).Encode([]string{"Board", "Puzzle"})
		case r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode([]models.Game{
				{ID: 1, Title: "Chess", Category: "Board", ReleaseYear: 1990, Rating: 8.5, IsMultiplayer: true},
			})
		case r.Method == http.MethodPost:
			posts.Add(1)
			var candidate models.NewGame
			_ = json.NewDecoder(r.Body).Decode(&candidate)
			_ = json.NewEncoder(w).Encode(models.Game{ID: 42, Title: candidate.Title, Category: candidate.Category})
		}
	}))
	t.Cleanup(server.Close)
	return server, posts
}

func run(t *testing.T, catalogURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_URL", catalogURL)
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGamesList(t *testing.T) {
	server, _ := newFakeCatalog(t)

	out, _, err := run(t, server.URL, "games", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Chess")
	assert.Contains(t, out, "8.5")
}

func TestGamesList_RemoteDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, _, err := run(t, server.URL, "games", "list")

	assert.EqualError(t, err, "Failed to fetch games. Please refresh the page.")
}

func TestGamesAdd(t *testing.T) {
	server, posts := newFakeCatalog(t)

	out, _, err := run(t, server.URL, "games", "add",
		"--title", "Go", "--category", "Board", "--year", "2005", "--rating", "9", "--multiplayer")

	require.NoError(t, err)
	assert.Equal(t, "Added \"Go\" with id 42\n", out)
	assert.Equal(t, int32(1), posts.Load())
}

func TestGamesAdd_InvalidNeverPosts(t *testing.T) {
	server, posts := newFakeCatalog(t)

	_, stderr, err := run(t, server.URL, "games", "add",
		"--title", "G", "--category", "Racing", "--year", "1970", "--rating", "11")

	require.Error(t, err)
	assert.Contains(t, stderr, "category: Category must be one of the available categories")
	assert.Contains(t, stderr, "title: Title must be between 2 and 100 characters")
	assert.Zero(t, posts.Load())
}

func TestCategories(t *testing.T) {
	server, _ := newFakeCatalog(t)

	out, _, err := run(t, server.URL, "categories")

	require.NoError(t, err)
	assert.Equal(t, "Board\nPuzzle\n", out)
}

func newServeApp(catalogURL, addr string) *app {
	return &app{
		cfg: &config.Config{
			CatalogURL:    catalogURL,
			ListenAddr:    addr,
			TraceExporter: "none",
			RateLimit:     config.DefaultRateLimitConfig,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		client: services.NewCatalogClient(catalogURL, 0),
	}
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return")
		return nil
	}
}

func TestServe_StopsWhenContextEnds(t *testing.T) {
	server, _ := newFakeCatalog(t)
	a := newServeApp(server.URL, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx) }()
	cancel()

	assert.NoError(t, waitServe(t, done))
}

func TestServe_ReportsListenError(t *testing.T) {
	server, _ := newFakeCatalog(t)
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()
	a := newServeApp(server.URL, taken.Addr().String())

	done := make(chan error, 1)
	go func() { done <- a.serve(context.Background()) }()

	assert.Error(t, waitServe(t, done))
}
