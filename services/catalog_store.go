package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gamelibrary/metrics"
	"gamelibrary/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Notification texts shown to the user
const (
	TitleSuccess = "Success"
	TitleError   = "Error"

	MsgLoadGamesFailed = "Failed to fetch games. Please refresh the page."
	MsgGameAdded       = "Game added successfully!"
	MsgAddGameFailed   = "Failed to add game. Please try again."
	msgLoadInterrupted = "load interrupted"
)

var tracer = otel.Tracer("gamelibrary.services")

// AppendResult is the outcome of CatalogStore.Append. Record is set on
// success, Err on failure.
type AppendResult struct {
	Success bool
	Record  *models.Game
	Err     error
}

// CatalogSnapshot is a consistent view of the store at one instant
type CatalogSnapshot struct {
	Records []models.Game `json:"records"`
	Status  Status        `json:"status"`
}

// CatalogStore holds the games of the current session. The remote service
// owns the source of truth: a game only enters the store after the service
// returned it.
type CatalogStore struct {
	service  GameService
	notifier Notifier
	logger   *slog.Logger

	mu        sync.RWMutex
	records   []models.Game
	status    Status
	loadGen   uint64
	confirmed []models.Game // games confirmed while a load is in flight
}

// NewCatalogStore creates an empty, idle store
func NewCatalogStore(service GameService, notifier Notifier, logger *slog.Logger) *CatalogStore {
	if notifier == nil {
		notifier = Notifiers{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogStore{
		service:  service,
		notifier: notifier,
		logger:   logger.With("component", "catalog_store"),
		records:  []models.Game{},
		status:   idleStatus(),
	}
}

// Load replaces the held games with the full set from the remote service.
// On failure the previous games are kept, the status becomes failed and an
// error notification is emitted. Load never retries, never panics and always
// leaves the loading state, whatever the outcome.
//
// When loads overlap only the most recent one settles the status and the
// list. Games confirmed by Append while a load is in flight are kept when
// that load settles.
func (s *CatalogStore) Load(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "CatalogStore.Load")
	defer span.End()

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.status = loadingStatus()
	s.mu.Unlock()

	settled := false
	defer func() {
		if r := recover(); r != nil {
			s.failLoad(gen, span, fmt.Errorf("list games: panic: %v", r))
		} else if !settled {
			s.failLoad(gen, span, errors.New(msgLoadInterrupted))
		}
	}()

	games, err := s.service.ListGames(ctx)
	if err != nil {
		s.failLoad(gen, span, err)
		settled = true
		return
	}

	records := uniqueByID(games)
	if dropped := len(games) - len(records); dropped > 0 {
		s.logger.Warn("Dropped games with duplicate ids", "dropped", dropped)
	}
	applied := s.settle(gen, records, readyStatus())
	settled = true
	if !applied {
		s.logger.Debug("Discarded superseded games load", "load", gen)
		return
	}

	span.SetAttributes(attribute.Int("games.count", len(records)))
	s.logger.Debug("Games loaded", "count", len(records))
}

func (s *CatalogStore) failLoad(gen uint64, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "load games")

	if !s.settle(gen, nil, failedStatus(err.Error())) {
		s.logger.Debug("Discarded superseded games load", "load", gen, "error", err)
		return
	}
	s.logger.Error("Error fetching games", "error", err)
	emit(s.notifier, models.NotificationError, TitleError, MsgLoadGamesFailed)
}

// settle publishes the end state of load gen and reports whether it did.
// A load that was superseded by a newer one changes nothing. A nil records
// slice keeps the current games; otherwise the fetched games replace them,
// followed by any game confirmed since the load started that the fetch
// did not return.
func (s *CatalogStore) settle(gen uint64, records []models.Game, status Status) bool {
	s.mu.Lock()
	if gen != s.loadGen {
		s.mu.Unlock()
		return false
	}
	if records != nil {
		for _, game := range s.confirmed {
			if indexByID(records, game.ID) < 0 {
				records = append(records, game)
			}
		}
		s.records = records
	}
	s.confirmed = nil
	s.status = status
	count := len(s.records)
	s.mu.Unlock()

	metrics.StoreRecords.Set(float64(count))
	return true
}

// Append submits a validated game to the remote service. The store does not
// validate it again. The game is added at the end of the held list only
// once the service confirmed it; on failure the list is left untouched and
// the error notification carries the server message when there is one.
// A panic in the service is reported as a failure.
func (s *CatalogStore) Append(ctx context.Context, candidate models.NewGame) (result AppendResult) {
	ctx, span := tracer.Start(ctx, "CatalogStore.Append",
		trace.WithAttributes(attribute.String("game.title", candidate.Title)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			result = s.failAppend(span, candidate, fmt.Errorf("create game: panic: %v", r))
		}
	}()

	game, err := s.service.CreateGame(ctx, candidate)
	if err != nil {
		return s.failAppend(span, candidate, err)
	}

	s.mu.Lock()
	// the service is authoritative for a game it already returned once
	s.records = upsertByID(s.records, game)
	if s.status.Loading() {
		s.confirmed = upsertByID(s.confirmed, game)
	}
	count := len(s.records)
	s.mu.Unlock()

	metrics.StoreRecords.Set(float64(count))
	span.SetAttributes(attribute.Int64("game.id", game.ID))
	s.logger.Info("Game added", "id", game.ID, "title", game.Title)
	emit(s.notifier, models.NotificationSuccess, TitleSuccess, MsgGameAdded)

	return AppendResult{Success: true, Record: &game}
}

func (s *CatalogStore) failAppend(span trace.Span, candidate models.NewGame, err error) AppendResult {
	message := ServerMessage(err)
	if message == "" {
		message = MsgAddGameFailed
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "append game")
	s.logger.Error("Error adding game", "title", candidate.Title, "error", err)
	emit(s.notifier, models.NotificationError, TitleError, message)
	return AppendResult{Success: false, Err: err}
}

// Records returns a copy of the held games in insertion order
func (s *CatalogStore) Records() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Game(nil), s.records...)
}

// Status returns the load status
func (s *CatalogStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns the games and the status read together
func (s *CatalogStore) Snapshot() CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CatalogSnapshot{
		Records: append([]models.Game{}, s.records...),
		Status:  s.status,
	}
}

// Len returns the number of held games
func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// upsertByID replaces the game with the same id, or appends it
func upsertByID(games []models.Game, game models.Game) []models.Game {
	if i := indexByID(games, game.ID); i >= 0 {
		games[i] = game
		return games
	}
	return append(games, game)
}

func indexByID(games []models.Game, id int64) int {
	for i, game := range games {
		if game.ID == id {
			return i
		}
	}
	return -1
}

// uniqueByID keeps the first game for every id, preserving order
func uniqueByID(games []models.Game) []models.Game {
	seen := make(map[int64]struct{}, len(games))
	unique := make([]models.Game, 0, len(games))
	for _, game := range games {
		if _, ok := seen[game.ID]; ok {
			continue
		}
		seen[game.ID] = struct{}{}
		unique = append(unique, game)
	}
	return unique
}
