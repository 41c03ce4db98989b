package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MsgUnknownError is reported when a failure carries no message of its own
const MsgUnknownError = "An unknown error occurred"

// CategorySnapshot is what a game form needs to offer a category picker
type CategorySnapshot struct {
	Categories []string `json:"categories"`
	Loading    bool     `json:"loading"`
	Error      *string  `json:"error"`
}

// CategoryStore holds the allowed game categories. A failed load leaves the
// set empty, which turns the category membership check off rather than
// blocking the form.
type CategoryStore struct {
	service CategoryService
	logger  *slog.Logger

	mu         sync.RWMutex
	categories []string
	status     Status
	loadGen    uint64
}

func NewCategoryStore(service CategoryService, logger *slog.Logger) *CategoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryStore{
		service:    service,
		logger:     logger.With("component", "category_store"),
		categories: []string{},
		status:     idleStatus(),
	}
}

// Load fetches the category set. When loads overlap only the most recent
// one settles. A panic in the service is reported as a failed load.
func (s *CategoryStore) Load(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "CategoryStore.Load")
	defer span.End()

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.status = loadingStatus()
	s.mu.Unlock()

	settled := false
	defer func() {
		if r := recover(); r != nil {
			s.failLoad(gen, span, fmt.Errorf("list categories: panic: %v", r))
		} else if !settled {
			s.failLoad(gen, span, errors.New(MsgUnknownError))
		}
	}()

	categories, err := s.service.ListCategories(ctx)
	if err != nil {
		s.failLoad(gen, span, err)
		settled = true
		return
	}
	if categories == nil {
		categories = []string{}
	}
	s.settle(gen, categories, readyStatus())
	settled = true

	span.SetAttributes(attribute.Int("categories.count", len(categories)))
}

func (s *CategoryStore) failLoad(gen uint64, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "load categories")

	reason := err.Error()
	if reason == "" {
		reason = MsgUnknownError
	}
	if s.settle(gen, nil, failedStatus(reason)) {
		s.logger.Warn("Error fetching game categories", "error", err)
	}
}

// settle publishes the end state of load gen unless a newer load started
func (s *CategoryStore) settle(gen uint64, categories []string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return false
	}
	if categories != nil {
		s.categories = categories
	}
	s.status = status
	return true
}

// Categories returns a copy of the category set, in service order
func (s *CategoryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.categories...)
}

func (s *CategoryStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns categories, loading flag and error read together
func (s *CategoryStore) Snapshot() CategorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := CategorySnapshot{
		Categories: append([]string{}, s.categories...),
		Loading:    s.status.Loading(),
	}
	if s.status.Phase() == PhaseFailed {
		reason := s.status.Err()
		snapshot.Error = &reason
	}
	return snapshot
}
