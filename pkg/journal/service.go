package journal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

// Service is the data-access layer for journals and entries.
//
// The hosted backend owns the schema and row-level security; every
// query here additionally scopes by the caller-supplied owner ID, so a
// wrong or missing owner never reaches another user's rows even when
// the service connects with elevated credentials.
type Service struct {
	pool      *pgxpool.Pool
	cache     cache.Cache[[]Journal]
	cacheTTL  time.Duration
	policy    *sanitizer.Policy
	logger    *slog.Logger
	ownsCache bool
}

// NewService creates a journal service over the given pool.
func NewService(pool *pgxpool.Pool, opts ...Option) (*Service, error) {
	if pool == nil {
		return nil, ErrPoolRequired
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.policy == nil {
		cfg.policy = sanitizer.Content()
	}

	s := &Service{
		pool:     pool,
		cache:    cfg.cache,
		cacheTTL: cfg.cacheTTL,
		policy:   cfg.policy,
		logger:   cfg.logger,
	}

	if s.cache == nil {
		s.cache = cache.NewMemory[[]Journal](cache.WithDefaultTTL(cfg.cacheTTL))
		s.ownsCache = true
	}

	return s, nil
}

// Close releases the journal-list cache when the service owns it.
func (s *Service) Close() error {
	if s.ownsCache {
		return s.cache.Close()
	}
	return nil
}

func journalsKey(ownerID uuid.UUID) string {
	return "journals:" + ownerID.String()
}

// invalidateJournals drops the cached journal list for an owner.
// Failures are logged; a stale list expires on its own TTL.
func (s *Service) invalidateJournals(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Delete(ctx, journalsKey(ownerID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate journal list cache",
			slog.String("owner_id", ownerID.String()),
			slog.Any("error", err),
		)
	}
}
