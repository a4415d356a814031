package cms

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/job"
	"github.com/dmitrymomot/daybook/pkg/media"
	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

// Enqueuer enqueues background tasks. Satisfied by *job.Manager and
// *job.Enqueuer.
type Enqueuer interface {
	Enqueue(ctx context.Context, name string, payload any, opts ...job.EnqueueOption) error
}

// Service is the data-access layer for the admin-managed site content:
// blog posts, site sections, and contact submissions.
type Service struct {
	pool     *pgxpool.Pool
	posts    cache.Cache[Post]
	sections cache.Cache[[]Section]
	cacheTTL time.Duration
	policy   *sanitizer.Policy
	storage  media.Storage
	enqueuer Enqueuer
	logger   *slog.Logger

	ownsPostCache    bool
	ownsSectionCache bool
}

// NewService creates a CMS service over the given pool. Media storage
// and the task enqueuer are optional; UploadCover fails without the
// former, and SubmitContact skips the admin notification without the
// latter.
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
		posts:    cfg.posts,
		sections: cfg.sections,
		cacheTTL: cfg.cacheTTL,
		policy:   cfg.policy,
		storage:  cfg.storage,
		enqueuer: cfg.enqueuer,
		logger:   cfg.logger,
	}

	if s.posts == nil {
		s.posts = cache.NewMemory[Post](cache.WithDefaultTTL(cfg.cacheTTL))
		s.ownsPostCache = true
	}
	if s.sections == nil {
		s.sections = cache.NewMemory[[]Section](cache.WithDefaultTTL(cfg.cacheTTL))
		s.ownsSectionCache = true
	}

	return s, nil
}

// Close releases the caches the service owns.
func (s *Service) Close() error {
	var err error
	if s.ownsPostCache {
		err = s.posts.Close()
	}
	if s.ownsSectionCache {
		if cerr := s.sections.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func postKey(slug string) string {
	return "post:" + slug
}

const sectionsKey = "sections"

// invalidatePost drops a cached post by slug. Failures are logged; a
// stale post expires on its own TTL.
func (s *Service) invalidatePost(ctx context.Context, slug string) {
	if slug == "" {
		return
	}
	if err := s.posts.Delete(ctx, postKey(slug)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate post cache",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}
}

func (s *Service) invalidateSections(ctx context.Context) {
	if err := s.sections.Delete(ctx, sectionsKey); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate sections cache",
			slog.Any("error", err),
		)
	}
}
