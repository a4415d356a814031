package cms

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/media"
	"github.com/dmitrymomot/daybook/pkg/sanitizer"
	"github.com/dmitrymomot/daybook/pkg/slug"
)

const (
	maxPostTitleLen = 200
	maxPostSlugLen  = 80
)

// reservedPostSlugs are words the site routes under /blog; a post slug
// must never shadow them.
var reservedPostSlugs = []string{"new", "edit", "drafts", "feed", "rss", "admin"}

func validatePostTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxPostTitleLen {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func postExcerpt(raw string) string {
	return strings.TrimSpace(sanitizer.StripHTML(raw))
}

// uniquePostSlug derives a slug from the title. Reserved words get a
// random suffix via the slug package; a collision with an existing post
// gets one here.
func (s *Service) uniquePostSlug(ctx context.Context, title string, excludeID uuid.UUID) (string, error) {
	base := slug.Make(title, slug.MaxLength(maxPostSlugLen), slug.ReservedSlugs(reservedPostSlugs...))
	if base == "" {
		return slug.Make(title, slug.MaxLength(maxPostSlugLen), slug.WithSuffix(6)), nil
	}

	taken, err := s.postSlugTaken(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return slug.Make(title, slug.MaxLength(maxPostSlugLen), slug.WithSuffix(6)), nil
}

func (s *Service) postSlugTaken(ctx context.Context, candidate string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)`,
		candidate, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, errors.Join(ErrQueryFailed, err)
	}
	return taken, nil
}

const postColumns = "id, slug, title, excerpt, body_html, cover_url, cover_key, published, published_at, created_at, updated_at"

func scanPost(row pgx.Row) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.BodyHTML, &p.CoverURL, &p.CoverKey,
		&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreatePost inserts a draft post. The body is sanitized with the
// content policy and the slug is derived from the title.
func (s *Service) CreatePost(ctx context.Context, p PostParams) (Post, error) {
	title, err := validatePostTitle(p.Title)
	if err != nil {
		return Post{}, err
	}

	postID := uuid.New()
	sl, err := s.uniquePostSlug(ctx, title, postID)
	if err != nil {
		return Post{}, err
	}

	now := time.Now().UTC()
	post := Post{
		ID:        postID,
		Slug:      sl,
		Title:     title,
		Excerpt:   postExcerpt(p.Excerpt),
		BodyHTML:  s.policy.Sanitize(p.Body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO posts (id, slug, title, excerpt, body_html, cover_url, cover_key, published, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		post.ID, post.Slug, post.Title, post.Excerpt, post.BodyHTML, post.CoverURL, post.CoverKey,
		post.Published, post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return Post{}, errors.Join(ErrQueryFailed, err)
	}
	return post, nil
}

// UpdatePost replaces a post's title, excerpt, and body. The slug is
// re-derived only when the title changed, so published URLs stay stable
// under copy edits.
func (s *Service) UpdatePost(ctx context.Context, postID uuid.UUID, p PostParams) (Post, error) {
	title, err := validatePostTitle(p.Title)
	if err != nil {
		return Post{}, err
	}

	current, err := s.GetPost(ctx, postID)
	if err != nil {
		return Post{}, err
	}

	sl := current.Slug
	if title != current.Title {
		sl, err = s.uniquePostSlug(ctx, title, postID)
		if err != nil {
			return Post{}, err
		}
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE posts SET slug = $1, title = $2, excerpt = $3, body_html = $4, updated_at = $5
		 WHERE id = $6
		 RETURNING `+postColumns,
		sl, title, postExcerpt(p.Excerpt), s.policy.Sanitize(p.Body), time.Now().UTC(), postID,
	)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Join(ErrQueryFailed, err)
	}

	s.invalidatePost(ctx, current.Slug)
	if post.Slug != current.Slug {
		s.invalidatePost(ctx, post.Slug)
	}
	return post, nil
}

// PublishPost makes a post visible to visitors. The publish date is set
// once; re-publishing after an unpublish keeps the original date.
func (s *Service) PublishPost(ctx context.Context, postID uuid.UUID) (Post, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE posts SET published = TRUE, published_at = COALESCE(published_at, $1), updated_at = $1
		 WHERE id = $2
		 RETURNING `+postColumns,
		time.Now().UTC(), postID,
	)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Join(ErrQueryFailed, err)
	}

	s.invalidatePost(ctx, post.Slug)
	return post, nil
}

// UnpublishPost hides a post from visitors and drops it from the cache
// so the change takes effect immediately.
func (s *Service) UnpublishPost(ctx context.Context, postID uuid.UUID) (Post, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE posts SET published = FALSE, updated_at = $1
		 WHERE id = $2
		 RETURNING `+postColumns,
		time.Now().UTC(), postID,
	)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Join(ErrQueryFailed, err)
	}

	s.invalidatePost(ctx, post.Slug)
	return post, nil
}

// GetPost fetches a post by ID regardless of publish state. Admin path.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (Post, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`,
		postID,
	)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Join(ErrQueryFailed, err)
	}
	return post, nil
}

// GetPostBySlug fetches a published post by slug. Visitor path; results
// are cached and invalidated by every write that touches the slug.
// Drafts are not served here, use GetPost.
func (s *Service) GetPostBySlug(ctx context.Context, sl string) (Post, error) {
	return cache.GetOrSet(ctx, s.posts, postKey(sl), func(ctx context.Context) (Post, time.Duration, error) {
		row := s.pool.QueryRow(ctx,
			`SELECT `+postColumns+` FROM posts WHERE slug = $1 AND published`,
			sl,
		)

		post, err := scanPost(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return Post{}, 0, ErrNotFound
			}
			return Post{}, 0, errors.Join(ErrQueryFailed, err)
		}
		return post, s.cacheTTL, nil
	})
}

// ListPosts returns published posts newest first. With includeDrafts it
// returns everything ordered by creation time, for the admin screen.
func (s *Service) ListPosts(ctx context.Context, includeDrafts bool) ([]Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE published ORDER BY published_at DESC`
	if includeDrafts {
		query = `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return posts, nil
}

// DeletePost removes a post and its cover object.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	var sl, coverKey string
	err := s.pool.QueryRow(ctx,
		`DELETE FROM posts WHERE id = $1 RETURNING slug, cover_key`,
		postID,
	).Scan(&sl, &coverKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return errors.Join(ErrQueryFailed, err)
	}

	s.invalidatePost(ctx, sl)
	s.deleteCover(ctx, coverKey)
	return nil
}

// UploadCover stores a cover image and records its public URL on the
// post. The previous cover object, if any, is deleted once the new one
// is in place.
func (s *Service) UploadCover(ctx context.Context, postID uuid.UUID, r io.Reader, size int64) (Post, error) {
	if s.storage == nil {
		return Post{}, ErrStorageRequired
	}

	current, err := s.GetPost(ctx, postID)
	if err != nil {
		return Post{}, err
	}

	obj, err := s.storage.Upload(ctx, r, size,
		media.WithKind(media.KindCover),
		media.WithOwner(postID.String()),
	)
	if err != nil {
		return Post{}, err
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE posts SET cover_url = $1, cover_key = $2, updated_at = $3
		 WHERE id = $4
		 RETURNING `+postColumns,
		obj.URL, obj.Key, time.Now().UTC(), postID,
	)

	post, err := scanPost(row)
	if err != nil {
		s.deleteCover(ctx, obj.Key)
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Join(ErrQueryFailed, err)
	}

	if current.CoverKey != "" && current.CoverKey != post.CoverKey {
		s.deleteCover(ctx, current.CoverKey)
	}
	s.invalidatePost(ctx, post.Slug)
	return post, nil
}

// deleteCover removes a cover object. Failures are logged, not
// returned; an orphaned object is harmless.
func (s *Service) deleteCover(ctx context.Context, key string) {
	if key == "" || s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to delete cover object",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
