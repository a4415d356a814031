package cms

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/icons"
	"github.com/dmitrymomot/daybook/pkg/slug"
)

// sectionKeyFrom normalizes a section key to slug form so "Hero Block"
// and "hero-block" address the same row.
func sectionKeyFrom(raw string) (string, error) {
	k := slug.Make(raw)
	if k == "" {
		return "", ErrSectionKeyRequired
	}
	return k, nil
}

const sectionColumns = "id, key, title, body_html, icon, sort_order, updated_at"

func scanSection(row pgx.Row) (Section, error) {
	var (
		sec  Section
		icon string
	)
	err := row.Scan(&sec.ID, &sec.Key, &sec.Title, &sec.BodyHTML, &icon, &sec.Position, &sec.UpdatedAt)
	if err != nil {
		return Section{}, err
	}
	sec.Icon = icons.Parse(icon)
	return sec, nil
}

// UpsertSection creates or replaces a section by key. The body is
// sanitized with the content policy; unknown icon names fall back to
// the default icon rather than failing the save.
func (s *Service) UpsertSection(ctx context.Context, p SectionParams) (Section, error) {
	key, err := sectionKeyFrom(p.Key)
	if err != nil {
		return Section{}, err
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return Section{}, ErrSectionTitleRequired
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO sections (id, key, title, body_html, icon, sort_order, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (key) DO UPDATE SET
		   title = EXCLUDED.title,
		   body_html = EXCLUDED.body_html,
		   icon = EXCLUDED.icon,
		   sort_order = EXCLUDED.sort_order,
		   updated_at = EXCLUDED.updated_at
		 RETURNING `+sectionColumns,
		uuid.New(), key, title, s.policy.Sanitize(p.Body), icons.Parse(p.Icon).String(),
		p.Position, time.Now().UTC(),
	)

	sec, err := scanSection(row)
	if err != nil {
		return Section{}, errors.Join(ErrQueryFailed, err)
	}

	s.invalidateSections(ctx)
	return sec, nil
}

// ListSections returns all sections ordered by position. Results are
// cached and invalidated by every section write.
func (s *Service) ListSections(ctx context.Context) ([]Section, error) {
	return cache.GetOrSet(ctx, s.sections, sectionsKey, func(ctx context.Context) ([]Section, time.Duration, error) {
		secs, err := s.listSections(ctx)
		return secs, s.cacheTTL, err
	})
}

func (s *Service) listSections(ctx context.Context) ([]Section, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+sectionColumns+` FROM sections ORDER BY sort_order ASC, key ASC`,
	)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	secs := []Section{}
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		secs = append(secs, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return secs, nil
}

// DeleteSection removes a section by key.
func (s *Service) DeleteSection(ctx context.Context, key string) error {
	key, err := sectionKeyFrom(key)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM sections WHERE key = $1`, key)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.invalidateSections(ctx)
	return nil
}
