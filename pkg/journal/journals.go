package journal

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/daybook/pkg/cache"
	"github.com/dmitrymomot/daybook/pkg/slug"
)

const maxJournalNameLen = 100

func validateJournalName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrJournalNameRequired
	}
	if utf8.RuneCountInString(name) > maxJournalNameLen {
		return "", ErrJournalNameTooLong
	}
	return name, nil
}

// journalSlug derives a URL slug from a journal name. Names with no
// sluggable characters (all emoji, all punctuation) fall back to a
// random suffix so the slug is never empty.
func journalSlug(name string) string {
	s := slug.Make(name)
	if s == "" {
		s = slug.Make(name, slug.WithSuffix(6))
	}
	return s
}

const journalColumns = "id, owner_id, name, slug, color, created_at, updated_at"

func scanJournal(row pgx.Row) (Journal, error) {
	var j Journal
	err := row.Scan(&j.ID, &j.OwnerID, &j.Name, &j.Slug, &j.Color, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

// CreateJournal inserts a new journal for the owner. The slug is
// derived from the name.
func (s *Service) CreateJournal(ctx context.Context, ownerID uuid.UUID, name, color string) (Journal, error) {
	name, err := validateJournalName(name)
	if err != nil {
		return Journal{}, err
	}

	now := time.Now().UTC()
	j := Journal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Slug:      journalSlug(name),
		Color:     strings.TrimSpace(color),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO journals (id, owner_id, name, slug, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.OwnerID, j.Name, j.Slug, j.Color, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return Journal{}, errors.Join(ErrQueryFailed, err)
	}

	s.invalidateJournals(ctx, ownerID)
	return j, nil
}

// GetJournal fetches a single journal scoped to the owner.
func (s *Service) GetJournal(ctx context.Context, ownerID, journalID uuid.UUID) (Journal, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+journalColumns+` FROM journals WHERE id = $1 AND owner_id = $2`,
		journalID, ownerID,
	)

	j, err := scanJournal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Journal{}, ErrNotFound
		}
		return Journal{}, errors.Join(ErrQueryFailed, err)
	}
	return j, nil
}

// ListJournals returns the owner's journals ordered by creation time.
// Results are cached per owner and invalidated by every journal write.
func (s *Service) ListJournals(ctx context.Context, ownerID uuid.UUID) ([]Journal, error) {
	return cache.GetOrSet(ctx, s.cache, journalsKey(ownerID), func(ctx context.Context) ([]Journal, time.Duration, error) {
		journals, err := s.listJournals(ctx, ownerID)
		return journals, s.cacheTTL, err
	})
}

func (s *Service) listJournals(ctx context.Context, ownerID uuid.UUID) ([]Journal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+journalColumns+` FROM journals WHERE owner_id = $1 ORDER BY created_at ASC`,
		ownerID,
	)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	journals := []Journal{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		journals = append(journals, j)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return journals, nil
}

// RenameJournal updates a journal's name and re-derives its slug.
func (s *Service) RenameJournal(ctx context.Context, ownerID, journalID uuid.UUID, name string) (Journal, error) {
	name, err := validateJournalName(name)
	if err != nil {
		return Journal{}, err
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE journals SET name = $1, slug = $2, updated_at = $3
		 WHERE id = $4 AND owner_id = $5
		 RETURNING `+journalColumns,
		name, journalSlug(name), time.Now().UTC(), journalID, ownerID,
	)

	j, err := scanJournal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Journal{}, ErrNotFound
		}
		return Journal{}, errors.Join(ErrQueryFailed, err)
	}

	s.invalidateJournals(ctx, ownerID)
	return j, nil
}

// DeleteJournal removes a journal and, through the backend's cascade,
// its entries.
func (s *Service) DeleteJournal(ctx context.Context, ownerID, journalID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM journals WHERE id = $1 AND owner_id = $2`,
		journalID, ownerID,
	)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.invalidateJournals(ctx, ownerID)
	return nil
}
