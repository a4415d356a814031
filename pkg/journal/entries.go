package journal

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const maxEntryTitleLen = 200

const entryColumns = "id, journal_id, owner_id, title, body, mood, tags, entry_date, created_at, updated_at"

func validateEntryTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEntryTitleRequired
	}
	if utf8.RuneCountInString(title) > maxEntryTitleLen {
		return "", ErrEntryTitleTooLong
	}
	return title, nil
}

// entryDate truncates to a UTC calendar date, defaulting zero to today.
func entryDate(d time.Time) time.Time {
	if d.IsZero() {
		d = time.Now()
	}
	y, m, day := d.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.JournalID, &e.OwnerID, &e.Title, &e.Body, &e.Mood,
		&e.Tags, &e.EntryDate, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// journalExists reports whether the journal belongs to the owner.
func (s *Service) journalExists(ctx context.Context, ownerID, journalID uuid.UUID) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM journals WHERE id = $1 AND owner_id = $2)`,
		journalID, ownerID,
	).Scan(&ok)
	if err != nil {
		return false, errors.Join(ErrQueryFailed, err)
	}
	return ok, nil
}

// CreateEntry inserts a new entry. The body passes through the content
// sanitization policy before storage; the entry date defaults to today.
func (s *Service) CreateEntry(ctx context.Context, p CreateEntryParams) (Entry, error) {
	title, err := validateEntryTitle(p.Title)
	if err != nil {
		return Entry{}, err
	}

	ok, err := s.journalExists(ctx, p.OwnerID, p.JournalID)
	if err != nil {
		return Entry{}, err
	}
	if !ok {
		return Entry{}, ErrNotFound
	}

	now := time.Now().UTC()
	e := Entry{
		ID:        uuid.New(),
		JournalID: p.JournalID,
		OwnerID:   p.OwnerID,
		Title:     title,
		Body:      s.policy.Sanitize(p.Body),
		Mood:      strings.TrimSpace(p.Mood),
		Tags:      normalizeTags(p.Tags),
		EntryDate: entryDate(p.EntryDate),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO entries (id, journal_id, owner_id, title, body, mood, tags, entry_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.JournalID, e.OwnerID, e.Title, e.Body, e.Mood, e.Tags, e.EntryDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return Entry{}, errors.Join(ErrQueryFailed, err)
	}

	return e, nil
}

// GetEntry fetches a single entry scoped to the owner.
func (s *Service) GetEntry(ctx context.Context, ownerID, entryID uuid.UUID) (Entry, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = $1 AND owner_id = $2`,
		entryID, ownerID,
	)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, errors.Join(ErrQueryFailed, err)
	}
	return e, nil
}

// UpdateEntry replaces an entry's content. The body is re-sanitized; a
// zero entry date moves the entry to today.
func (s *Service) UpdateEntry(ctx context.Context, p UpdateEntryParams) (Entry, error) {
	title, err := validateEntryTitle(p.Title)
	if err != nil {
		return Entry{}, err
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE entries
		 SET title = $1, body = $2, mood = $3, tags = $4, entry_date = $5, updated_at = $6
		 WHERE id = $7 AND owner_id = $8
		 RETURNING `+entryColumns,
		title, s.policy.Sanitize(p.Body), strings.TrimSpace(p.Mood), normalizeTags(p.Tags),
		entryDate(p.EntryDate), time.Now().UTC(), p.ID, p.OwnerID,
	)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, errors.Join(ErrQueryFailed, err)
	}
	return e, nil
}

// DeleteEntry removes an entry scoped to the owner.
func (s *Service) DeleteEntry(ctx context.Context, ownerID, entryID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM entries WHERE id = $1 AND owner_id = $2`,
		entryID, ownerID,
	)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEntries returns the owner's entries newest-first, narrowed by the
// filter.
func (s *Service) ListEntries(ctx context.Context, ownerID uuid.UUID, f Filter) ([]Entry, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + entryColumns + ` FROM entries WHERE owner_id = $1`)
	args := []any{ownerID}

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.JournalID != uuid.Nil {
		sb.WriteString(` AND journal_id = ` + arg(f.JournalID))
	}
	if !f.From.IsZero() {
		sb.WriteString(` AND entry_date >= ` + arg(entryDate(f.From)))
	}
	if !f.To.IsZero() {
		sb.WriteString(` AND entry_date <= ` + arg(entryDate(f.To)))
	}
	if q := normalizeQuery(f.Query); q != "" {
		pattern := arg("%" + q + "%")
		sb.WriteString(` AND (title ILIKE ` + pattern + ` OR body ILIKE ` + pattern + `)`)
	}
	if tags := normalizeTags(f.Tags); len(tags) > 0 {
		sb.WriteString(` AND tags && ` + arg(tags))
	}

	sb.WriteString(` ORDER BY entry_date DESC, created_at DESC`)
	sb.WriteString(` LIMIT ` + arg(f.limit()))
	sb.WriteString(` OFFSET ` + arg(f.offset()))

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return entries, nil
}
