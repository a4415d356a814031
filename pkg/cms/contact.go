package cms

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/daybook/pkg/id"
	"github.com/dmitrymomot/daybook/pkg/sanitizer"
)

const (
	maxContactNameLen    = 100
	maxContactMessageLen = 5000

	// contactRefPrefix prefixes submission reference codes ("CT-9X4K2M7Q").
	contactRefPrefix = "CT"
)

// TaskContactNotify is the background task enqueued for each new
// contact submission. The job registry maps it to a handler that mails
// the admin.
const TaskContactNotify = "contact.notify"

// ContactNotifyArgs is the payload of TaskContactNotify.
type ContactNotifyArgs struct {
	SubmissionID uuid.UUID `json:"submission_id"`
}

// SubmitContactParams carries a public contact-form submission.
type SubmitContactParams struct {
	Name    string
	Email   string
	Message string
}

// validEmail reports whether the address parses under RFC 5322 and has
// a dotted domain. Bare hosts like user@localhost are rejected.
func validEmail(addr string) (string, bool) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", false
	}

	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return "", false
	}

	email := parsed.Address
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return "", false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", false
	}
	return email, true
}

const submissionColumns = "id, ref, name, email, message, created_at, read_at"

func scanSubmission(row pgx.Row) (Submission, error) {
	var sub Submission
	err := row.Scan(&sub.ID, &sub.Ref, &sub.Name, &sub.Email, &sub.Message, &sub.CreatedAt, &sub.ReadAt)
	return sub, err
}

// SubmitContact validates and stores a contact-form submission, then
// enqueues the admin notification. The message is reduced to plain text
// before storage. The submission is accepted even when the enqueue
// fails; the admin inbox still shows it.
func (s *Service) SubmitContact(ctx context.Context, p SubmitContactParams) (Submission, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Submission{}, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxContactNameLen {
		return Submission{}, ErrNameTooLong
	}

	email, ok := validEmail(p.Email)
	if !ok {
		return Submission{}, ErrInvalidEmail
	}

	message := strings.TrimSpace(sanitizer.StripHTML(p.Message))
	if message == "" {
		return Submission{}, ErrMessageRequired
	}
	if utf8.RuneCountInString(message) > maxContactMessageLen {
		return Submission{}, ErrMessageTooLong
	}

	sub := Submission{
		ID:        uuid.New(),
		Ref:       id.NewRef(contactRefPrefix),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO contact_submissions (id, ref, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.Ref, sub.Name, sub.Email, sub.Message, sub.CreatedAt,
	)
	if err != nil {
		return Submission{}, errors.Join(ErrQueryFailed, err)
	}

	s.notifyAdmin(ctx, sub)
	return sub, nil
}

// notifyAdmin enqueues the admin notification task. Failures are
// logged, not returned; the submission is already stored.
func (s *Service) notifyAdmin(ctx context.Context, sub Submission) {
	if s.enqueuer == nil {
		return
	}

	err := s.enqueuer.Enqueue(ctx, TaskContactNotify, ContactNotifyArgs{SubmissionID: sub.ID})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to enqueue contact notification",
			slog.String("ref", sub.Ref),
			slog.Any("error", err),
		)
	}
}

// GetSubmission fetches a submission by ID.
func (s *Service) GetSubmission(ctx context.Context, submissionID uuid.UUID) (Submission, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions WHERE id = $1`,
		submissionID,
	)

	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, errors.Join(ErrQueryFailed, err)
	}
	return sub, nil
}

// ListSubmissions returns all submissions newest first.
func (s *Service) ListSubmissions(ctx context.Context) ([]Submission, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	subs := []Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return subs, nil
}

// MarkRead records when the admin first opened a submission. Marking an
// already-read submission keeps the original timestamp.
func (s *Service) MarkRead(ctx context.Context, submissionID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE contact_submissions SET read_at = COALESCE(read_at, $1) WHERE id = $2`,
		time.Now().UTC(), submissionID,
	)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
