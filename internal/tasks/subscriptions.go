package tasks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriptionStore reads and writes reminder subscriptions in
// Postgres. It expects a reminder_subscriptions table with email
// (primary key), name, enabled, and created_at columns.
type SubscriptionStore struct {
	pool *pgxpool.Pool
}

// NewSubscriptionStore wraps the shared connection pool.
func NewSubscriptionStore(pool *pgxpool.Pool) *SubscriptionStore {
	return &SubscriptionStore{pool: pool}
}

// ActiveSubscriptions returns every enabled subscription, ordered by
// address for stable runs.
func (s *SubscriptionStore) ActiveSubscriptions(ctx context.Context) ([]Subscription, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT email, name FROM reminder_subscriptions WHERE enabled ORDER BY email`,
	)
	if err != nil {
		return nil, fmt.Errorf("query reminder subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var sub Subscription
		if err := rows.Scan(&sub.Email, &sub.Name); err != nil {
			return nil, fmt.Errorf("scan reminder subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reminder subscriptions: %w", err)
	}
	return subs, nil
}

// Subscribe opts an address in, reactivating it if it had unsubscribed
// before. The name is updated on every call so a rename sticks.
func (s *SubscriptionStore) Subscribe(ctx context.Context, email, name string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO reminder_subscriptions (email, name, enabled)
		 VALUES ($1, $2, TRUE)
		 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, enabled = TRUE`,
		email, name,
	)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", email, err)
	}
	return nil
}

// Unsubscribe opts an address out. Unknown addresses are a no-op so an
// unsubscribe link can be clicked twice.
func (s *SubscriptionStore) Unsubscribe(ctx context.Context, email string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE reminder_subscriptions SET enabled = FALSE WHERE email = $1`,
		email,
	)
	if err != nil {
		return fmt.Errorf("unsubscribe %s: %w", email, err)
	}
	return nil
}
