// Package journal is the data-access layer for journals and their
// entries.
//
// The hosted backend owns the schema, authentication, and row-level
// security. This package issues plain SQL over a pgx pool and scopes
// every statement by the caller-supplied owner ID, so application code
// never sees another user's rows regardless of connection credentials.
//
// # Usage
//
//	svc, err := journal.NewService(pool,
//	    journal.WithLogger(log),
//	    journal.WithCacheTTL(5*time.Minute),
//	)
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//
//	j, err := svc.CreateJournal(ctx, ownerID, "Morning pages", "#f9a8d4")
//	if err != nil {
//	    return err
//	}
//
//	entries, err := svc.ListEntries(ctx, ownerID, journal.Filter{
//	    JournalID: j.ID,
//	    Query:     "café",
//	    Limit:     50,
//	})
//
// Entry bodies pass through the content sanitization policy on every
// write. Free-text search folds case and strips accents from the query
// before matching, so "Café" finds entries typed as "cafe".
//
// Journal lists are cached per owner and invalidated by journal writes.
// Pass a Redis-backed cache via WithCache to share the cache across
// instances.
package journal
