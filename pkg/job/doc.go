// Package job runs background tasks on River, a Postgres-native queue.
//
// A single Manager both enqueues and works jobs, which suits Daybook's
// single-process deployments: the web app and its workers share one pool
// and one binary. Separate producer processes can use Enqueuer instead.
//
// All tasks ride one River job kind; the task name in the payload routes
// execution through a registry, so adding a task never touches migrations.
//
// # Defining tasks
//
// Tasks are plain structs with Name() and Handle() methods. No interface
// import is needed; registration uses structural typing:
//
//	type NotifyContact struct {
//	    cms    *cms.Service
//	    mailer *mailer.Mailer
//	}
//
//	func (t *NotifyContact) Name() string { return "contact.notify" }
//
//	func (t *NotifyContact) Handle(ctx context.Context, p cms.ContactNotifyArgs) error {
//	    sub, err := t.cms.GetSubmission(ctx, p.SubmissionID)
//	    if err != nil {
//	        return err
//	    }
//	    return t.mailer.Send(ctx, mailer.SendParams{...})
//	}
//
// Periodic tasks add a Schedule() method returning a 5-field cron
// expression:
//
//	func (t *DailyReminder) Name() string     { return "reminder.daily" }
//	func (t *DailyReminder) Schedule() string { return "0 18 * * *" }
//	func (t *DailyReminder) Handle(ctx context.Context) error { ... }
//
// # Running
//
//	manager, err := job.NewManager(pool,
//	    job.WithTask(tasks.NewNotifyContact(cmsService, m)),
//	    job.WithScheduledTask(tasks.NewDailyReminder(pool, m)),
//	    job.WithQueue("email", 10),
//	    job.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	if err := manager.Start(ctx); err != nil {
//	    return err
//	}
//	defer manager.Stop(ctx)
//
// Jobs can be enqueued before Start; they wait in the queue.
//
// # Enqueueing
//
//	err := manager.Enqueue(ctx, "contact.notify", cms.ContactNotifyArgs{
//	    SubmissionID: sub.ID,
//	})
//
//	// With options:
//	err = manager.Enqueue(ctx, "reminder.daily", nil,
//	    job.ScheduledIn(24*time.Hour),
//	    job.InQueue("email"),
//	    job.MaxAttempts(3),
//	)
//
// For atomicity with other database writes, enqueue inside the same
// transaction; the job only exists if the transaction commits:
//
//	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
//	    if err := insertSubmission(ctx, tx, sub); err != nil {
//	        return err
//	    }
//	    return manager.EnqueueTx(ctx, tx, "contact.notify", args)
//	})
//
// # Deduplication
//
//	// At most one reminder per recipient per day.
//	manager.Enqueue(ctx, "reminder.daily", payload,
//	    job.UniqueFor(24*time.Hour),
//	    job.UniqueKey(email),
//	)
//
// # Migrations
//
// River needs its own tables (river_job, river_leader, river_queue). Run
// its migrations once before first use; see
// https://riverqueue.com/docs/migrations
package job
