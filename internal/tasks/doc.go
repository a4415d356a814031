// Package tasks holds the background task handlers the daybook app
// registers with its job manager: the admin notification for new
// contact submissions and the daily journaling reminder.
//
// Handlers are plain structs built around small interfaces so tests
// can swap the mailer, the submission store, and the toast center for
// fakes. The app wires the real implementations:
//
//	notifyContact := tasks.NewNotifyContact(cmsService, appMailer, tasks.ContactConfig{
//		AdminEmail: cfg.AdminEmail,
//		AdminURL:   cfg.AppURL + "/admin/submissions",
//		Toasts:     center,
//	})
//	reminder := tasks.NewDailyReminder(tasks.NewSubscriptionStore(pool), appMailer, tasks.ReminderConfig{
//		AppURL: cfg.AppURL,
//	})
//
//	manager, err := job.NewManager(pool,
//		job.WithTask(notifyContact),
//		job.WithScheduledTask(reminder),
//	)
package tasks
