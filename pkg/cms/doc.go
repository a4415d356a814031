// Package cms manages the admin-editable site content: blog posts,
// site sections, and contact submissions.
//
// Post and section bodies pass through the content sanitization policy
// on every write, so templates can render BodyHTML without escaping.
// Contact messages are reduced to plain text.
//
// # Usage
//
//	svc, err := cms.NewService(pool,
//	    cms.WithStorage(store),
//	    cms.WithEnqueuer(jobs),
//	    cms.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//
//	post, err := svc.CreatePost(ctx, cms.PostParams{
//	    Title: "Hello, world",
//	    Body:  "<p>First post.</p>",
//	})
//	if err != nil {
//	    return err
//	}
//	post, err = svc.PublishPost(ctx, post.ID)
//
// Visitor reads (GetPostBySlug, ListSections) are cache-backed and
// invalidated by the corresponding writes. Slugs are derived from post
// titles; a title that collides with an existing slug or a reserved
// route word gets a random suffix.
//
// SubmitContact stores the message first and then enqueues the admin
// notification task, so a queue outage never loses a submission.
package cms
