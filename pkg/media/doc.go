// Package media stores uploaded files in the backend project's
// S3-compatible storage API.
//
// Uploads are partitioned by Kind: blog post covers and journal entry
// attachments each carry their own allowed MIME set and size limit.
// Content types come from magic-byte sniffing, never from filenames,
// and validation runs before any bytes are sent.
//
// # Usage
//
//	var cfg media.Config
//	config.MustLoad(&cfg)
//	store, err := media.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	obj, err := store.Upload(ctx, file, size,
//	    media.WithKind(media.KindCover),
//	)
//	if err != nil {
//	    return err
//	}
//	// obj.URL is the public URL to persist alongside the post.
//
// Keys are generated as {kind}/{owner}/{ulid}.{ext}; the ULID keeps
// keys sortable by upload time and collision-free without coordination.
package media
