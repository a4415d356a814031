package media

// UploadOption configures a single Upload call.
type UploadOption func(*uploadOptions)

type uploadOptions struct {
	kind        Kind
	owner       string
	key         string
	contentType string
}

// WithKind sets the upload kind, selecting its validation rules and
// key prefix. Default: KindAttachment.
func WithKind(k Kind) UploadOption {
	return func(o *uploadOptions) {
		o.kind = k
	}
}

// WithOwner scopes the object key under an owner segment:
// {kind}/{owner}/{ulid}.{ext}. Admin uploads omit it.
func WithOwner(ownerID string) UploadOption {
	return func(o *uploadOptions) {
		o.owner = ownerID
	}
}

// WithKey sets an explicit storage key, replacing the generated one.
// Use it to overwrite an object in place.
func WithKey(key string) UploadOption {
	return func(o *uploadOptions) {
		o.key = key
	}
}

// WithContentType overrides magic-byte sniffing. Kind validation still
// runs against the supplied type.
func WithContentType(ct string) UploadOption {
	return func(o *uploadOptions) {
		o.contentType = ct
	}
}
