package preview

import (
	"context"
	"strings"
	"time"
)

// Object is a previewable blob.
type Object struct {
	ID          string
	Name        string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// Ref is a revocable reference to an Object.
type Ref struct {
	ID  string
	URL string
}

// RevokeReason tells why an object left the store.
type RevokeReason string

const (
	Revoked  RevokeReason = "revoked"
	Evicted  RevokeReason = "evicted"
	Replaced RevokeReason = "replaced"
)

// Store keeps preview objects behind revocable references.
type Store interface {
	// Create stores data and returns a new reference to it.
	Create(ctx context.Context, name, contentType string, data []byte) (Ref, error)
	// Replace creates a new reference and revokes previous if it is still
	// live. An empty previous id only creates.
	Replace(ctx context.Context, previous, name, contentType string, data []byte) (Ref, error)
	// Get returns the object behind id or ErrNotFound.
	Get(ctx context.Context, id string) (Object, error)
	// Revoke releases the reference. Revoking an unknown id returns ErrNotFound.
	Revoke(ctx context.Context, id string) error
	// URL returns the path a reference id is served at.
	URL(id string) string
}

// Counter is implemented by stores that know how many references are live.
type Counter interface {
	Len() int
}

type options struct {
	basePath string
	now      func() time.Time
	onRevoke func(obj Object, reason RevokeReason)
}

func newOptions(opts []Option) options {
	o := options{
		basePath: "/preview",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) url(id string) string {
	return o.basePath + "/" + id
}

func (o options) revoked(obj Object, reason RevokeReason) {
	if o.onRevoke != nil {
		o.onRevoke(obj, reason)
	}
}

// Option configures a Store.
type Option func(*options)

// WithBasePath sets the URL prefix references are served under. Default "/preview".
func WithBasePath(path string) Option {
	return func(o *options) {
		o.basePath = "/" + strings.Trim(path, "/")
	}
}

// WithRevokeCallback registers fn to run whenever an object is released by
// the store. The memory store calls fn with its lock held; fn must not call
// back into the store.
func WithRevokeCallback(fn func(obj Object, reason RevokeReason)) Option {
	return func(o *options) {
		o.onRevoke = fn
	}
}

// WithClock sets the time source for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
