package media

import "context"

// Uploader exchanges validated file bytes for a stable public URL. The asset
// host is an opaque external capability; no retries, no local caching.
type Uploader interface {
	Upload(ctx context.Context, f *File) (string, error)
}
