package media

import "context"

// Store persists image binaries and hands back a reference URL.
// The binary itself never lands in the application database; posts only
// keep the returned URL.
type Store interface {
	// Upload stores the blob and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
