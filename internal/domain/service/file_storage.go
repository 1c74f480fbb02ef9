package service

import (
	"context"
	"io"
)

// FileStorage abstracts the blob store backing receipt and agreement
// uploads. Stored files are opaque to the workflow; customer records only
// carry the returned URL.
type FileStorage interface {
	// Save writes the content under a key derived from the given name and the
	// content itself, and returns the public URL to record on the customer.
	Save(ctx context.Context, name, contentType string, content io.Reader) (string, error)

	// Delete removes a previously stored object by its public URL. Unknown
	// URLs are ignored so that replace-or-remove stays idempotent.
	Delete(ctx context.Context, url string) error
}
