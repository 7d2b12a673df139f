package object

import (
	"context"
	"io"
)

// Stored describes a persisted object.
type Stored struct {
	Key       string
	URL       string
	SizeBytes int64
	MimeType  string
}

// ObjectStore defines the contract for saving and retrieving binary objects.
// Saving the same user's résumé twice overwrites the previous object, so the
// returned URL is stable per user.
type ObjectStore interface {
	SaveResume(ctx context.Context, userID string, fileName string, r io.Reader) (Stored, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
