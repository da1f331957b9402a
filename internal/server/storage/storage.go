// Package storage keeps uploaded plant photos and journal attachments and
// hands out URLs for them.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore stores binary objects by key.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	// URL returns a URL a client can GET the object from.
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewKey returns a fresh storage key for an upload of the given kind
// ("plants", "journal") owned by userID. The original file extension is kept.
func NewKey(userID, kind, filename string) string {
	d := time.Now().UTC()
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("users/%s/%s/%d/%02d/%v%s", userID, kind, d.Year(), d.Month(), uuid.New(), ext)
}
