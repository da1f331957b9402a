package services

import (
	"context"

	"github.com/dmitrijs2005/plantpal/internal/logging"
	"github.com/dmitrijs2005/plantpal/internal/server/storage"
)

// resolveURL returns a fresh URL for key, or fallback when there is no key
// or the store cannot produce one.
func resolveURL(ctx context.Context, files storage.FileStore, log logging.Logger, key, fallback string) string {
	if key == "" {
		return fallback
	}
	url, err := files.URL(ctx, key)
	if err != nil {
		log.Warn(ctx, "cannot resolve file url", "key", key, "error", err)
		return fallback
	}
	return url
}

// removeFile deletes key from the store, logging instead of failing.
func removeFile(ctx context.Context, files storage.FileStore, log logging.Logger, key string) {
	if key == "" {
		return
	}
	if err := files.Delete(ctx, key); err != nil {
		log.Warn(ctx, "cannot delete file", "key", key, "error", err)
	}
}
