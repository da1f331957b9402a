// Package metadata is the client's small key/value store. It keeps the
// session token and the signed-in email between runs.
package metadata

import (
	"context"
)

// Repository stores text values by key. A missing key is reported by Get
// with ok set to false.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all values or none of them.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
