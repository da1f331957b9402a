// Package boltx stores JSON-encoded collections in bbolt buckets. A
// collection is a slice serialized under a single key; every change loads
// it, edits it in memory and rewrites it within one bolt transaction.
package boltx

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// EnsureBuckets creates the named top-level buckets if they do not exist.
func EnsureBuckets(db *bolt.DB, names ...string) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, n := range names {
			if _, err := tx.CreateBucketIfNotExists([]byte(n)); err != nil {
				return fmt.Errorf("create bucket %s: %w", n, err)
			}
		}
		return nil
	})
}

// Get decodes the value stored under key into v. It reports false when the
// key is absent.
func Get(tx *bolt.Tx, bucket, key string, v any) (bool, error) {
	b := tx.Bucket([]byte(bucket))
	if b == nil {
		return false, fmt.Errorf("bucket %s not found", bucket)
	}
	raw := b.Get([]byte(key))
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

// Put encodes v and stores it under key.
func Put(tx *bolt.Tx, bucket, key string, v any) error {
	b := tx.Bucket([]byte(bucket))
	if b == nil {
		return fmt.Errorf("bucket %s not found", bucket)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", bucket, key, err)
	}
	return b.Put([]byte(key), raw)
}

// LoadCollection returns the slice stored under key, or nil if absent.
func LoadCollection[T any](tx *bolt.Tx, bucket, key string) ([]T, error) {
	var out []T
	if _, err := Get(tx, bucket, key, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCollection loads the collection under key, passes it to fn and
// stores the result, all inside one read-write transaction. An error from fn
// aborts the transaction and is returned unchanged.
func UpdateCollection[T any](db *bolt.DB, bucket, key string, fn func([]T) ([]T, error)) error {
	return db.Update(func(tx *bolt.Tx) error {
		items, err := LoadCollection[T](tx, bucket, key)
		if err != nil {
			return err
		}
		items, err = fn(items)
		if err != nil {
			return err
		}
		return Put(tx, bucket, key, items)
	})
}

// ViewCollection loads the collection under key in a read-only transaction.
func ViewCollection[T any](db *bolt.DB, bucket, key string) ([]T, error) {
	var out []T
	err := db.View(func(tx *bolt.Tx) error {
		var err error
		out, err = LoadCollection[T](tx, bucket, key)
		return err
	})
	return out, err
}
