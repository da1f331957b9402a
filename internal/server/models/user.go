// Package models defines server-side records persisted by the repositories.
package models

import (
	"time"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

// User is an account. Passwords are never stored, only a random salt and a
// verifier derived from it.
type User struct {
	ID        string
	FullName  string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

// Plant is a plant record with its owner and the storage key of an uploaded
// photo, if any.
type Plant struct {
	models.Plant
	UserID   string `json:"userId"`
	PhotoKey string `json:"photoKey,omitempty"`
}

// JournalEntry is a journal record with its owner and the storage key of its
// attachment, if any.
type JournalEntry struct {
	models.JournalEntry
	UserID  string `json:"userId"`
	FileKey string `json:"fileKey,omitempty"`
}
