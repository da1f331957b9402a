// Package users stores PlantPal accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

// Repository persists users. Emails are unique; Create reports
// common.ErrorAlreadyExists for a taken email and lookups report
// common.ErrorNotFound for an unknown one. Callers pass emails already
// normalised (trimmed, lower-case). DeleteByEmail reports
// common.ErrorNotFound when there is nothing to delete.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}
