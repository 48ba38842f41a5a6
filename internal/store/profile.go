// Package store holds the persistence layer for profiles and the dashboard
// trackers. Profiles can live in Redis or in memory; trackers are in-memory
// per process, matching their session-scoped lifetime.
package store

import (
	"context"
	"errors"

	"compass-utils/pkg/models"
)

// ErrProfileNotFound is returned when no profile exists for the owner.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore persists one profile per owner. Save replaces wholesale;
// partial updates are not supported because onboarding always produces a
// complete profile.
type ProfileStore interface {
	Save(ctx context.Context, ownerID string, profile *models.Profile) error
	Load(ctx context.Context, ownerID string) (*models.Profile, error)
	Clear(ctx context.Context, ownerID string) error
	Ping(ctx context.Context) error
	Close() error
}
