package store

import (
	"context"
	"sync"

	"compass-utils/pkg/models"
)

// InMemoryProfileStore implements ProfileStore using in-memory storage. It is
// the default when no Redis URL is configured.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
}

// NewInMemoryProfileStore creates a new in-memory profile store
func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{
		profiles: make(map[string]*models.Profile),
	}
}

// Save stores a profile for the owner, replacing any existing one
func (s *InMemoryProfileStore) Save(ctx context.Context, ownerID string, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *profile
	s.profiles[ownerID] = &copied
	return nil
}

// Load retrieves the profile for the owner
func (s *InMemoryProfileStore) Load(ctx context.Context, ownerID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[ownerID]
	if !exists {
		return nil, ErrProfileNotFound
	}

	copied := *profile
	return &copied, nil
}

// Clear removes the profile for the owner. Clearing a missing profile is not
// an error; cold starts clear unconditionally.
func (s *InMemoryProfileStore) Clear(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, ownerID)
	return nil
}

// Ping always succeeds for the in-memory store
func (s *InMemoryProfileStore) Ping(ctx context.Context) error {
	return nil
}

// Close releases the store
func (s *InMemoryProfileStore) Close() error {
	return nil
}
