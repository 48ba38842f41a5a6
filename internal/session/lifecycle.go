// Package session tracks each owner's position in the sign-in and onboarding
// flow as an explicit state machine, so every surface can ask one source of
// truth instead of inferring state from scattered flags.
package session

import (
	"context"
	"fmt"
	"sync"

	"compass-utils/internal/logging"
	"compass-utils/internal/store"
	"compass-utils/pkg/models"
)

// State is a session lifecycle state.
type State string

const (
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateAuthenticating  State = "AUTHENTICATING"
	StateOnboarding      State = "ONBOARDING"
	StateActive          State = "ACTIVE"
)

// legalTransitions enumerates every allowed state change. Anything not listed
// is rejected rather than silently coerced.
var legalTransitions = map[State][]State{
	StateUnauthenticated: {StateAuthenticating},
	StateAuthenticating:  {StateOnboarding, StateActive, StateUnauthenticated},
	StateOnboarding:      {StateActive, StateUnauthenticated},
	StateActive:          {StateUnauthenticated},
}

// Manager holds the lifecycle state for every owner and coordinates the
// profile and tracker stores on the transitions that must clear them.
type Manager struct {
	mu       sync.RWMutex
	states   map[string]State
	profiles store.ProfileStore
	trackers *store.TrackerStore
	logger   logging.Logger
}

// NewManager creates a new session lifecycle manager
func NewManager(profiles store.ProfileStore, trackers *store.TrackerStore) *Manager {
	return &Manager{
		states:   make(map[string]State),
		profiles: profiles,
		trackers: trackers,
		logger:   logging.GetGlobalLogger(),
	}
}

// CurrentState returns the owner's lifecycle state. Owners never seen before
// are unauthenticated.
func (m *Manager) CurrentState(ownerID string) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.states[ownerID]
	if !exists {
		return StateUnauthenticated
	}
	return state
}

// BeginAuthentication moves an unauthenticated owner into the sign-in flow
func (m *Manager) BeginAuthentication(ownerID string) error {
	return m.transition(ownerID, StateAuthenticating)
}

// CompleteAuthentication settles a sign-in attempt. Owners with a stored
// profile land on the dashboard; owners without one must onboard first.
func (m *Manager) CompleteAuthentication(ctx context.Context, ownerID string) (State, error) {
	_, err := m.profiles.Load(ctx, ownerID)
	if err == store.ErrProfileNotFound {
		if terr := m.transition(ownerID, StateOnboarding); terr != nil {
			return m.CurrentState(ownerID), terr
		}
		return StateOnboarding, nil
	}
	if err != nil {
		return m.CurrentState(ownerID), fmt.Errorf("failed to check for stored profile: %w", err)
	}

	if terr := m.transition(ownerID, StateActive); terr != nil {
		return m.CurrentState(ownerID), terr
	}
	return StateActive, nil
}

// CompleteOnboarding saves the finished profile and activates the session
func (m *Manager) CompleteOnboarding(ctx context.Context, ownerID string, profile *models.Profile) error {
	if m.CurrentState(ownerID) != StateOnboarding {
		return fmt.Errorf("cannot complete onboarding from state %s", m.CurrentState(ownerID))
	}

	if err := m.profiles.Save(ctx, ownerID, profile); err != nil {
		return fmt.Errorf("failed to save onboarding profile: %w", err)
	}

	return m.transition(ownerID, StateActive)
}

// Logout ends the session and wipes the owner's profile and trackers
func (m *Manager) Logout(ctx context.Context, ownerID string) error {
	if err := m.transition(ownerID, StateUnauthenticated); err != nil {
		return err
	}

	if err := m.profiles.Clear(ctx, ownerID); err != nil {
		m.logger.Error("Failed to clear profile on logout", map[string]interface{}{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
	}
	m.trackers.ClearAll(ownerID)

	return nil
}

// ColdStart resets an owner to a clean slate before any session restore runs.
// The clear happens first and unconditionally, so stale profile data from a
// previous process can never leak into a fresh session.
func (m *Manager) ColdStart(ctx context.Context, ownerID string) error {
	m.mu.Lock()
	m.states[ownerID] = StateUnauthenticated
	m.mu.Unlock()

	if err := m.profiles.Clear(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to clear profile on cold start: %w", err)
	}
	m.trackers.ClearAll(ownerID)

	m.logger.Info("Session cold start completed", map[string]interface{}{
		"owner_id": ownerID,
	})
	return nil
}

func (m *Manager) transition(ownerID string, to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, exists := m.states[ownerID]
	if !exists {
		from = StateUnauthenticated
	}

	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			m.states[ownerID] = to
			m.logger.Debug("Session state transition", map[string]interface{}{
				"owner_id": ownerID,
				"from":     string(from),
				"to":       string(to),
			})
			return nil
		}
	}

	return fmt.Errorf("illegal session transition from %s to %s", from, to)
}
