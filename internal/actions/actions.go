// Package actions enforces single-flight semantics for the coaching
// operations. Each (owner, surface) pair runs at most one generation at a
// time; a second request while one is in flight is rejected up front instead
// of queued.
package actions

import (
	"fmt"
	"sync"
	"time"

	"compass-utils/internal/logging"
)

// Status of an action slot.
type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusInFlight  Status = "IN_FLIGHT"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// Surfaces the action manager tracks.
const (
	SurfaceRoadmap         = "roadmap"
	SurfaceResumeAnalysis  = "resume_analysis"
	SurfaceRecommendations = "recommendations"
)

// ErrActionInFlight is returned when a generation is already running for the
// same owner and surface.
type ErrActionInFlight struct {
	Surface string
}

func (e *ErrActionInFlight) Error() string {
	return fmt.Sprintf("a %s generation is already in flight", e.Surface)
}

type slot struct {
	status    Status
	startedAt time.Time
	settledAt time.Time
	lastError string
}

// Manager tracks the action state machine per (owner, surface) key.
type Manager struct {
	mu     sync.Mutex
	slots  map[string]*slot
	logger logging.Logger
}

// NewManager creates a new action manager
func NewManager() *Manager {
	return &Manager{
		slots:  make(map[string]*slot),
		logger: logging.GetGlobalLogger(),
	}
}

// Begin claims the slot for the owner and surface. It fails if a generation
// is already in flight; a settled slot (succeeded or failed) can be claimed
// again immediately.
func (m *Manager) Begin(ownerID, surface string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.key(ownerID, surface)
	s, exists := m.slots[key]
	if exists && s.status == StatusInFlight {
		return &ErrActionInFlight{Surface: surface}
	}

	m.slots[key] = &slot{
		status:    StatusInFlight,
		startedAt: time.Now(),
	}

	m.logger.Debug("Action started", map[string]interface{}{
		"owner_id": ownerID,
		"surface":  surface,
	})
	return nil
}

// Finish settles the slot. A nil error marks success, anything else marks
// failure; either way the slot is free for the next Begin.
func (m *Manager) Finish(ownerID, surface string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.key(ownerID, surface)
	s, exists := m.slots[key]
	if !exists || s.status != StatusInFlight {
		return
	}

	s.settledAt = time.Now()
	if err != nil {
		s.status = StatusFailed
		s.lastError = err.Error()
	} else {
		s.status = StatusSucceeded
	}

	m.logger.Debug("Action settled", map[string]interface{}{
		"owner_id": ownerID,
		"surface":  surface,
		"status":   string(s.status),
		"duration": s.settledAt.Sub(s.startedAt),
	})
}

// Status reports the current slot state for the owner and surface
func (m *Manager) Status(ownerID, surface string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.slots[m.key(ownerID, surface)]
	if !exists {
		return StatusIdle
	}
	return s.status
}

// LastError returns the failure message from the most recent settled run, or
// an empty string if the last run succeeded or never ran.
func (m *Manager) LastError(ownerID, surface string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.slots[m.key(ownerID, surface)]
	if !exists {
		return ""
	}
	return s.lastError
}

func (m *Manager) key(ownerID, surface string) string {
	return ownerID + ":" + surface
}
