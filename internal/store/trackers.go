package store

import (
	"errors"
	"sync"

	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// ErrEntryNotFound is returned when a tracker entry does not exist.
var ErrEntryNotFound = errors.New("tracker entry not found")

// TrackerStore holds the three dashboard trackers for all owners. Entries are
// keyed per owner so concurrent sessions never see each other's data.
type TrackerStore struct {
	mu           sync.RWMutex
	applications map[string][]models.Application
	mentors      map[string][]models.Mentor
	learning     map[string][]models.LearningItem
}

// NewTrackerStore creates a new in-memory tracker store
func NewTrackerStore() *TrackerStore {
	return &TrackerStore{
		applications: make(map[string][]models.Application),
		mentors:      make(map[string][]models.Mentor),
		learning:     make(map[string][]models.LearningItem),
	}
}

// AddApplication appends an application entry, assigning its ID
func (s *TrackerStore) AddApplication(ownerID string, app models.Application) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = utils.GenerateEntryID()
	s.applications[ownerID] = append(s.applications[ownerID], app)
	return app
}

// ListApplications returns all application entries for the owner
func (s *TrackerStore) ListApplications(ownerID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.Application, len(s.applications[ownerID]))
	copy(entries, s.applications[ownerID])
	return entries
}

// UpdateApplicationStatus moves an application to a new status
func (s *TrackerStore) UpdateApplicationStatus(ownerID, entryID, status string) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.applications[ownerID] {
		if app.ID == entryID {
			s.applications[ownerID][i].Status = status
			return s.applications[ownerID][i], nil
		}
	}
	return models.Application{}, ErrEntryNotFound
}

// DeleteApplication removes an application entry
func (s *TrackerStore) DeleteApplication(ownerID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.applications[ownerID] {
		if app.ID == entryID {
			s.applications[ownerID] = append(s.applications[ownerID][:i], s.applications[ownerID][i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddMentor appends a mentor entry, assigning its ID
func (s *TrackerStore) AddMentor(ownerID string, mentor models.Mentor) models.Mentor {
	s.mu.Lock()
	defer s.mu.Unlock()

	mentor.ID = utils.GenerateEntryID()
	s.mentors[ownerID] = append(s.mentors[ownerID], mentor)
	return mentor
}

// ListMentors returns all mentor entries for the owner
func (s *TrackerStore) ListMentors(ownerID string) []models.Mentor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.Mentor, len(s.mentors[ownerID]))
	copy(entries, s.mentors[ownerID])
	return entries
}

// SetMentorConnected flips the connected flag on a mentor entry
func (s *TrackerStore) SetMentorConnected(ownerID, entryID string, connected bool) (models.Mentor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, mentor := range s.mentors[ownerID] {
		if mentor.ID == entryID {
			s.mentors[ownerID][i].Connected = connected
			return s.mentors[ownerID][i], nil
		}
	}
	return models.Mentor{}, ErrEntryNotFound
}

// AddLearningItem appends a learning path entry, assigning its ID
func (s *TrackerStore) AddLearningItem(ownerID string, item models.LearningItem) models.LearningItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = utils.GenerateEntryID()
	s.learning[ownerID] = append(s.learning[ownerID], item)
	return item
}

// ListLearningItems returns all learning path entries for the owner
func (s *TrackerStore) ListLearningItems(ownerID string) []models.LearningItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.LearningItem, len(s.learning[ownerID]))
	copy(entries, s.learning[ownerID])
	return entries
}

// SetLearningItemDone marks a learning path entry complete or incomplete
func (s *TrackerStore) SetLearningItemDone(ownerID, entryID string, done bool) (models.LearningItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.learning[ownerID] {
		if item.ID == entryID {
			s.learning[ownerID][i].Done = done
			return s.learning[ownerID][i], nil
		}
	}
	return models.LearningItem{}, ErrEntryNotFound
}

// ClearAll wipes every tracker for the owner. Used on logout and cold start.
func (s *TrackerStore) ClearAll(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.applications, ownerID)
	delete(s.mentors, ownerID)
	delete(s.learning, ownerID)
}
