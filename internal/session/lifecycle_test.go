package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-utils/internal/store"
	"compass-utils/pkg/models"
)

func testProfile() *models.Profile {
	return &models.Profile{
		Name:            "Priya",
		Degree:          "B.Tech Computer Science",
		Year:            "3rd Year",
		College:         "NIT Trichy",
		CareerRole:      "Backend Developer",
		CareerGoal:      "Land a backend internship at a product company",
		Skills:          []string{"Go", "SQL"},
		ExperienceLevel: "intermediate",
		HasProjects:     true,
	}
}

func newTestManager() (*Manager, store.ProfileStore, *store.TrackerStore) {
	profiles := store.NewInMemoryProfileStore()
	trackers := store.NewTrackerStore()
	return NewManager(profiles, trackers), profiles, trackers
}

func TestNewOwnerIsUnauthenticated(t *testing.T) {
	m, _, _ := newTestManager()
	assert.Equal(t, StateUnauthenticated, m.CurrentState("alice"))
}

func TestLoginWithoutProfileLandsOnOnboarding(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.BeginAuthentication("alice"))
	assert.Equal(t, StateAuthenticating, m.CurrentState("alice"))

	state, err := m.CompleteAuthentication(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, StateOnboarding, state)
}

func TestLoginWithStoredProfileActivatesDirectly(t *testing.T) {
	m, profiles, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, profiles.Save(ctx, "alice", testProfile()))

	require.NoError(t, m.BeginAuthentication("alice"))
	state, err := m.CompleteAuthentication(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, StateActive, state)
}

func TestCompleteOnboardingSavesProfileAndActivates(t *testing.T) {
	m, profiles, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.BeginAuthentication("alice"))
	_, err := m.CompleteAuthentication(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, m.CompleteOnboarding(ctx, "alice", testProfile()))
	assert.Equal(t, StateActive, m.CurrentState("alice"))

	saved, err := profiles.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", saved.CareerRole)
}

func TestOnboardingFromWrongStateRejected(t *testing.T) {
	m, _, _ := newTestManager()

	err := m.CompleteOnboarding(context.Background(), "alice", testProfile())
	assert.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.CurrentState("alice"))
}

func TestIllegalTransitionRejected(t *testing.T) {
	m, _, _ := newTestManager()

	// Unauthenticated owners cannot jump straight past authentication.
	require.NoError(t, m.BeginAuthentication("alice"))
	assert.Error(t, m.BeginAuthentication("alice"))
}

func TestLogoutClearsProfileAndTrackers(t *testing.T) {
	m, profiles, trackers := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.BeginAuthentication("alice"))
	_, err := m.CompleteAuthentication(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, m.CompleteOnboarding(ctx, "alice", testProfile()))

	trackers.AddApplication("alice", models.Application{Company: "Google", Role: "SWE Intern", Status: models.ApplicationStatusApplied})

	require.NoError(t, m.Logout(ctx, "alice"))
	assert.Equal(t, StateUnauthenticated, m.CurrentState("alice"))

	_, err = profiles.Load(ctx, "alice")
	assert.Equal(t, store.ErrProfileNotFound, err)
	assert.Empty(t, trackers.ListApplications("alice"))
}

func TestColdStartClearsEverything(t *testing.T) {
	m, profiles, trackers := newTestManager()
	ctx := context.Background()

	// Simulate state left behind by a previous process.
	require.NoError(t, profiles.Save(ctx, "alice", testProfile()))
	trackers.AddMentor("alice", models.Mentor{Name: "Dana"})

	require.NoError(t, m.ColdStart(ctx, "alice"))

	assert.Equal(t, StateUnauthenticated, m.CurrentState("alice"))
	_, err := profiles.Load(ctx, "alice")
	assert.Equal(t, store.ErrProfileNotFound, err)
	assert.Empty(t, trackers.ListMentors("alice"))
}

func TestColdStartFromAnyState(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.BeginAuthentication("alice"))
	_, err := m.CompleteAuthentication(ctx, "alice")
	require.NoError(t, err)

	// Cold start is not a transition; it resets unconditionally.
	require.NoError(t, m.ColdStart(ctx, "alice"))
	assert.Equal(t, StateUnauthenticated, m.CurrentState("alice"))
}
