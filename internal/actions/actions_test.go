package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginFinishLifecycle(t *testing.T) {
	m := NewManager()

	assert.Equal(t, StatusIdle, m.Status("alice", SurfaceRoadmap))

	require.NoError(t, m.Begin("alice", SurfaceRoadmap))
	assert.Equal(t, StatusInFlight, m.Status("alice", SurfaceRoadmap))

	m.Finish("alice", SurfaceRoadmap, nil)
	assert.Equal(t, StatusSucceeded, m.Status("alice", SurfaceRoadmap))
	assert.Empty(t, m.LastError("alice", SurfaceRoadmap))
}

func TestSecondBeginRejectedWhileInFlight(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Begin("alice", SurfaceRoadmap))

	err := m.Begin("alice", SurfaceRoadmap)
	var inFlight *ErrActionInFlight
	require.True(t, errors.As(err, &inFlight))
	assert.Equal(t, SurfaceRoadmap, inFlight.Surface)
}

func TestSurfacesAreIndependent(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Begin("alice", SurfaceRoadmap))
	// A roadmap in flight does not block a recommendations run.
	assert.NoError(t, m.Begin("alice", SurfaceRecommendations))
}

func TestOwnersAreIndependent(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Begin("alice", SurfaceRoadmap))
	assert.NoError(t, m.Begin("bob", SurfaceRoadmap))
}

func TestFailureRecordedAndSlotReusable(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.Begin("alice", SurfaceResumeAnalysis))
	m.Finish("alice", SurfaceResumeAnalysis, errors.New("upstream timeout"))

	assert.Equal(t, StatusFailed, m.Status("alice", SurfaceResumeAnalysis))
	assert.Equal(t, "upstream timeout", m.LastError("alice", SurfaceResumeAnalysis))

	// A settled slot accepts the next run immediately.
	assert.NoError(t, m.Begin("alice", SurfaceResumeAnalysis))
	assert.Equal(t, StatusInFlight, m.Status("alice", SurfaceResumeAnalysis))
}

func TestFinishWithoutBeginIsNoop(t *testing.T) {
	m := NewManager()

	m.Finish("alice", SurfaceRoadmap, nil)
	assert.Equal(t, StatusIdle, m.Status("alice", SurfaceRoadmap))
}
