package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-utils/pkg/models"
)

func sampleProfile() *models.Profile {
	return &models.Profile{
		Degree:          "B.Sc Computer Science",
		Year:            "Final Year",
		College:         "IIT Bombay",
		CareerRole:      "Data Engineer",
		CareerGoal:      "Move into data platform work",
		Skills:          []string{"Python", "SQL"},
		ExperienceLevel: "beginner",
	}
}

func TestInMemorySaveLoadClear(t *testing.T) {
	s := NewInMemoryProfileStore()
	ctx := context.Background()

	_, err := s.Load(ctx, "alice")
	assert.Equal(t, ErrProfileNotFound, err)

	require.NoError(t, s.Save(ctx, "alice", sampleProfile()))

	loaded, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", loaded.CareerRole)

	require.NoError(t, s.Clear(ctx, "alice"))
	_, err = s.Load(ctx, "alice")
	assert.Equal(t, ErrProfileNotFound, err)
}

func TestInMemorySaveReplacesWholesale(t *testing.T) {
	s := NewInMemoryProfileStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "alice", sampleProfile()))

	replacement := sampleProfile()
	replacement.CareerRole = "ML Engineer"
	require.NoError(t, s.Save(ctx, "alice", replacement))

	loaded, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "ML Engineer", loaded.CareerRole)
}

func TestInMemoryLoadReturnsCopy(t *testing.T) {
	s := NewInMemoryProfileStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "alice", sampleProfile()))

	loaded, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	loaded.CareerRole = "mutated"

	fresh, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", fresh.CareerRole)
}

func TestInMemoryClearIsIdempotent(t *testing.T) {
	s := NewInMemoryProfileStore()
	assert.NoError(t, s.Clear(context.Background(), "never-seen"))
}
