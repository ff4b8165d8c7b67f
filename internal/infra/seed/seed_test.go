package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/testutil"
)

func newSeeder(tasks *testutil.MockTaskRepository, profile *testutil.MockProfileRepository, now time.Time) *Seeder {
	return New(
		tasks,
		testutil.NewMockMealRepository(),
		testutil.NewMockWorkoutRepository(),
		testutil.NewMockProjectRepository(),
		profile,
		&testutil.MockClock{NowTime: now},
	)
}

func TestSeed(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	tasks := testutil.NewMockTaskRepository()
	profile := &testutil.MockProfileRepository{}

	require.NoError(t, newSeeder(tasks, profile, now).Seed())

	require.NotNil(t, profile.Stored)
	assert.Equal(t, "Local User", profile.Stored.DisplayName)
	assert.Equal(t, "local@fittrack.app", profile.Stored.Email)

	assert.NotEmpty(t, tasks.Tasks)

	// At least one repeating task must carry a normalized rule.
	repeating := 0
	for id := range tasks.Enhancements {
		rule := domain.ParseRepeat(tasks.Enhancements[id].Repeat)
		if rule.IsRepeating() {
			repeating++
		}
	}
	assert.Greater(t, repeating, 0)
}

func TestSeed_KeepsExistingProfile(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	tasks := testutil.NewMockTaskRepository()
	existing := &domain.Profile{DisplayName: "Someone Else"}
	profile := &testutil.MockProfileRepository{Stored: existing}

	require.NoError(t, newSeeder(tasks, profile, now).Seed())
	assert.Same(t, existing, profile.Stored)
}

func TestSeed_DueTimeCarriedIntoTask(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	tasks := testutil.NewMockTaskRepository()

	require.NoError(t, newSeeder(tasks, &testutil.MockProfileRepository{}, now).Seed())

	found := false
	for _, task := range tasks.Tasks {
		if task.DueAt == nil {
			continue
		}
		found = true
		assert.Equal(t, domain.NewDateKey(*task.DueAt), task.Date)
	}
	assert.True(t, found, "expected at least one seeded task with a due timestamp")
}
