package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-cli/internal/api"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndListAttempts(t *testing.T) {
	db := openTestDB(t)

	id, err := db.RecordAttempt("Variables", api.LevelBeginner, &api.Evaluation{
		Score: 4, Total: 5, Percentage: 80, XPEarned: 40,
		WeakAreas: []string{"scoping"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = db.RecordAttempt("Loops", api.LevelBeginner, &api.Evaluation{
		Score: 2, Total: 5, Percentage: 40, XPEarned: 10,
	})
	require.NoError(t, err)

	attempts, err := db.RecentAttempts(10)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "Loops", attempts[0].Topic)
	assert.Equal(t, "Variables", attempts[1].Topic)
	assert.Equal(t, []string{"scoping"}, attempts[1].WeakAreas)
	assert.Equal(t, 40, attempts[1].XPEarned)
}

func TestTopicBest(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.TopicBest("Variables")
	require.NoError(t, err)
	assert.False(t, ok)

	for _, pct := range []float64{40, 90, 70} {
		_, err := db.RecordAttempt("Variables", api.LevelBeginner, &api.Evaluation{Percentage: pct})
		require.NoError(t, err)
	}

	best, ok, err := db.TopicBest("Variables")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 90.0, best)
}

func TestProgressMirrorRoundTrip(t *testing.T) {
	db := openTestDB(t)

	_, _, ok, err := db.LoadProgress()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SaveProgress(&api.Progress{
		Level: api.LevelBeginner, XP: 420, TopicsCompleted: []string{"Variables"},
	}))
	require.NoError(t, db.SaveProgress(&api.Progress{
		Level: api.LevelIntermediate, XP: 480, TopicsCompleted: []string{"Variables", "Loops"},
	}))

	p, syncedAt, ok, err := db.LoadProgress()
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, syncedAt.IsZero())
	assert.Equal(t, api.LevelIntermediate, p.Level)
	assert.Equal(t, 480, p.XP)
	assert.Len(t, p.TopicsCompleted, 2)
}

func TestReset(t *testing.T) {
	db := openTestDB(t)

	_, err := db.RecordAttempt("Variables", api.LevelBeginner, &api.Evaluation{Percentage: 50})
	require.NoError(t, err)
	require.NoError(t, db.SaveProgress(&api.Progress{XP: 10}))

	require.NoError(t, db.Reset())

	attempts, err := db.RecentAttempts(10)
	require.NoError(t, err)
	assert.Empty(t, attempts)

	_, _, ok, err := db.LoadProgress()
	require.NoError(t, err)
	assert.False(t, ok)
}
