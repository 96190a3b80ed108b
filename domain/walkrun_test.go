package domain

import (
	"testing"

	"github.com/beka-birhanu/driftwalk-api/walk"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWalkRunConfig() WalkRunConfig {
	return WalkRunConfig{
		OwnerID:    uuid.New(),
		Rows:       10,
		Cols:       10,
		Directions: walk.FourDirections,
		Steps:      100,
	}
}

func TestNewWalkRun(t *testing.T) {
	t.Run("valid configuration yields a queued run", func(t *testing.T) {
		run, err := NewWalkRun(validWalkRunConfig())
		require.NoError(t, err)

		assert.Equal(t, StatusQueued, run.Status)
		assert.NotEqual(t, uuid.Nil, run.ID)
		assert.False(t, run.Finished())
		assert.False(t, run.RequestedAt.IsZero())
	})

	t.Run("rejects unsupported directions", func(t *testing.T) {
		config := validWalkRunConfig()
		config.Directions = 6
		_, err := NewWalkRun(config)
		assert.ErrorIs(t, err, ErrUnsupportedDirections)
	})

	t.Run("rejects negative steps", func(t *testing.T) {
		config := validWalkRunConfig()
		config.Steps = -1
		_, err := NewWalkRun(config)
		assert.ErrorIs(t, err, ErrNegativeSteps)
	})

	t.Run("rejects empty extent", func(t *testing.T) {
		config := validWalkRunConfig()
		config.Rows = 0
		_, err := NewWalkRun(config)
		assert.ErrorIs(t, err, ErrInvalidExtent)
	})

	t.Run("rejects oversized extent", func(t *testing.T) {
		config := validWalkRunConfig()
		config.Rows = 4097
		config.Cols = 4097
		_, err := NewWalkRun(config)
		assert.ErrorIs(t, err, ErrExtentTooLarge)
	})
}

func TestWalkRunLifecycle(t *testing.T) {
	t.Run("records a completed walk", func(t *testing.T) {
		run, err := NewWalkRun(validWalkRunConfig())
		require.NoError(t, err)

		run.MarkRunning()
		assert.Equal(t, StatusRunning, run.Status)

		res := &walk.Result{
			Start: walk.Position{Row: 1, Col: 2},
			Final: walk.Position{Row: 3, Col: 4},
			State: walk.Completed,
			Steps: 100,
		}
		run.RecordResult(res, make([]int32, 100))

		assert.Equal(t, StatusCompleted, run.Status)
		assert.True(t, run.Finished())
		assert.Equal(t, 1, run.StartRow)
		assert.Equal(t, 2, run.StartCol)
		assert.Equal(t, 3, run.FinalRow)
		assert.Equal(t, 4, run.FinalCol)
		assert.NotNil(t, run.FinishedAt)
	})

	t.Run("records a stuck walk as a normal outcome", func(t *testing.T) {
		run, err := NewWalkRun(validWalkRunConfig())
		require.NoError(t, err)

		res := &walk.Result{
			State:     walk.Stuck,
			StuckStep: 42,
		}
		run.RecordResult(res, make([]int32, 100))

		assert.Equal(t, StatusStuck, run.Status)
		assert.Equal(t, 42, run.StuckStep)
		assert.True(t, run.Finished())
	})

	t.Run("records a failure without cells", func(t *testing.T) {
		run, err := NewWalkRun(validWalkRunConfig())
		require.NoError(t, err)

		run.MarkFailed()
		assert.Equal(t, StatusFailed, run.Status)
		assert.True(t, run.Finished())
		assert.Nil(t, run.Cells)
	})
}

func TestWalkRunWalkConfig(t *testing.T) {
	seed := int64(99)
	config := validWalkRunConfig()
	config.Revisit = true
	config.Seed = &seed

	run, err := NewWalkRun(config)
	require.NoError(t, err)

	engineCfg := run.WalkConfig()
	assert.Equal(t, walk.FourDirections, engineCfg.Directions)
	assert.Equal(t, 100, engineCfg.Steps)
	assert.True(t, engineCfg.Revisit)
	require.NotNil(t, engineCfg.Seed)
	assert.Equal(t, seed, *engineCfg.Seed)
}
