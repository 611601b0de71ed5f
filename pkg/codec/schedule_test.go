package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleSingleTask(t *testing.T) {
	tasks, err := ParseSchedule("1-1-08:00-1111111-1-0-1-2-0")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, 1, task.Enabled)
	assert.True(t, task.Active())
	assert.Equal(t, "08:00", task.Time)
	assert.Equal(t, "1111111", task.Repeats)
	assert.Equal(t, 1, task.Once)
	assert.Equal(t, 0, task.MapID)
	assert.Equal(t, 1, task.Suction)
	assert.Equal(t, 2, task.Water)
	assert.Nil(t, task.Options)

	assert.Equal(t, "1-1-08:00-1111111-1-0-1-2-0", FormatSchedule(tasks))
}

func TestScheduleRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"1-1-08:00-1111111-1-0-1-2-0",
		"1-2-22:30-0000011-0-3-0-1-0;2-3-07:05-1000000-1-3-3-3-abc",
		"4-1-00:00-0101010-0-12-2-1-x-y",
		"1-0-08:00-1111111-1-0-1-2-0",
		"1-1-08:00-1111111-1-0-1-2-0;2-0-19:45-0000011-0-3-2-2-0",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			tasks, err := ParseSchedule(in)
			require.NoError(t, err)
			assert.Equal(t, in, FormatSchedule(tasks))
		})
	}
}

func TestScheduleInvalidState(t *testing.T) {
	tasks, err := ParseSchedule("2-3-07:05-1000000-1-3-3-3-0")
	require.NoError(t, err)
	assert.False(t, tasks[0].Active())
}

func TestScheduleOffTaskParses(t *testing.T) {
	tasks, err := ParseSchedule("1-1-08:00-1111111-1-0-1-2-0;2-0-19:45-0000011-0-3-2-2-0")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Active())
	assert.Equal(t, ScheduleOff, tasks[1].Enabled)
	assert.False(t, tasks[1].Active())
	assert.Equal(t, "19:45", tasks[1].Time)
}

func TestParseScheduleRejects(t *testing.T) {
	bad := []string{
		"1-1-08:00-1111111-1-0-1-2",
		"1-1-8:00-1111111-1-0-1-2-0",
		"1-1-24:00-1111111-1-0-1-2-0",
		"1-4-08:00-1111111-1-0-1-2-0",
		"01-1-08:00-1111111-1-0-1-2-0",
		"1-1-08:00-111111-1-0-1-2-0",
		"1-1-08:00-1111121-1-0-1-2-0",
		"1-1-08:00-1111111-1-0-1-2-",
		"1-1-08:00-1111111-1-0-1-2-0;",
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSchedule(in)
			assert.Error(t, err)
		})
	}
}
