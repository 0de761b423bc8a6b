package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineseat/booking-gateway/internal/schedule"
)

func daily(startAt, endDate string) schedule.Schedule {
	return schedule.Schedule{StartAt: startAt, Period: schedule.EveryDay, EndDate: endDate, Enabled: true}
}

func weekly(startAt, endDate string) schedule.Schedule {
	return schedule.Schedule{StartAt: startAt, Period: schedule.EveryWeek, EndDate: endDate, Enabled: true}
}

func TestCountDisabledOrOpenEnded(t *testing.T) {
	n, err := schedule.Count(schedule.Schedule{
		StartAt: "2026-01-01T10:00",
		Period:  schedule.EveryDay,
		EndDate: "2026-02-01",
		Enabled: false,
	})
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = schedule.Count(daily("2026-01-01T10:00", ""))
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestCountDaily(t *testing.T) {
	cases := []struct {
		name    string
		startAt string
		endDate string
		want    int
	}{
		{"same day", "2026-01-01T10:00", "2026-01-01", 1},
		{"two days later", "2026-01-01T10:00", "2026-01-03", 3},
		{"next day", "2026-01-01T23:30", "2026-01-02", 2},
		{"full month", "2026-01-01T10:00", "2026-01-31", 31},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := schedule.Count(daily(tc.startAt, tc.endDate))
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, tc.want, *n)
		})
	}
}

func TestCountWeekly(t *testing.T) {
	cases := []struct {
		name    string
		startAt string
		endDate string
		want    int
	}{
		{"same day", "2026-01-01T10:00", "2026-01-01", 1},
		{"exactly one week", "2026-01-01T10:00", "2026-01-08", 2},
		{"two weeks", "2026-01-01T10:00", "2026-01-15", 3},
		{"six days is still one", "2026-01-01T10:00", "2026-01-07", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := schedule.Count(weekly(tc.startAt, tc.endDate))
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, tc.want, *n)
		})
	}
}

// An end date before the start clamps to zero instead of going negative,
// so a half-edited form never previews a nonsense count.
func TestCountInvertedRangeClampsToZero(t *testing.T) {
	n, err := schedule.Count(daily("2026-01-10T10:00", "2026-01-05"))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 0, *n)

	n, err = schedule.Count(weekly("2026-06-01T10:00", "2026-01-01"))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 0, *n)
}

func TestCountRejectsMalformedInput(t *testing.T) {
	_, err := schedule.Count(daily("not-a-date", "2026-01-03"))
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)

	_, err = schedule.Count(daily("2026-01-01T10:00", "03.01.2026"))
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)

	_, err = schedule.Count(schedule.Schedule{
		StartAt: "2026-01-01T10:00",
		Period:  "EVERY_FORTNIGHT",
		EndDate: "2026-01-03",
		Enabled: true,
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)
}

func TestOccurrencesMatchCount(t *testing.T) {
	s := weekly("2026-01-01T10:00", "2026-01-15")
	occ, err := schedule.Occurrences(s)
	require.NoError(t, err)
	require.Len(t, occ, 3)

	assert.Equal(t, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), occ[0])
	assert.Equal(t, time.Date(2026, 1, 8, 10, 0, 0, 0, time.UTC), occ[1])
	assert.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), occ[2])
}

func TestOccurrencesPreserveTimeOfDay(t *testing.T) {
	occ, err := schedule.Occurrences(daily("2026-03-05T19:45", "2026-03-07"))
	require.NoError(t, err)
	require.Len(t, occ, 3)
	for i, o := range occ {
		assert.Equal(t, 19, o.Hour(), "occurrence %d", i)
		assert.Equal(t, 45, o.Minute(), "occurrence %d", i)
	}
}
