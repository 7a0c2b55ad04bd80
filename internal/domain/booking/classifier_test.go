//go:build unit

package booking_test

import (
	"testing"
	"time"

	"deskbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func owner(t *testing.T, name string) booking.OwnerLabel {
	t.Helper()
	l, err := booking.NewOwnerLabel(name)
	require.NoError(t, err)
	return l
}

func individualRow(t *testing.T, deskID uuid.UUID, date booking.Date, name string) *booking.Occurrence {
	t.Helper()
	return booking.NewOccurrence(deskID, date, owner(t, name), false, booking.WeekdaySet{})
}

func recurringRow(t *testing.T, deskID uuid.UUID, date booking.Date, name string, days booking.WeekdaySet) *booking.Occurrence {
	t.Helper()
	return booking.NewOccurrence(deskID, date, owner(t, name), true, days)
}

func TestClassifyIndividual(t *testing.T) {
	deskID := uuid.New()
	date := booking.NewDate(2026, time.January, 7)

	t.Run("free date is accepted", func(t *testing.T) {
		cls := booking.ClassifyIndividual(date, nil)

		assert.False(t, cls.HasConflicts())
		require.Len(t, cls.Accepted, 1)
		assert.True(t, cls.Accepted[0].Equal(date))
	})

	t.Run("existing individual reservation blocks the date", func(t *testing.T) {
		blocker := individualRow(t, deskID, date, "alice")

		cls := booking.ClassifyIndividual(date, []*booking.Occurrence{blocker})

		assert.True(t, cls.HasConflicts())
		assert.Empty(t, cls.Accepted)
		require.Len(t, cls.IndividualConflicts, 1)
		assert.True(t, cls.IndividualConflicts[0].Date.Equal(date))
		assert.Equal(t, "alice", cls.IndividualConflicts[0].Owner.String())
		assert.Equal(t, blocker.ID(), cls.IndividualConflicts[0].OccurrenceID)
	})

	t.Run("existing recurring occurrence also blocks the date", func(t *testing.T) {
		blocker := recurringRow(t, deskID, date, "alice", booking.NewWeekdaySet(booking.Wednesday))

		cls := booking.ClassifyIndividual(date, []*booking.Occurrence{blocker})

		assert.True(t, cls.HasConflicts())
		require.Len(t, cls.IndividualConflicts, 1)
		assert.Equal(t, blocker.ID(), cls.IndividualConflicts[0].OccurrenceID)
	})

	t.Run("rows on other dates do not interfere", func(t *testing.T) {
		other := individualRow(t, deskID, date.AddDays(1), "alice")

		cls := booking.ClassifyIndividual(date, []*booking.Occurrence{other})

		assert.False(t, cls.HasConflicts())
	})
}

func TestClassifySeries(t *testing.T) {
	deskID := uuid.New()
	// 2026-01-05 is a Monday.
	monday := booking.NewDate(2026, time.January, 5)
	past := booking.NewDate(2025, time.December, 1)

	expand := func(t *testing.T, req booking.SeriesRequest, end booking.Date) []booking.Date {
		t.Helper()
		candidates := booking.ExpandSeries(req, end, past)
		require.NotEmpty(t, candidates)
		return candidates
	}

	t.Run("individual reservation drops only its date", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: monday,
			Days:  booking.NewWeekdaySet(booking.Monday, booking.Wednesday),
		}
		end := monday.AddDays(27) // four Mondays, four Wednesdays
		candidates := expand(t, req, end)
		require.Len(t, candidates, 8)

		blockedWednesday := booking.NewDate(2026, time.January, 14)
		blocker := individualRow(t, deskID, blockedWednesday, "alice")

		cls := booking.ClassifySeries(req, end, candidates, []*booking.Occurrence{blocker})

		assert.Len(t, cls.Accepted, 7)
		require.Len(t, cls.IndividualConflicts, 1)
		assert.True(t, cls.IndividualConflicts[0].Date.Equal(blockedWednesday))
		assert.Equal(t, "alice", cls.IndividualConflicts[0].Owner.String())
		assert.Empty(t, cls.RecurringConflicts)
		for _, d := range cls.Accepted {
			assert.False(t, d.Equal(blockedWednesday))
		}
	})

	t.Run("overlapping recurring series rejects the whole request", func(t *testing.T) {
		friday := booking.NewWeekdaySet(booking.Friday)
		req := booking.SeriesRequest{Start: monday, Days: friday}
		end := monday.AddDays(27)
		candidates := expand(t, req, end)

		existing := []*booking.Occurrence{
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 16), "alice", friday),
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 9), "alice", friday),
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 23), "alice", friday),
		}

		cls := booking.ClassifySeries(req, end, candidates, existing)

		assert.Empty(t, cls.Accepted)
		assert.Empty(t, cls.IndividualConflicts)
		require.Len(t, cls.RecurringConflicts, 1)
		conflict := cls.RecurringConflicts[0]
		assert.Equal(t, "alice", conflict.Owner.String())
		assert.True(t, conflict.ExistingDays.Equal(friday))
		assert.True(t, conflict.RequestedDays.Equal(friday))
		assert.True(t, conflict.FirstDate.Equal(booking.NewDate(2026, time.January, 9)))
	})

	t.Run("weekday overlap without dates in window is not a conflict", func(t *testing.T) {
		friday := booking.NewWeekdaySet(booking.Friday)
		// Existing Friday series lives entirely in January.
		existing := []*booking.Occurrence{
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 9), "alice", friday),
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 16), "alice", friday),
		}

		// 2026-03-02 is a Monday; the request window is all of March.
		req := booking.SeriesRequest{
			Start: booking.NewDate(2026, time.March, 2),
			Days:  friday,
		}
		end := booking.NewDate(2026, time.March, 31)
		candidates := expand(t, req, end)

		cls := booking.ClassifySeries(req, end, candidates, existing)

		assert.False(t, cls.HasConflicts())
		assert.Len(t, cls.Accepted, len(candidates))
	})

	t.Run("disjoint weekday sets coexist", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: monday,
			Days:  booking.NewWeekdaySet(booking.Tuesday, booking.Thursday),
		}
		end := monday.AddDays(27)
		candidates := expand(t, req, end)

		existing := []*booking.Occurrence{
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 5), "alice",
				booking.NewWeekdaySet(booking.Monday, booking.Wednesday)),
		}

		cls := booking.ClassifySeries(req, end, candidates, existing)

		assert.False(t, cls.HasConflicts())
		assert.Len(t, cls.Accepted, len(candidates))
	})

	t.Run("recurring conflict suppresses individual dropping", func(t *testing.T) {
		friday := booking.NewWeekdaySet(booking.Friday)
		req := booking.SeriesRequest{Start: monday, Days: friday}
		end := monday.AddDays(27)
		candidates := expand(t, req, end)

		existing := []*booking.Occurrence{
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 9), "alice", friday),
			individualRow(t, deskID, booking.NewDate(2026, time.January, 16), "bob"),
		}

		cls := booking.ClassifySeries(req, end, candidates, existing)

		assert.Empty(t, cls.Accepted)
		assert.Empty(t, cls.IndividualConflicts)
		assert.Len(t, cls.RecurringConflicts, 1)
	})

	t.Run("two distinct existing series each report once", func(t *testing.T) {
		monWed := booking.NewWeekdaySet(booking.Monday, booking.Wednesday)
		req := booking.SeriesRequest{Start: monday, Days: monWed}
		end := monday.AddDays(27)
		candidates := expand(t, req, end)

		existing := []*booking.Occurrence{
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 5), "alice",
				booking.NewWeekdaySet(booking.Monday)),
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 12), "alice",
				booking.NewWeekdaySet(booking.Monday)),
			recurringRow(t, deskID, booking.NewDate(2026, time.January, 7), "bob",
				booking.NewWeekdaySet(booking.Wednesday)),
		}

		cls := booking.ClassifySeries(req, end, candidates, existing)

		assert.Empty(t, cls.Accepted)
		assert.Len(t, cls.RecurringConflicts, 2)
	})
}
