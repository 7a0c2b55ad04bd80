//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/clock"
	"deskbook/internal/usecase/commands"
	commandsmock "deskbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	repo  *commandsmock.MockOccurrenceRepository
	reads *commandsmock.MockOccurrenceReads
	desks *commandsmock.MockDeskRepository
}

// Fixed "now": Friday 2026-01-02, noon UTC.
var testNow = time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)

func newBookingCommands(t *testing.T) (commands.BookingCommands, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		repo:  commandsmock.NewMockOccurrenceRepository(ctrl),
		reads: commandsmock.NewMockOccurrenceReads(ctrl),
		desks: commandsmock.NewMockDeskRepository(ctrl),
	}
	policy := commands.BookingPolicy{HorizonWeeks: 52, Location: time.UTC}
	uc := commands.NewBookingCommands(m.repo, m.reads, m.desks, policy, clock.NewMockClock(testNow))
	return uc, m
}

func bookableDesk(deskID uuid.UUID) *commands.DeskSnapshot {
	return &commands.DeskSnapshot{ID: deskID, Code: "A-01"}
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func duplicateErr() error {
	return infra.WrapRepoErr("unique violation", nil, infra.KindDuplicateKey)
}

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func existingOccurrence(t *testing.T, deskID uuid.UUID, date, owner string, recurring bool, days ...booking.Weekday) *booking.Occurrence {
	t.Helper()
	label, err := booking.NewOwnerLabel(owner)
	require.NoError(t, err)
	return booking.NewOccurrence(deskID, mustDate(t, date), label, recurring, booking.NewWeekdaySet(days...))
}

func TestBookingCommands_CreateIndividual(t *testing.T) {
	deskID := uuid.New()

	t.Run("books a free future date", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		date := mustDate(t, "2026-01-05")
		committedID := uuid.New()

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.reads.EXPECT().FindByDeskAndDate(gomock.Any(), deskID, date).Return(nil, notFoundErr())
		m.repo.EXPECT().InsertMany(gomock.Any(), gomock.Len(1)).
			Return([]uuid.UUID{committedID}, nil)

		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "alice",
			Start:  date,
		})
		require.NoError(t, err)

		assert.True(t, result.Committed())
		assert.Equal(t, []uuid.UUID{committedID}, result.CommittedIDs)
		require.Len(t, result.Accepted, 1)
		assert.True(t, result.Accepted[0].Equal(date))
	})

	t.Run("occupied date returns a conflict result, not an error", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		date := mustDate(t, "2026-01-05")
		blocker := existingOccurrence(t, deskID, "2026-01-05", "bob", false)

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.reads.EXPECT().FindByDeskAndDate(gomock.Any(), deskID, date).Return(blocker, nil)

		result, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "alice",
			Start:  date,
		})
		require.NoError(t, err)

		assert.False(t, result.Committed())
		require.Len(t, result.IndividualConflicts, 1)
		assert.Equal(t, blocker.ID(), result.IndividualConflicts[0].OccurrenceID)
		assert.Equal(t, "bob", result.IndividualConflicts[0].Owner.String())
	})

	t.Run("lost insert race surfaces as a retryable conflict", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		date := mustDate(t, "2026-01-05")

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.reads.EXPECT().FindByDeskAndDate(gomock.Any(), deskID, date).Return(nil, notFoundErr())
		m.repo.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(nil, duplicateErr())

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "alice",
			Start:  date,
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "alice",
			Start:  mustDate(t, "2026-01-01"),
		})
		assert.ErrorIs(t, err, commands.ErrDateInPast)
	})

	t.Run("unknown desk", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(nil, notFoundErr())

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "alice",
			Start:  mustDate(t, "2026-01-05"),
		})
		assert.ErrorIs(t, err, commands.ErrDeskNotFound)
	})

	t.Run("blocked desk", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		blocked := bookableDesk(deskID)
		blocked.IsBlocked = true
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(blocked, nil)

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "alice",
			Start:  mustDate(t, "2026-01-05"),
		})
		assert.ErrorIs(t, err, commands.ErrDeskBlocked)
	})

	t.Run("invalid owner label", func(t *testing.T) {
		uc, _ := newBookingCommands(t)

		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID: deskID,
			Owner:  "   ",
			Start:  mustDate(t, "2026-01-05"),
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestBookingCommands_CreateSeries(t *testing.T) {
	deskID := uuid.New()
	end := "2026-02-01"

	seriesParams := func(days []int) commands.CreateBookingParams {
		endDate := mustDate(t, end)
		return commands.CreateBookingParams{
			DeskID:    deskID,
			Owner:     "alice",
			Start:     mustDate(t, "2026-01-05"), // Monday
			End:       &endDate,
			Recurring: true,
			Days:      days,
		}
	}

	t.Run("commits every expanded date", func(t *testing.T) {
		uc, m := newBookingCommands(t)

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.reads.EXPECT().FindByDeskAndDateRange(gomock.Any(), deskID, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		var inserted []*booking.Occurrence
		m.repo.EXPECT().InsertMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, occs []*booking.Occurrence) ([]uuid.UUID, error) {
				inserted = occs
				ids := make([]uuid.UUID, len(occs))
				for i, occ := range occs {
					ids[i] = occ.ID()
				}
				return ids, nil
			})

		result, err := uc.Create(context.Background(), seriesParams([]int{0, 2}))
		require.NoError(t, err)

		// Four Mondays and four Wednesdays in 2026-01-05..2026-02-01.
		assert.Len(t, result.CommittedIDs, 8)
		assert.Len(t, result.Accepted, 8)
		require.Len(t, inserted, 8)
		for _, occ := range inserted {
			assert.True(t, occ.IsRecurring())
			assert.Equal(t, []int{0, 2}, occ.RecurringDays().Indices())
		}
	})

	t.Run("drops dates held by individual reservations and commits the rest", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		blocker := existingOccurrence(t, deskID, "2026-01-14", "bob", false)

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.reads.EXPECT().FindByDeskAndDateRange(gomock.Any(), deskID, gomock.Any(), gomock.Any()).
			Return([]*booking.Occurrence{blocker}, nil)
		m.repo.EXPECT().InsertMany(gomock.Any(), gomock.Len(7)).
			DoAndReturn(func(_ context.Context, occs []*booking.Occurrence) ([]uuid.UUID, error) {
				ids := make([]uuid.UUID, len(occs))
				for i, occ := range occs {
					ids[i] = occ.ID()
				}
				return ids, nil
			})

		result, err := uc.Create(context.Background(), seriesParams([]int{0, 2}))
		require.NoError(t, err)

		assert.Len(t, result.CommittedIDs, 7)
		require.Len(t, result.IndividualConflicts, 1)
		assert.Equal(t, "2026-01-14", result.IndividualConflicts[0].Date.String())
	})

	t.Run("overlapping series rejects everything without inserting", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		existing := existingOccurrence(t, deskID, "2026-01-12", "bob", true, booking.Monday)

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.reads.EXPECT().FindByDeskAndDateRange(gomock.Any(), deskID, gomock.Any(), gomock.Any()).
			Return([]*booking.Occurrence{existing}, nil)

		result, err := uc.Create(context.Background(), seriesParams([]int{0, 2}))
		require.NoError(t, err)

		assert.False(t, result.Committed())
		assert.Empty(t, result.IndividualConflicts)
		require.Len(t, result.RecurringConflicts, 1)
		assert.Equal(t, "bob", result.RecurringConflicts[0].Owner.String())
		assert.Equal(t, "2026-01-12", result.RecurringConflicts[0].FirstDate.String())
	})

	t.Run("empty weekday set", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)

		_, err := uc.Create(context.Background(), seriesParams(nil))
		assert.ErrorIs(t, err, commands.ErrEmptyWeekdaySet)
	})

	t.Run("weekend index is a validation error", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)

		_, err := uc.Create(context.Background(), seriesParams([]int{5}))
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("window entirely in the past yields no bookable dates", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)

		endDate := mustDate(t, "2025-12-19")
		_, err := uc.Create(context.Background(), commands.CreateBookingParams{
			DeskID:    deskID,
			Owner:     "alice",
			Start:     mustDate(t, "2025-12-01"),
			End:       &endDate,
			Recurring: true,
			Days:      []int{0},
		})
		assert.ErrorIs(t, err, commands.ErrNoBookableDates)
	})
}

func TestBookingCommands_Replace(t *testing.T) {
	deskID := uuid.New()
	replacedID := uuid.New()

	params := commands.ReplaceBookingParams{
		DeskID:     deskID,
		Owner:      "alice",
		Date:       mustDate(t, "2026-01-05"),
		ReplacedID: replacedID,
	}

	t.Run("overwrites the confirmed occurrence", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		newID := uuid.New()

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.repo.EXPECT().ReplaceOnDate(gomock.Any(), gomock.Any(), replacedID).Return(newID, nil)

		result, err := uc.Replace(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{newID}, result.CommittedIDs)
	})

	t.Run("confirmed occurrence already gone", func(t *testing.T) {
		uc, m := newBookingCommands(t)

		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)
		m.repo.EXPECT().ReplaceOnDate(gomock.Any(), gomock.Any(), replacedID).
			Return(uuid.Nil, notFoundErr())

		_, err := uc.Replace(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		m.desks.EXPECT().FindByID(gomock.Any(), deskID).Return(bookableDesk(deskID), nil)

		past := params
		past.Date = mustDate(t, "2025-12-31")
		_, err := uc.Replace(context.Background(), past)
		assert.ErrorIs(t, err, commands.ErrDateInPast)
	})
}

func TestBookingCommands_Cancel(t *testing.T) {
	deskID := uuid.New()

	t.Run("single mode deletes the anchor only", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		anchor := existingOccurrence(t, deskID, "2026-01-05", "alice", false)

		m.reads.EXPECT().FindByID(gomock.Any(), anchor.ID()).Return(anchor, nil)
		m.repo.EXPECT().DeleteMany(gomock.Any(), []uuid.UUID{anchor.ID()}).Return(int64(1), nil)

		result, err := uc.Cancel(context.Background(), commands.CancelBookingParams{
			OccurrenceID: anchor.ID(),
			Mode:         booking.CancelSingle,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.DeletedCount)
		assert.Equal(t, []uuid.UUID{anchor.ID()}, result.DeletedIDs)
	})

	t.Run("series mode deletes every member of the series", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		anchor := existingOccurrence(t, deskID, "2026-01-05", "alice", true, booking.Monday)
		sibling := existingOccurrence(t, deskID, "2026-01-12", "alice", true, booking.Monday)
		foreign := existingOccurrence(t, deskID, "2026-01-06", "bob", false)

		m.reads.EXPECT().FindByID(gomock.Any(), anchor.ID()).Return(anchor, nil)
		m.reads.EXPECT().FindByDeskAndDateRange(gomock.Any(), deskID, nil, nil).
			Return([]*booking.Occurrence{anchor, sibling, foreign}, nil)
		m.repo.EXPECT().DeleteMany(gomock.Any(), gomock.Len(2)).Return(int64(2), nil)

		result, err := uc.Cancel(context.Background(), commands.CancelBookingParams{
			OccurrenceID: anchor.ID(),
			Mode:         booking.CancelSeries,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.DeletedCount)
	})

	t.Run("partial mode with no matching weekday is a no-op", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		anchor := existingOccurrence(t, deskID, "2026-01-05", "alice", true, booking.Monday)

		m.reads.EXPECT().FindByID(gomock.Any(), anchor.ID()).Return(anchor, nil)
		m.reads.EXPECT().FindByDeskAndDateRange(gomock.Any(), deskID, nil, nil).
			Return([]*booking.Occurrence{anchor}, nil)
		// DeleteMany must not be called.

		result, err := uc.Cancel(context.Background(), commands.CancelBookingParams{
			OccurrenceID: anchor.ID(),
			Mode:         booking.CancelPartial,
			Days:         []int{4}, // Friday; the series only has Mondays
		})
		require.NoError(t, err)

		assert.Zero(t, result.DeletedCount)
		assert.Empty(t, result.DeletedIDs)
	})

	t.Run("series mode on an individual occurrence", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		anchor := existingOccurrence(t, deskID, "2026-01-05", "alice", false)

		m.reads.EXPECT().FindByID(gomock.Any(), anchor.ID()).Return(anchor, nil)
		m.reads.EXPECT().FindByDeskAndDateRange(gomock.Any(), deskID, nil, nil).Return(nil, nil)

		_, err := uc.Cancel(context.Background(), commands.CancelBookingParams{
			OccurrenceID: anchor.ID(),
			Mode:         booking.CancelSeries,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown occurrence", func(t *testing.T) {
		uc, m := newBookingCommands(t)
		id := uuid.New()

		m.reads.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := uc.Cancel(context.Background(), commands.CancelBookingParams{
			OccurrenceID: id,
			Mode:         booking.CancelSingle,
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
