//go:build unit

package booking_test

import (
	"testing"
	"time"

	"deskbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(t *testing.T, ds []booking.Date) []string {
	t.Helper()
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func TestExpandSeries(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := booking.NewDate(2026, time.January, 5)
	tuesday := booking.NewDate(2026, time.January, 6)
	past := booking.NewDate(2025, time.December, 1)

	t.Run("start mid week picks next matching weekday", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: tuesday,
			Days:  booking.NewWeekdaySet(booking.Monday, booking.Wednesday),
		}
		end := tuesday.AddDays(14)

		got := booking.ExpandSeries(req, end, past)

		assert.Equal(t, []string{
			"2026-01-07",
			"2026-01-12",
			"2026-01-14",
			"2026-01-19",
		}, dates(t, got))
	})

	t.Run("dates before today are excluded", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: tuesday,
			Days:  booking.NewWeekdaySet(booking.Monday, booking.Wednesday),
		}
		end := tuesday.AddDays(14)
		today := booking.NewDate(2026, time.January, 13)

		got := booking.ExpandSeries(req, end, today)

		assert.Equal(t, []string{
			"2026-01-14",
			"2026-01-19",
		}, dates(t, got))
	})

	t.Run("start on a requested weekday includes the start date", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: monday,
			Days:  booking.NewWeekdaySet(booking.Monday),
		}
		end := monday.AddDays(7)

		got := booking.ExpandSeries(req, end, past)

		assert.Equal(t, []string{"2026-01-05", "2026-01-12"}, dates(t, got))
	})

	t.Run("inclusive end date", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: monday,
			Days:  booking.NewWeekdaySet(booking.Monday),
		}
		end := booking.NewDate(2026, time.January, 12)

		got := booking.ExpandSeries(req, end, past)

		assert.Equal(t, []string{"2026-01-05", "2026-01-12"}, dates(t, got))
	})

	t.Run("empty weekday set yields nothing", func(t *testing.T) {
		req := booking.SeriesRequest{Start: monday}
		assert.Empty(t, booking.ExpandSeries(req, monday.AddDays(28), past))
	})

	t.Run("end before start yields nothing", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: monday,
			Days:  booking.NewWeekdaySet(booking.Monday),
		}
		assert.Empty(t, booking.ExpandSeries(req, monday.AddDays(-1), past))
	})

	t.Run("results are sorted across interleaved weekdays", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: monday,
			Days:  booking.NewWeekdaySet(booking.Monday, booking.Friday),
		}
		end := monday.AddDays(13)

		got := booking.ExpandSeries(req, end, past)

		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Before(got[i]))
		}
	})
}

func TestResolvedEnd(t *testing.T) {
	start := booking.NewDate(2026, time.January, 5)

	t.Run("explicit end wins", func(t *testing.T) {
		req := booking.SeriesRequest{
			Start: start,
			End:   start.AddDays(30),
		}
		assert.True(t, req.ResolvedEnd(52).Equal(start.AddDays(30)))
	})

	t.Run("zero end falls back to the horizon", func(t *testing.T) {
		req := booking.SeriesRequest{Start: start}
		assert.True(t, req.ResolvedEnd(52).Equal(start.AddDays(7*52)))
	})

	t.Run("non positive horizon uses the default", func(t *testing.T) {
		req := booking.SeriesRequest{Start: start}
		expected := start.AddDays(7 * booking.DefaultHorizonWeeks)
		assert.True(t, req.ResolvedEnd(0).Equal(expected))
	})
}
