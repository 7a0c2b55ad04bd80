package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidCancelMode = errors.New("invalid cancel mode")
	ErrNotRecurring      = errors.New("occurrence does not belong to a recurring series")
)

// CancelMode selects how much of a booking the caller wants gone.
type CancelMode string

const (
	// CancelSingle deletes exactly the anchor occurrence.
	CancelSingle CancelMode = "single"
	// CancelSeries deletes every occurrence of the anchor's series.
	CancelSeries CancelMode = "series"
	// CancelPartial deletes the series occurrences whose actual weekday is
	// in a caller-chosen subset.
	CancelPartial CancelMode = "partial"
)

func ParseCancelMode(s string) (CancelMode, error) {
	switch CancelMode(s) {
	case CancelSingle, CancelSeries, CancelPartial:
		return CancelMode(s), nil
	default:
		return "", ErrInvalidCancelMode
	}
}

// ResolveCancellation identifies the persisted rows a cancellation request
// removes. deskRows is the anchor desk's full reservation history; days is
// only consulted in partial mode.
//
// Series membership is desk + owner + recurring flag. The stored
// recurring-day sets are not trusted: repeated partial cancellations leave
// them stale, so partial mode recomputes each row's weekday from its date.
// An empty result is a no-op for the caller, not an error.
func ResolveCancellation(mode CancelMode, anchor *Occurrence, deskRows []*Occurrence, days WeekdaySet) ([]uuid.UUID, error) {
	switch mode {
	case CancelSingle:
		return []uuid.UUID{anchor.ID()}, nil

	case CancelSeries:
		if !anchor.IsRecurring() {
			return nil, ErrNotRecurring
		}
		var ids []uuid.UUID
		for _, occ := range deskRows {
			if anchor.SameSeries(occ) {
				ids = append(ids, occ.ID())
			}
		}
		return ids, nil

	case CancelPartial:
		if !anchor.IsRecurring() {
			return nil, ErrNotRecurring
		}
		var ids []uuid.UUID
		for _, occ := range deskRows {
			if !anchor.SameSeries(occ) {
				continue
			}
			weekday, ok := occ.ActualWeekday()
			if !ok {
				continue
			}
			if days.Contains(weekday) {
				ids = append(ids, occ.ID())
			}
		}
		return ids, nil

	default:
		return nil, ErrInvalidCancelMode
	}
}
