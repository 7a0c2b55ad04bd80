package booking

import (
	"sort"

	"github.com/google/uuid"
)

// IndividualConflict reports a candidate date already held by an existing
// reservation. OccurrenceID identifies the blocking row so a caller can
// confirm an overwrite against exactly the state it was shown.
type IndividualConflict struct {
	Date         Date
	Owner        OwnerLabel
	OccurrenceID uuid.UUID
}

// RecurringConflict reports a structural collision between two recurring
// series. The whole new series is rejected when one of these is present.
type RecurringConflict struct {
	Owner         OwnerLabel
	ExistingDays  WeekdaySet
	RequestedDays WeekdaySet
	FirstDate     Date
}

// Classification partitions candidate dates into what can be committed and
// what must be surfaced to the caller. Conflicts are first-class results,
// not errors.
type Classification struct {
	Accepted            []Date
	IndividualConflicts []IndividualConflict
	RecurringConflicts  []RecurringConflict
}

func (c Classification) HasConflicts() bool {
	return len(c.IndividualConflicts) > 0 || len(c.RecurringConflicts) > 0
}

// ClassifyIndividual checks a single-date request against the desk's
// existing reservations. Any existing row on the same date is a hard
// conflict; the caller must explicitly confirm an overwrite or give up.
func ClassifyIndividual(date Date, existing []*Occurrence) Classification {
	for _, occ := range existing {
		if occ.Date().Equal(date) {
			return Classification{
				IndividualConflicts: []IndividualConflict{{
					Date:         date,
					Owner:        occ.Owner(),
					OccurrenceID: occ.ID(),
				}},
			}
		}
	}
	return Classification{Accepted: []Date{date}}
}

// ClassifySeries checks an expanded recurring request against the desk's
// existing reservations.
//
// Recurring-vs-recurring is evaluated first and is all-or-nothing: two
// series are structurally incompatible when their weekday sets intersect
// and the existing series has a persisted date inside the request window,
// because neither series can yield only some weeks. When that happens no
// dates are accepted and individual-conflict dropping is not applied.
//
// Otherwise individual reservations win per date: each candidate landing on
// an existing individual row is dropped and reported, without blocking the
// rest of the series.
func ClassifySeries(req SeriesRequest, end Date, candidates []Date, existing []*Occurrence) Classification {
	if conflicts := recurringConflicts(req, end, existing); len(conflicts) > 0 {
		return Classification{RecurringConflicts: conflicts}
	}

	individualByDate := make(map[string]*Occurrence)
	for _, occ := range existing {
		if !occ.IsRecurring() {
			individualByDate[occ.Date().String()] = occ
		}
	}

	var result Classification
	for _, date := range candidates {
		if blocker, ok := individualByDate[date.String()]; ok {
			result.IndividualConflicts = append(result.IndividualConflicts, IndividualConflict{
				Date:         date,
				Owner:        blocker.Owner(),
				OccurrenceID: blocker.ID(),
			})
			continue
		}
		result.Accepted = append(result.Accepted, date)
	}
	return result
}

type existingSeries struct {
	owner OwnerLabel
	days  WeekdaySet
	dates []Date
}

// recurringConflicts reconstructs each existing series by grouping the
// desk's recurring rows on (owner label, recurring-day set) and checks it
// against the request window. Weekday overlap alone is not a conflict: the
// existing series must also have a persisted date inside [start, end].
func recurringConflicts(req SeriesRequest, end Date, existing []*Occurrence) []RecurringConflict {
	type seriesKey struct {
		owner string
		days  string
	}

	grouped := make(map[seriesKey]*existingSeries)
	var order []seriesKey
	for _, occ := range existing {
		if !occ.IsRecurring() {
			continue
		}
		key := seriesKey{owner: occ.Owner().String(), days: occ.RecurringDays().String()}
		s, ok := grouped[key]
		if !ok {
			s = &existingSeries{owner: occ.Owner(), days: occ.RecurringDays()}
			grouped[key] = s
			order = append(order, key)
		}
		s.dates = append(s.dates, occ.Date())
	}

	var conflicts []RecurringConflict
	for _, key := range order {
		s := grouped[key]
		if !s.days.Intersects(req.Days) {
			continue
		}
		var inWindow []Date
		for _, d := range s.dates {
			if !d.Before(req.Start) && !d.After(end) {
				inWindow = append(inWindow, d)
			}
		}
		if len(inWindow) == 0 {
			continue
		}
		sort.Slice(inWindow, func(i, j int) bool { return inWindow[i].Before(inWindow[j]) })
		conflicts = append(conflicts, RecurringConflict{
			Owner:         s.owner,
			ExistingDays:  s.days,
			RequestedDays: req.Days,
			FirstDate:     inWindow[0],
		})
	}
	return conflicts
}
