package booking

import "sort"

// DefaultHorizonWeeks bounds a series without an explicit end date.
const DefaultHorizonWeeks = 52

// SeriesRequest describes a weekly-recurring booking before expansion.
// End is optional; a zero End means Start plus the default horizon.
type SeriesRequest struct {
	Start Date
	End   Date
	Days  WeekdaySet
}

// ResolvedEnd returns the effective end of the request window.
func (r SeriesRequest) ResolvedEnd(horizonWeeks int) Date {
	if !r.End.IsZero() {
		return r.End
	}
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultHorizonWeeks
	}
	return r.Start.AddDays(7 * horizonWeeks)
}

// ExpandSeries turns a recurring request into the concrete dates it books:
// for each requested weekday, the first on-or-after occurrence relative to
// Start, then 7-day steps up to and including end. Dates before today are
// silently excluded so a series started in the past produces only its
// future tail. An empty weekday set or end before Start yields no dates.
func ExpandSeries(req SeriesRequest, end Date, today Date) []Date {
	if req.Days.IsEmpty() || end.Before(req.Start) {
		return nil
	}

	seen := make(map[string]struct{})
	var dates []Date
	for _, day := range req.Days.Days() {
		offset := (int(day.Time()) - int(req.Start.Weekday()) + 7) % 7
		for d := req.Start.AddDays(offset); !d.After(end); d = d.AddDays(7) {
			if d.Before(today) {
				continue
			}
			key := d.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			dates = append(dates, d)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
