package booking

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday = errors.New("weekday index must be within Monday to Friday")
)

// Weekday is a workweek day. The caller-facing index space is 0=Monday
// through 4=Friday; weekend days are not bookable and rejected on input.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday

	numWeekdays = 5
)

var weekdayNames = [numWeekdays]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

func NewWeekday(index int) (Weekday, error) {
	if index < 0 || index >= numWeekdays {
		return 0, ErrInvalidWeekday
	}
	return Weekday(index), nil
}

// WeekdayOf maps a time.Weekday onto the workweek. ok is false for
// Saturday and Sunday.
func WeekdayOf(w time.Weekday) (Weekday, bool) {
	if w == time.Saturday || w == time.Sunday {
		return 0, false
	}
	return Weekday(int(w) - 1), true
}

func (w Weekday) Index() int {
	return int(w)
}

// Time converts to the stdlib convention (0=Sunday ... 6=Saturday).
func (w Weekday) Time() time.Weekday {
	return time.Weekday(int(w) + 1)
}

// StorageValue is the persisted encoding: 1=Monday ... 5=Friday.
func (w Weekday) StorageValue() int32 {
	return int32(w) + 1
}

func WeekdayFromStorage(v int32) (Weekday, error) {
	if v < 1 || v > numWeekdays {
		return 0, ErrInvalidWeekday
	}
	return Weekday(v - 1), nil
}

func (w Weekday) String() string {
	if w < 0 || w >= numWeekdays {
		return "invalid"
	}
	return weekdayNames[w]
}

// WeekdaySet is a set of workweek days, at most Monday through Friday.
type WeekdaySet struct {
	bits uint8
}

func NewWeekdaySet(days ...Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s.bits |= 1 << uint(d)
	}
	return s
}

// WeekdaySetFromIndices builds a set from caller-facing indices (0=Monday).
func WeekdaySetFromIndices(indices []int) (WeekdaySet, error) {
	var s WeekdaySet
	for _, i := range indices {
		d, err := NewWeekday(i)
		if err != nil {
			return WeekdaySet{}, err
		}
		s.bits |= 1 << uint(d)
	}
	return s, nil
}

// WeekdaySetFromStorage builds a set from persisted values (1=Monday).
func WeekdaySetFromStorage(values []int32) (WeekdaySet, error) {
	var s WeekdaySet
	for _, v := range values {
		d, err := WeekdayFromStorage(v)
		if err != nil {
			return WeekdaySet{}, err
		}
		s.bits |= 1 << uint(d)
	}
	return s, nil
}

func (s WeekdaySet) Contains(d Weekday) bool {
	return s.bits&(1<<uint(d)) != 0
}

func (s WeekdaySet) ContainsTime(w time.Weekday) bool {
	d, ok := WeekdayOf(w)
	if !ok {
		return false
	}
	return s.Contains(d)
}

func (s WeekdaySet) Intersects(o WeekdaySet) bool {
	return s.bits&o.bits != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s.bits == 0
}

func (s WeekdaySet) Len() int {
	n := 0
	for d := Monday; d < numWeekdays; d++ {
		if s.Contains(d) {
			n++
		}
	}
	return n
}

func (s WeekdaySet) Equal(o WeekdaySet) bool {
	return s.bits == o.bits
}

// Days returns the members in Monday-first order.
func (s WeekdaySet) Days() []Weekday {
	days := make([]Weekday, 0, numWeekdays)
	for d := Monday; d < numWeekdays; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) Indices() []int {
	days := s.Days()
	indices := make([]int, len(days))
	for i, d := range days {
		indices[i] = d.Index()
	}
	return indices
}

func (s WeekdaySet) StorageValues() []int32 {
	days := s.Days()
	values := make([]int32, len(days))
	for i, d := range days {
		values[i] = d.StorageValue()
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}
