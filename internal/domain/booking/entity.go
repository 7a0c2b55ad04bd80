package booking

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyOwnerLabel   = errors.New("owner label cannot be empty")
	ErrOwnerLabelTooLong = errors.New("owner label exceeds maximum length")
)

const MaxOwnerLabelLength = 16

// OwnerLabel names who holds an occurrence. The engine treats it as an
// opaque string; length is bounded at the boundary for display reasons.
type OwnerLabel struct {
	value string
}

func NewOwnerLabel(s string) (OwnerLabel, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return OwnerLabel{}, ErrEmptyOwnerLabel
	}
	if utf8.RuneCountInString(trimmed) > MaxOwnerLabelLength {
		return OwnerLabel{}, ErrOwnerLabelTooLong
	}
	return OwnerLabel{value: trimmed}, nil
}

// ReconstructOwnerLabel rebuilds a label from the store without
// re-validating; persisted values already passed the boundary checks.
func ReconstructOwnerLabel(s string) OwnerLabel {
	return OwnerLabel{value: s}
}

func (l OwnerLabel) String() string {
	return l.value
}

func (l OwnerLabel) Equal(o OwnerLabel) bool {
	return l.value == o.value
}

// Occurrence is the atomic bookable unit: one desk on one date. Occurrences
// are never updated in place; a move is a delete plus a create.
type Occurrence struct {
	id            uuid.UUID
	deskID        uuid.UUID
	date          Date
	owner         OwnerLabel
	isRecurring   bool
	recurringDays WeekdaySet
}

func NewOccurrence(deskID uuid.UUID, date Date, owner OwnerLabel, isRecurring bool, recurringDays WeekdaySet) *Occurrence {
	if !isRecurring {
		recurringDays = WeekdaySet{}
	}
	return &Occurrence{
		id:            uuid.New(),
		deskID:        deskID,
		date:          date,
		owner:         owner,
		isRecurring:   isRecurring,
		recurringDays: recurringDays,
	}
}

func ReconstructOccurrence(id, deskID uuid.UUID, date Date, owner OwnerLabel, isRecurring bool, recurringDays WeekdaySet) *Occurrence {
	return &Occurrence{
		id:            id,
		deskID:        deskID,
		date:          date,
		owner:         owner,
		isRecurring:   isRecurring,
		recurringDays: recurringDays,
	}
}

func (o *Occurrence) ID() uuid.UUID             { return o.id }
func (o *Occurrence) DeskID() uuid.UUID         { return o.deskID }
func (o *Occurrence) Date() Date                { return o.date }
func (o *Occurrence) Owner() OwnerLabel         { return o.owner }
func (o *Occurrence) IsRecurring() bool         { return o.isRecurring }
func (o *Occurrence) RecurringDays() WeekdaySet { return o.recurringDays }

// ActualWeekday derives the weekday from the stored date. After partial
// series cancellations the stored recurring-day set can drift from which
// dates are actually still present; the date is the authoritative signal.
func (o *Occurrence) ActualWeekday() (Weekday, bool) {
	return WeekdayOf(o.date.Weekday())
}

// SameSeries reports whether other belongs to the same recurring series as
// o: same desk and owner, both recurring. The stored recurring-day sets are
// deliberately ignored; they may be stale.
func (o *Occurrence) SameSeries(other *Occurrence) bool {
	return o.isRecurring && other.isRecurring &&
		o.deskID == other.deskID &&
		o.owner.Equal(other.owner)
}
