//go:build unit || e2e

package builder

import (
	"time"

	"deskbook/internal/domain/booking"
	reqdto "deskbook/internal/handler/dto/request"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	DeskID    uuid.UUID
	DeskCode  string
	Owner     string
	Date      string
	Recurring bool
	EndDate   *string
	Days      []int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		DeskID:   uuid.New(),
		DeskCode: "A-01",
		Owner:    "alice",
		Date:     "2026-01-05", // a Monday
	}
}

func NewRecurringBookingBuilder() *BookingBuilder {
	end := "2026-02-01"
	return &BookingBuilder{
		DeskID:    uuid.New(),
		DeskCode:  "A-01",
		Owner:     "alice",
		Date:      "2026-01-05",
		Recurring: true,
		EndDate:   &end,
		Days:      []int{0, 2}, // Monday, Wednesday
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Clone returns an independent copy so one scenario can branch into
// variants without mutating the shared fixture.
func (b *BookingBuilder) Clone() *BookingBuilder {
	var c BookingBuilder
	if err := copier.CopyWithOption(&c, b, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return &c
}

// Build methods
func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		DeskID:    b.DeskID,
		Owner:     b.Owner,
		Date:      b.Date,
		Recurring: b.Recurring,
		EndDate:   b.EndDate,
		Days:      b.Days,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Occurrence, error) {
	owner, err := booking.NewOwnerLabel(b.Owner)
	if err != nil {
		return nil, err
	}
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	days, err := booking.WeekdaySetFromIndices(b.Days)
	if err != nil {
		return nil, err
	}
	return booking.NewOccurrence(b.DeskID, date, owner, b.Recurring, days), nil
}

func (b *BookingBuilder) BuildReadModel() *queries.OccurrenceView {
	date, _ := time.Parse("2006-01-02", b.Date)
	return &queries.OccurrenceView{
		ID:            uuid.New(),
		DeskID:        b.DeskID,
		DeskCode:      b.DeskCode,
		BookedOn:      date,
		Owner:         b.Owner,
		IsRecurring:   b.Recurring,
		RecurringDays: b.Days,
		CreatedAt:     time.Now(),
	}
}
