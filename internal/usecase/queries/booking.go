package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OccurrenceView struct {
	ID            uuid.UUID `json:"id"`
	DeskID        uuid.UUID `json:"desk_id"`
	DeskCode      string    `json:"desk_code"`
	BookedOn      time.Time `json:"booked_on"`
	Owner         string    `json:"owner"`
	IsRecurring   bool      `json:"is_recurring"`
	RecurringDays []int     `json:"recurring_days,omitempty"` // 0=Monday ... 4=Friday
	CreatedAt     time.Time `json:"created_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OccurrenceView, error)
	ListByDesk(ctx context.Context, deskID uuid.UUID, from, to *time.Time) ([]*OccurrenceView, error)
	ListByOwner(ctx context.Context, owner string, from *time.Time) ([]*OccurrenceView, error)
}

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*OccurrenceView, error)
	FindViewsByDesk(ctx context.Context, deskID uuid.UUID, from, to *time.Time) ([]*OccurrenceView, error)
	FindViewsByOwner(ctx context.Context, owner string, from *time.Time) ([]*OccurrenceView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OccurrenceView, error) {
	return q.store.FindViewByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByDesk(ctx context.Context, deskID uuid.UUID, from, to *time.Time) ([]*OccurrenceView, error) {
	return q.store.FindViewsByDesk(ctx, deskID, from, to)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, owner string, from *time.Time) ([]*OccurrenceView, error) {
	return q.store.FindViewsByOwner(ctx, owner, from)
}
