package response

import (
	"time"

	"deskbook/internal/domain/booking"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type IndividualConflictEntry struct {
	Date         string    `json:"date"`
	Owner        string    `json:"owner"`
	OccurrenceID uuid.UUID `json:"occurrence_id"`
}

type RecurringConflictEntry struct {
	Owner         string `json:"owner"`
	ExistingDays  []int  `json:"existing_days"`
	RequestedDays []int  `json:"requested_days"`
	FirstDate     string `json:"first_date"`
}

type BookingCommitResponse struct {
	CommittedCount      int                       `json:"committed_count"`
	CommittedIDs        []uuid.UUID               `json:"committed_ids,omitempty"`
	BookedDates         []string                  `json:"booked_dates,omitempty"`
	IndividualConflicts []IndividualConflictEntry `json:"individual_conflicts,omitempty"`
	RecurringConflicts  []RecurringConflictEntry  `json:"recurring_conflicts,omitempty"`
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *BookingCommitResponse {
	resp := &BookingCommitResponse{
		CommittedCount: len(result.CommittedIDs),
		CommittedIDs:   result.CommittedIDs,
	}
	for _, d := range result.Accepted {
		resp.BookedDates = append(resp.BookedDates, d.String())
	}
	for _, c := range result.IndividualConflicts {
		resp.IndividualConflicts = append(resp.IndividualConflicts, IndividualConflictEntry{
			Date:         c.Date.String(),
			Owner:        c.Owner.String(),
			OccurrenceID: c.OccurrenceID,
		})
	}
	for _, c := range result.RecurringConflicts {
		resp.RecurringConflicts = append(resp.RecurringConflicts, RecurringConflictEntry{
			Owner:         c.Owner.String(),
			ExistingDays:  c.ExistingDays.Indices(),
			RequestedDays: c.RequestedDays.Indices(),
			FirstDate:     c.FirstDate.String(),
		})
	}
	return resp
}

type CancelBookingResponse struct {
	DeletedCount int         `json:"deleted_count"`
	DeletedIDs   []uuid.UUID `json:"deleted_ids,omitempty"`
}

func FromCancelBookingResult(result *commands.CancelBookingResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		DeletedCount: result.DeletedCount,
		DeletedIDs:   result.DeletedIDs,
	}
}

type OccurrenceResponse struct {
	ID            uuid.UUID `json:"id"`
	DeskID        uuid.UUID `json:"deskId"`
	DeskCode      string    `json:"deskCode"`
	BookedOn      string    `json:"bookedOn"`
	Owner         string    `json:"owner"`
	IsRecurring   bool      `json:"isRecurring"`
	RecurringDays []int     `json:"recurringDays,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromOccurrenceView(view *queries.OccurrenceView) *OccurrenceResponse {
	return &OccurrenceResponse{
		ID:            view.ID,
		DeskID:        view.DeskID,
		DeskCode:      view.DeskCode,
		BookedOn:      booking.DateOf(view.BookedOn).String(),
		Owner:         view.Owner,
		IsRecurring:   view.IsRecurring,
		RecurringDays: view.RecurringDays,
		CreatedAt:     view.CreatedAt,
	}
}
