package request

import (
	"deskbook/internal/domain/booking"
	"deskbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DeskID    uuid.UUID `json:"desk_id" binding:"required"`
	Owner     string    `json:"owner" binding:"required,max=16"`
	Date      string    `json:"date" binding:"required"` // YYYY-MM-DD
	Recurring bool      `json:"recurring"`
	EndDate   *string   `json:"end_date,omitempty"`             // recurring only
	Days      []int     `json:"days,omitempty" binding:"max=5"` // 0=Monday ... 4=Friday
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	start, err := booking.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	params := commands.CreateBookingParams{
		DeskID:    r.DeskID,
		Owner:     r.Owner,
		Start:     start,
		Recurring: r.Recurring,
		Days:      r.Days,
	}

	if r.EndDate != nil {
		end, err := booking.ParseDate(*r.EndDate)
		if err != nil {
			return commands.CreateBookingParams{}, err
		}
		params.End = &end
	}
	return params, nil
}

type ReplaceBookingRequest struct {
	DeskID     uuid.UUID `json:"desk_id" binding:"required"`
	Owner      string    `json:"owner" binding:"required,max=16"`
	Date       string    `json:"date" binding:"required"`
	ReplacedID uuid.UUID `json:"replaced_id" binding:"required"`
}

func (r ReplaceBookingRequest) ToParams() (commands.ReplaceBookingParams, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return commands.ReplaceBookingParams{}, err
	}
	return commands.ReplaceBookingParams{
		DeskID:     r.DeskID,
		Owner:      r.Owner,
		Date:       date,
		ReplacedID: r.ReplacedID,
	}, nil
}
