package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"deskbook/internal/domain/booking"
	reqdto "deskbook/internal/handler/dto/request"
	resdto "deskbook/internal/handler/dto/response"
	"deskbook/internal/infra"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a desk for a single date or a weekly-recurring series
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCommitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.BookingCommitResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), params)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	response := resdto.FromCreateBookingResult(result)
	if !result.Committed() {
		// Nothing was booked; the conflicts explain why.
		c.JSON(http.StatusConflict, response)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Replace booking
// @Description Overwrite a confirmed conflicting reservation with a new individual booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceBookingRequest true "Replace request"
// @Success 201 {object} resdto.BookingCommitResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/replace [post]
func (h *BookingHandler) Replace(c *gin.Context) {
	var req reqdto.ReplaceBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.bookingCommands.Replace(c.Request.Context(), params)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel one occurrence, a whole recurring series, or a weekday subset of a series
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Param mode query string false "single | series | partial" default(single)
// @Param days query string false "Comma-separated weekday indices (0=Monday) for partial mode"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid occurrence ID format",
		})
		return
	}

	mode, err := booking.ParseCancelMode(c.DefaultQuery("mode", string(booking.CancelSingle)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cancel mode",
		})
		return
	}

	days, err := parseDaysParam(c.Query("days"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid days parameter",
		})
		return
	}
	if mode == booking.CancelPartial && len(days) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Partial cancel requires a days parameter",
		})
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), commands.CancelBookingParams{
		OccurrenceID: id,
		Mode:         mode,
		Days:         days,
	})
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelBookingResult(result))
}

// @Summary Get booking
// @Description Get one occurrence by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Success 200 {object} resdto.OccurrenceResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid occurrence ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccurrenceView(view))
}

// @Summary List desk bookings
// @Description List occurrences for one desk, optionally bounded by date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Desk ID"
// @Param from query string false "Lower bound date (YYYY-MM-DD)"
// @Param to query string false "Upper bound date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OccurrenceResponse
// @Failure 400 {object} map[string]string
// @Router /desks/{id}/bookings [get]
func (h *BookingHandler) ListByDesk(c *gin.Context) {
	deskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid desk ID format",
		})
		return
	}

	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.bookingQueries.ListByDesk(c.Request.Context(), deskID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OccurrenceResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromOccurrenceView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List bookings by owner
// @Description List occurrences carrying one owner label, optionally from a date onward
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param owner query string true "Owner label"
// @Param from query string false "Lower bound date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OccurrenceResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	owner := strings.TrimSpace(c.Query("owner"))
	if owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Owner parameter is required",
		})
		return
	}

	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.bookingQueries.ListByOwner(c.Request.Context(), owner, from)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OccurrenceResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromOccurrenceView(view)
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDeskNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Desk not found",
		})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrDeskBlocked):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Desk is blocked",
		})
	case errors.Is(err, commands.ErrDateInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is in the past",
		})
	case errors.Is(err, commands.ErrEmptyWeekdaySet):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Recurring booking requires at least one weekday",
		})
	case errors.Is(err, commands.ErrNoBookableDates):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Request expands to no bookable dates",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Another booking took the slot, please retry",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseDaysParam(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := booking.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	t := d.Time()
	return &t, nil
}
