package api

import (
	"errors"
	"net/http"

	reqdto "deskbook/internal/handler/dto/request"
	resdto "deskbook/internal/handler/dto/response"
	"deskbook/internal/infra"
	"deskbook/internal/usecase/commands"
	"deskbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeskHandler struct {
	deskCommands commands.DeskCommands
	deskQueries  queries.DeskQueries
}

func NewDeskHandler(deskCommands commands.DeskCommands, deskQueries queries.DeskQueries) *DeskHandler {
	return &DeskHandler{
		deskCommands: deskCommands,
		deskQueries:  deskQueries,
	}
}

// @Summary Create desk
// @Description Register a new bookable desk (admin only)
// @Tags desks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDeskRequest true "Desk request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /desks [post]
func (h *DeskHandler) Create(c *gin.Context) {
	var req reqdto.CreateDeskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.deskCommands.Create(c.Request.Context(), commands.CreateDeskParams{
		Code:   req.Code,
		AreaID: req.AreaID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDesk):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid desk",
			})
		case errors.Is(err, commands.ErrDuplicateDeskCode):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Desk code already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Set desk blocked state
// @Description Block or unblock a desk for new bookings (admin only)
// @Tags desks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Desk ID"
// @Param request body reqdto.SetDeskBlockedRequest true "Blocked state"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /desks/{id}/blocked [put]
func (h *DeskHandler) SetBlocked(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid desk ID format",
		})
		return
	}

	var req reqdto.SetDeskBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.deskCommands.SetBlocked(c.Request.Context(), id, *req.Blocked); err != nil {
		if errors.Is(err, commands.ErrDeskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Desk not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get desk
// @Description Get one desk by ID
// @Tags desks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Desk ID"
// @Success 200 {object} resdto.DeskResponse
// @Failure 404 {object} map[string]string
// @Router /desks/{id} [get]
func (h *DeskHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid desk ID format",
		})
		return
	}

	view, err := h.deskQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Desk not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDeskView(view))
}

// @Summary List desks
// @Description List every registered desk
// @Tags desks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DeskResponse
// @Router /desks [get]
func (h *DeskHandler) List(c *gin.Context) {
	views, err := h.deskQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.DeskResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromDeskView(view)
	}
	c.JSON(http.StatusOK, response)
}
