package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "gateops/internal/handler/dto/request"
	resdto "gateops/internal/handler/dto/response"
	"gateops/internal/handler/httperr"
	"gateops/internal/usecase/commands"
	"gateops/internal/usecase/queries"
)

type VisitHandler struct {
	cmds      commands.VisitCommands
	q         queries.VisitQueries
	durations queries.DurationQueries
}

func NewVisitHandler(cmds commands.VisitCommands, q queries.VisitQueries, durations queries.DurationQueries) *VisitHandler {
	return &VisitHandler{cmds: cmds, q: q, durations: durations}
}

// @Summary Get visit
// @Description Get a visit by ID
// @Tags visits
// @Security BearerAuth
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} resdto.VisitResponse
// @Failure 404 {object} httperr.Response
// @Router /visits/{id} [get]
func (h *VisitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrVisitNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Visit not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVisitView(view))
}

// @Summary List visits
// @Description List visits with optional branch filter; active_only limits to open visits
// @Tags visits
// @Security BearerAuth
// @Produce json
// @Param branch query string false "Branch filter"
// @Param active_only query bool false "Only visits without time out"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.VisitResponse
// @Failure 500 {object} httperr.Response
// @Router /visits [get]
func (h *VisitHandler) List(c *gin.Context) {
	filters := queries.VisitFilters{
		Branch:     optionalQuery(c, "branch"),
		ActiveOnly: c.Query("active_only") == "true",
	}

	views, err := h.q.List(c.Request.Context(), filters, intQuery(c, "limit", 20))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"visits": resdto.FromVisitList(views)})
}

// @Summary Close visit
// @Description Stamp time out on an active visit; truck visits release their bay
// @Tags visits
// @Security BearerAuth
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} resdto.VisitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /visits/{id}/close [post]
func (h *VisitHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Close(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrVisitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Visit not found", nil)
		case errors.Is(err, commands.ErrVisitAlreadyClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Visit already closed", nil)
		case errors.Is(err, commands.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Time out is earlier than time in", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Close failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load visit", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVisitView(view))
}

// @Summary Add walk-in visit
// @Description Open a visitor visit directly, with no prior request
// @Tags visits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.WalkInRequest true "Walk-in visit"
// @Success 201 {object} resdto.VisitResponse
// @Failure 400 {object} httperr.Response
// @Router /visits/walk-ins [post]
func (h *VisitHandler) AddWalkIn(c *gin.Context) {
	var req reqdto.WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.AddWalkIn(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Walk-in failed", nil)
		return
	}

	h.respondWithVisit(c, http.StatusCreated, id)
}

// @Summary Log truck entry
// @Description Admit a registered truck into the yard by plate number
// @Tags visits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.TruckLogRequest true "Truck entry"
// @Success 201 {object} resdto.VisitResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /visits/truck-logs [post]
func (h *VisitHandler) LogTruck(c *gin.Context) {
	var req reqdto.TruckLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.LogTruck(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClientNotRegistered):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Client not registered", nil)
		case errors.Is(err, commands.ErrBayOccupied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Bay is occupied", nil)
		case errors.Is(err, commands.ErrUnknownBay):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown bay", nil)
		case errors.Is(err, commands.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Truck log failed", nil)
		}
		return
	}

	h.respondWithVisit(c, http.StatusCreated, id)
}

// @Summary Compute visit duration
// @Description Compute dwell minutes from wall-clock fields without closing anything
// @Tags visits
// @Accept json
// @Produce json
// @Param request body reqdto.DurationRequest true "Duration input"
// @Success 200 {object} resdto.DurationResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /durations/compute [post]
func (h *VisitHandler) ComputeDuration(c *gin.Context) {
	var req reqdto.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.durations.Compute(c.Request.Context(), queries.DurationInput{
		Date:        req.Date,
		TimeIn:      req.TimeIn,
		TimeOut:     req.TimeOut,
		TimeOutDate: req.TimeOutDate,
	})
	if err != nil {
		if errors.Is(err, queries.ErrDurationInvalidInterval) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Time out is earlier than time in", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration input", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.DurationResponse{Minutes: view.Minutes})
}

func (h *VisitHandler) respondWithVisit(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load visit", nil)
		return
	}
	c.JSON(status, resdto.FromVisitView(view))
}
