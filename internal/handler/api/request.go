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

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Submit appointment request
// @Description Submit a visitor appointment request; it enters the pending queue
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Router /requests/appointments [post]
func (h *RequestHandler) SubmitAppointment(c *gin.Context) {
	var req reqdto.SubmitAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.SubmitAppointment(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit failed", nil)
		return
	}

	h.respondWithRequest(c, http.StatusCreated, id)
}

// @Summary Submit truck request
// @Description Submit a truck registration request; it enters the pending queue
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitTruckRequest true "Truck request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Router /requests/trucks [post]
func (h *RequestHandler) SubmitTruck(c *gin.Context) {
	var req reqdto.SubmitTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.SubmitTruck(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Submit failed", nil)
		return
	}

	h.respondWithRequest(c, http.StatusCreated, id)
}

// @Summary Get request
// @Description Get a request by ID
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List requests
// @Description List requests with optional branch, status and kind filters
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param branch query string false "Branch filter"
// @Param status query string false "Status filter (pending/approved/rejected/done)"
// @Param kind query string false "Kind filter (appointment/truck)"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.RequestResponse
// @Failure 500 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	filters := queries.RequestFilters{
		Branch: optionalQuery(c, "branch"),
		Status: optionalQuery(c, "status"),
		Kind:   optionalQuery(c, "kind"),
	}

	views, err := h.q.List(c.Request.Context(), filters, intQuery(c, "limit", 20))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromRequestList(views)})
}

// @Summary Approve request
// @Description Approve a pending request; truck requests match or register a client by plate
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Param expect_new query bool false "Fail with 409 if the plate is already registered"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	expectNew := c.Query("expect_new") == "true"
	if err := h.cmds.Approve(c.Request.Context(), id, expectNew); err != nil {
		h.abortWithDecisionError(c, err, "Approve failed")
		return
	}

	h.respondWithRequest(c, http.StatusOK, id)
}

// @Summary Reject request
// @Description Reject a pending request; the record is kept for audit
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/reject [post]
func (h *RequestHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Reject(c.Request.Context(), id); err != nil {
		h.abortWithDecisionError(c, err, "Reject failed")
		return
	}

	h.respondWithRequest(c, http.StatusOK, id)
}

// @Summary Accept request
// @Description Convert an approved request into a visit; truck accepts take a bay
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body reqdto.AcceptRequest false "Accept options"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /requests/{id}/accept [post]
func (h *RequestHandler) Accept(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.AcceptRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	visitID, err := h.cmds.Accept(c.Request.Context(), id, req.Bay)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request is not approved", nil)
		case errors.Is(err, commands.ErrBayOccupied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Bay is occupied", nil)
		case errors.Is(err, commands.ErrUnknownBay):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown bay", nil)
		case errors.Is(err, commands.ErrClientNotRegistered):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Client not registered", nil)
		case errors.Is(err, commands.ErrBayCodeRequired), errors.Is(err, commands.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: visitID})
}

func (h *RequestHandler) abortWithDecisionError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request already decided", nil)
	case errors.Is(err, commands.ErrPlateAlreadyRegistered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Plate already registered", nil)
	case errors.Is(err, commands.ErrValidationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

func (h *RequestHandler) respondWithRequest(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.JSON(status, resdto.FromRequestView(view))
}
