package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "gateops/internal/handler/dto/response"
	"gateops/internal/handler/httperr"
	"gateops/internal/usecase/queries"
)

type ClientHandler struct {
	q queries.ClientQueries
}

func NewClientHandler(q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{q: q}
}

// @Summary Get client by plate
// @Description Look up a registered client by plate number (case-insensitive)
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param plate path string true "Plate number"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} httperr.Response
// @Router /clients/{plate} [get]
func (h *ClientHandler) GetByPlate(c *gin.Context) {
	view, err := h.q.GetByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		if errors.Is(err, queries.ErrClientNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary List clients
// @Description List registered clients with optional branch filter
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param branch query string false "Branch filter"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.ClientResponse
// @Failure 500 {object} httperr.Response
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), optionalQuery(c, "branch"), intQuery(c, "limit", 20))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": resdto.FromClientList(views)})
}
