package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "gateops/internal/handler/dto/response"
	"gateops/internal/handler/httperr"
	"gateops/internal/usecase/queries"
)

type BayHandler struct {
	q queries.BayQueries
}

func NewBayHandler(q queries.BayQueries) *BayHandler {
	return &BayHandler{q: q}
}

// @Summary List available bays
// @Description List bays not held by an active visit in the branch
// @Tags bays
// @Security BearerAuth
// @Produce json
// @Param branch query string true "Branch"
// @Success 200 {object} resdto.BayAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /bays/available [get]
func (h *BayHandler) ListAvailable(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrBayQueryFailed, "branch is required", nil)
		return
	}

	available, err := h.q.ListAvailable(c.Request.Context(), branch)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.BayAvailabilityResponse{
		Branch:    branch,
		Available: available,
	})
}
