package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "gateops/internal/handler/dto/response"
	"gateops/internal/handler/httperr"
	"gateops/internal/usecase/queries"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Branch stats
// @Description Pending requests, active visits and bay occupancy for a branch
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Param branch query string true "Branch"
// @Success 200 {object} resdto.BranchStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /stats [get]
func (h *StatsHandler) BranchStats(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrStatsQueryFailed, "branch is required", nil)
		return
	}

	stats, err := h.q.BranchStats(c.Request.Context(), branch)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBranchStats(stats))
}
