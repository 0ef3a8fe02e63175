package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetDashboardOverview(c *gin.Context) {
	overview, err := h.dashboardSvc.Overview(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("load dashboard overview failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":              overview.Stats,
		"storage":            overview.Storage,
		"storage_used_pct":   overview.Storage.UsedPercent(),
		"system":             overview.System,
		"active_evaluations": overview.ActiveEvaluations,
	})
}
