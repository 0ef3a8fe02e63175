package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTrainingResults(c *gin.Context) {
	versionID, ok := queryID(c, "version_id")
	if !ok {
		return
	}

	results, err := h.resultSvc.List(c.Request.Context(), versionID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrainingResultResponses(results))
}

func (h *Handler) CreateTrainingResult(c *gin.Context) {
	var req dto.TrainingResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tr, err := h.resultSvc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTrainingResultResponse(*tr))
}

func (h *Handler) DeleteTrainingResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.resultSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
