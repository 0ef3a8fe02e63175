package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTestsets(c *gin.Context) {
	langPairID, ok := queryID(c, "lang_pair_id")
	if !ok {
		return
	}

	testsets, err := h.testsetSvc.List(c.Request.Context(), langPairID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, testsets)
}

func (h *Handler) GetTestset(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ts, err := h.testsetSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

func (h *Handler) CreateTestset(c *gin.Context) {
	var form dto.TestsetForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files, closeFiles, err := formFiles(c, "source_file", "target_file")
	defer closeFiles()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts, err := h.testsetSvc.Create(c.Request.Context(), form.ToInput(files))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ts)
}

func (h *Handler) DeleteTestset(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.testsetSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
