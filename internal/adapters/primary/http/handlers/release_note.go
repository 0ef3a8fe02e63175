package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

// GetReleaseNote answers 404 when the version has no note.
func (h *Handler) GetReleaseNote(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}

	note, err := h.noteSvc.Get(c.Request.Context(), versionID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "release note not found"})
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Handler) SaveReleaseNote(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}

	var req dto.ReleaseNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteSvc.Save(c.Request.Context(), versionID, req.ToInput())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Handler) DeleteReleaseNote(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), versionID); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
