package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListLanguagePairs(c *gin.Context) {
	pairs, err := h.langPairSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list language pairs failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairs)
}

func (h *Handler) GetLanguagePair(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	lp, err := h.langPairSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lp)
}

func (h *Handler) CreateLanguagePair(c *gin.Context) {
	var req dto.LanguagePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lp, err := h.langPairSvc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lp)
}

func (h *Handler) UpdateLanguagePair(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.LanguagePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lp, err := h.langPairSvc.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lp)
}

func (h *Handler) DeleteLanguagePair(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.langPairSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
