package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"
	"release-management-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSQEResults(c *gin.Context) {
	langPairID, ok := queryID(c, "lang_pair_id")
	if !ok {
		return
	}

	filter := domain.SQEFilter{LangPairID: langPairID, ListOptions: listOptions(c)}
	page, err := h.sqeSvc.List(c.Request.Context(), filter)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []domain.SQEResult{}
	}
	c.JSON(http.StatusOK, dto.ListResponse[domain.SQEResult]{
		Items: items,
		Total: page.Total,
		Skip:  filter.Skip,
		Limit: filter.Limit,
	})
}

func (h *Handler) GetSQEResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.sqeSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListSQEResultsByVersion(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}

	results, err := h.sqeSvc.ByVersion(c.Request.Context(), versionID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) CreateSQEResult(c *gin.Context) {
	var req dto.SQEResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.ToInput()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	res, err := h.sqeSvc.Create(c.Request.Context(), in)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateSQEResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SQEResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.ToInput()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	res, err := h.sqeSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteSQEResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.sqeSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetSQEAnalytics(c *gin.Context) {
	langPairID, ok := queryID(c, "lang_pair_id")
	if !ok {
		return
	}

	analytics, err := h.sqeSvc.Analytics(c.Request.Context(), langPairID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
