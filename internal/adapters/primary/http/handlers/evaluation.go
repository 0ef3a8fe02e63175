package handlers

import (
	"errors"
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"
	"release-management-service/internal/core/domain"
	"release-management-service/internal/diff"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListModeTypes(c *gin.Context) {
	modes, err := h.evalSvc.ModeTypes(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, modes)
}

func (h *Handler) RunEvaluation(c *gin.Context) {
	var req dto.RunEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.evalSvc.Run(c.Request.Context(), req.ToDomain())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, job)
}

func (h *Handler) GetEvaluationStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.evalSvc.Status(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// WatchEvaluation streams status events until the job is terminal or the
// client goes away.
func (h *Handler) WatchEvaluation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	_, err := h.evalSvc.Watch(ctx, id, func(job *domain.EvaluationJob) {
		c.SSEvent("status", dto.ToStatusEvent(job))
		c.Writer.Flush()
	})

	switch {
	case err == nil:
		c.SSEvent("done", gin.H{"job_id": id})
	case ctx.Err() != nil:
		log.WithField("job_id", id).Debug("watch client disconnected")
		return
	default:
		log.WithError(err).WithField("job_id", id).Warn("watch evaluation failed")
		msg := err.Error()
		if inner := errors.Unwrap(err); inner != nil {
			msg = inner.Error()
		}
		c.SSEvent("error", gin.H{"error": msg})
	}
	c.Writer.Flush()
}

func (h *Handler) ListEvaluations(c *gin.Context) {
	versionID, ok := queryID(c, "version_id")
	if !ok {
		return
	}

	filter := domain.EvaluationFilter{
		VersionID:   versionID,
		Status:      domain.EvaluationStatus(c.Query("status")),
		ListOptions: listOptions(c),
	}

	page, err := h.evalSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list evaluations failed")
		mapDomainError(c, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []domain.EvaluationJob{}
	}
	c.JSON(http.StatusOK, dto.ListResponse[domain.EvaluationJob]{
		Items: items,
		Total: page.Total,
		Skip:  filter.Skip,
		Limit: filter.Limit,
	})
}

func (h *Handler) DeleteEvaluation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.evalSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) BulkDeleteEvaluations(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.evalSvc.DeleteSelected(c.Request.Context(), domain.NewJobSelection(req.JobIDs...))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}

func (h *Handler) DeleteEvaluationsByDate(c *gin.Context) {
	start, err := queryDate(c, "start_date")
	if err != nil {
		mapDomainError(c, err)
		return
	}
	end, err := queryDate(c, "end_date")
	if err != nil {
		mapDomainError(c, err)
		return
	}

	deleted, err := h.evalSvc.DeleteByDateRange(c.Request.Context(), domain.DateRange{Start: start, End: end})
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}

func (h *Handler) DownloadEvaluationOutput(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dl, err := h.evalSvc.DownloadOutput(c.Request.Context(), id, c.DefaultQuery("output_type", string(domain.OutputTypeFinetuned)))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	sendDownload(c, dl)
}

func (h *Handler) GetEvaluationContent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	output := c.DefaultQuery("output_type", string(domain.OutputTypeFinetuned))
	content, err := h.evalSvc.Content(c.Request.Context(), id, output)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": id, "output_type": output, "content": content})
}

// CompareEvaluation takes mode=positional|aligned and granularity=line|word|char.
func (h *Handler) CompareEvaluation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	opts := diff.Options{
		Mode:        diff.ParseMode(c.Query("mode")),
		Granularity: diff.ParseGranularity(c.Query("granularity")),
	}

	cmp, err := h.evalSvc.Compare(c.Request.Context(), id, opts)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resp := dto.ComparisonResponse{
		JobID:                cmp.JobID,
		FinetunedVsReference: dto.ToComparisonView(cmp.Finetuned),
	}
	if cmp.Base != nil {
		v := dto.ToComparisonView(*cmp.Base)
		resp.BaseVsReference = &v
	}
	c.JSON(http.StatusOK, resp)
}
