package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"
	"release-management-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var modelVersionFileFields = []string{
	domain.FileTypeModel.FormField(),
	domain.FileTypeHparams.FormField(),
	domain.FileTypeBaseModel.FormField(),
}

func (h *Handler) ListModelVersions(c *gin.Context) {
	langPairID, ok := queryID(c, "lang_pair_id")
	if !ok {
		return
	}

	versions, err := h.versionSvc.List(c.Request.Context(), langPairID)
	if err != nil {
		log.WithError(err).Error("list model versions failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

func (h *Handler) GetModelVersion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	mv, err := h.versionSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mv)
}

func (h *Handler) GetModelVersionDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.versionSvc.Detail(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":          detail.Version,
		"training_results": dto.ToTrainingResultResponses(detail.TrainingResults),
		"release_note":     detail.ReleaseNote,
		"sqe_results":      detail.SQEResults,
		"evaluations":      detail.Evaluations,
	})
}

// modelVersionInput binds the multipart form. The caller must run the returned closer.
func modelVersionInput(c *gin.Context) (domain.ModelVersionInput, func(), error) {
	var form dto.ModelVersionForm
	if err := c.ShouldBind(&form); err != nil {
		return domain.ModelVersionInput{}, func() {}, err
	}

	files, closeFiles, err := formFiles(c, modelVersionFileFields...)
	if err != nil {
		return domain.ModelVersionInput{}, closeFiles, err
	}

	in, err := form.ToInput(files)
	return in, closeFiles, err
}

func (h *Handler) CreateModelVersion(c *gin.Context) {
	in, closeFiles, err := modelVersionInput(c)
	defer closeFiles()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mv, err := h.versionSvc.Create(c.Request.Context(), in)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mv)
}

func (h *Handler) UpdateModelVersion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	in, closeFiles, err := modelVersionInput(c)
	defer closeFiles()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mv, err := h.versionSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mv)
}

func (h *Handler) DeleteModelVersion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.versionSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DownloadModelFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dl, err := h.versionSvc.DownloadFile(c.Request.Context(), id, c.Param("file_type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	sendDownload(c, dl)
}
