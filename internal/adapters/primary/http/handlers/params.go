package handlers

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"release-management-service/internal/adapters/primary/http/dto"
	"release-management-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// pathID parses a positive integer path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", name, domain.ErrInvalidID)})
		return 0, false
	}
	return id, true
}

// queryID reads an optional positive integer query parameter; absent means 0.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", name, domain.ErrInvalidID)})
		return 0, false
	}
	return id, true
}

func listOptions(c *gin.Context) domain.ListOptions {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultPageSize)))
	return domain.ListOptions{Skip: skip, Limit: limit}.Normalize()
}

func queryDate(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, domain.ErrDateRangeRequired
	}
	d, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", name, domain.ErrInvalidRequest)
	}
	return d, nil
}

// formFiles opens every present upload among fields. The returned closer
// must be called once the uploads have been consumed.
func formFiles(c *gin.Context, fields ...string) ([]domain.FileUpload, func(), error) {
	var (
		uploads []domain.FileUpload
		opened  []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, field := range fields {
		fh, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("%s: %w", field, domain.ErrInvalidRequest)
		}
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", field, err)
		}
		opened = append(opened, f)
		uploads = append(uploads, domain.FileUpload{Field: field, FileName: fh.Filename, Content: f})
	}
	return uploads, closeAll, nil
}

// sendDownload streams dl to the client as an attachment and closes it.
func sendDownload(c *gin.Context, dl *domain.Download) {
	defer dl.Body.Close()

	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": dl.FileName}),
	}

	log.WithFields(log.Fields{"file": dl.FileName, "size": dl.Size}).Debug("streaming download")
	c.DataFromReader(http.StatusOK, dl.Size, contentType, dl.Body, headers)
}
