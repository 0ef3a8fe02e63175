package domain

import (
	"io"
	"strings"
	"time"
)

// FileType identifies one of the files attached to a model version.
type FileType string

const (
	FileTypeModel     FileType = "model"
	FileTypeHparams   FileType = "hparams"
	FileTypeBaseModel FileType = "base_model"
)

// ParseFileType validates a file type coming from a URL or flag.
func ParseFileType(s string) (FileType, error) {
	switch ft := FileType(strings.ToLower(strings.TrimSpace(s))); ft {
	case FileTypeModel, FileTypeHparams, FileTypeBaseModel:
		return ft, nil
	}
	return "", ErrInvalidFileType
}

// FormField is the multipart field name the backend expects for this file.
func (ft FileType) FormField() string {
	switch ft {
	case FileTypeHparams:
		return "hparams_file"
	case FileTypeBaseModel:
		return "base_model_file"
	default:
		return "model_file"
	}
}

type ModelVersion struct {
	ID                int64      `json:"version_id"`
	LangPairID        int64      `json:"lang_pair_id"`
	Version           string     `json:"version"`
	ReleaseDate       *time.Time `json:"release_date,omitempty"`
	Description       string     `json:"description,omitempty"`
	ModelFileName     *string    `json:"model_file_name,omitempty"`
	HparamsFileName   *string    `json:"hparams_file_name,omitempty"`
	BaseModelFileName *string    `json:"base_model_file_name,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// HasFile reports whether a file of the given type is attached.
func (mv *ModelVersion) HasFile(ft FileType) bool {
	var name *string
	switch ft {
	case FileTypeModel:
		name = mv.ModelFileName
	case FileTypeHparams:
		name = mv.HparamsFileName
	case FileTypeBaseModel:
		name = mv.BaseModelFileName
	}
	return name != nil && *name != ""
}

// FileUpload is a file streamed to the backend as part of a multipart form.
type FileUpload struct {
	Field    string
	FileName string
	Content  io.Reader
}

// ModelVersionInput carries the form fields of a create or update.
type ModelVersionInput struct {
	LangPairID  int64
	Version     string
	ReleaseDate *time.Time
	Description string
	Files       []FileUpload
}

func (in ModelVersionInput) Validate() error {
	if in.LangPairID <= 0 {
		return ErrLangPairRequired
	}
	if strings.TrimSpace(in.Version) == "" {
		return ErrVersionNameRequired
	}
	return nil
}

// Download is a file stream returned by the backend with the name it should be saved under.
type Download struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
