package domain

import (
	"strings"
	"time"
)

// ReleaseNote is the single note attached to a model version.
type ReleaseNote struct {
	ID        int64     `json:"note_id"`
	VersionID int64     `json:"version_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReleaseNoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (in ReleaseNoteInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Content) == "" {
		return ErrContentRequired
	}
	return nil
}
