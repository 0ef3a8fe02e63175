package domain

import (
	"strings"
	"time"
)

type Testset struct {
	ID             int64     `json:"testset_id"`
	LangPairID     int64     `json:"lang_pair_id"`
	TestsetName    string    `json:"testset_name"`
	Description    string    `json:"description,omitempty"`
	SourceFileName string    `json:"source_file_name,omitempty"`
	TargetFileName string    `json:"target_file_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type TestsetInput struct {
	LangPairID  int64
	TestsetName string
	Description string
	Files       []FileUpload
}

func (in TestsetInput) Validate() error {
	if in.LangPairID <= 0 {
		return ErrLangPairRequired
	}
	if strings.TrimSpace(in.TestsetName) == "" {
		return ErrTestsetNameRequired
	}
	return nil
}
