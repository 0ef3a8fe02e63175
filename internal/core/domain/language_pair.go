package domain

import (
	"strings"
	"time"
)

// LanguagePair is a translation direction such as en → vi.
type LanguagePair struct {
	ID                 int64     `json:"lang_pair_id"`
	SourceLanguageCode string    `json:"source_language_code"`
	TargetLanguageCode string    `json:"target_language_code"`
	Description        string    `json:"description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LanguagePairInput carries the writable fields of a language pair.
type LanguagePairInput struct {
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
	Description        string `json:"description,omitempty"`
}

func (in LanguagePairInput) Validate() error {
	src := strings.TrimSpace(in.SourceLanguageCode)
	tgt := strings.TrimSpace(in.TargetLanguageCode)
	if src == "" || tgt == "" {
		return ErrLanguageCodeRequired
	}
	if strings.EqualFold(src, tgt) {
		return ErrSameLanguageCodes
	}
	return nil
}

// Label renders the pair as "en → vi".
func (lp LanguagePair) Label() string {
	return lp.SourceLanguageCode + " → " + lp.TargetLanguageCode
}
