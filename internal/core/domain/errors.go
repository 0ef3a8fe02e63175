package domain

import "errors"

// ============================================================================
// Backend Errors
// ============================================================================

// Returned (wrapped) by the backend client so callers can use errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrLanguageCodeRequired = errors.New("source and target language codes are required")
	ErrSameLanguageCodes    = errors.New("source and target languages must differ")
	ErrLangPairRequired     = errors.New("language pair is required")
	ErrVersionNameRequired  = errors.New("version name is required")
	ErrVersionRequired      = errors.New("model version is required")
	ErrTestsetRequired      = errors.New("testset is required")
	ErrTestsetNameRequired  = errors.New("testset name is required")
	ErrInvalidFileType      = errors.New("file type must be one of model, hparams, base_model")
	ErrInvalidOutputType    = errors.New("output type must be one of base, finetuned, reference")
	ErrBLEUOutOfRange       = errors.New("BLEU score must be between 0 and 100")
	ErrCOMETOutOfRange      = errors.New("COMET score must be between -1 and 1")
	ErrTitleRequired        = errors.New("release note title is required")
	ErrContentRequired      = errors.New("release note content is required")
	ErrScoreOutOfRange      = errors.New("SQE score must be between 1.0 and 3.0")
	ErrChangePercentRange   = errors.New("test case change percentage must be between 0 and 100")
	ErrNegativeTestCases    = errors.New("total test cases must be >= 0")
	ErrEmptySelection       = errors.New("no evaluation jobs selected")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrDateRangeRequired    = errors.New("start and end dates are required")
	ErrInvalidID            = errors.New("invalid id")
)

// ============================================================================
// Auth Errors
// ============================================================================

var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrMissingToken        = errors.New("missing bearer token")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
)
