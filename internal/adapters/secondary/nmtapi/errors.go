package nmtapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"release-management-service/internal/core/domain"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Unwrap maps the status code onto the domain sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthorized
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrInvalidRequest
	case e.StatusCode >= http.StatusInternalServerError:
		return domain.ErrBackendUnavailable
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Detail: extractDetail(status, body)}
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// extractDetail picks the most specific message: detail string, first
// validation item, message, error, then the status text.
func extractDetail(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.Detail) > 0 {
			var s string
			if json.Unmarshal(eb.Detail, &s) == nil && s != "" {
				return s
			}
			var items []validationItem
			if json.Unmarshal(eb.Detail, &items) == nil && len(items) > 0 && items[0].Msg != "" {
				return formatValidation(items[0])
			}
		}
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}

func formatValidation(item validationItem) string {
	var parts []string
	for _, l := range item.Loc {
		if s, ok := l.(string); ok && s != "body" && s != "query" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return item.Msg
	}
	return strings.Join(parts, ".") + ": " + item.Msg
}
