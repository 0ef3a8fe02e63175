package dto

// ListResponse is the envelope of every paginated list.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type DeletedResponse struct {
	DeletedCount int `json:"deleted_count"`
}
