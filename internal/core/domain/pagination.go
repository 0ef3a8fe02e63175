package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

type ListOptions struct {
	Skip  int
	Limit int
}

// Normalize applies the default page size and clamps out-of-range values.
func (o ListOptions) Normalize() ListOptions {
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultPageSize
	}
	if o.Limit > MaxPageSize {
		o.Limit = MaxPageSize
	}
	return o
}

// Page is one window of a paginated list endpoint.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
