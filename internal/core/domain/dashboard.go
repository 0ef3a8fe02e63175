package domain

type DashboardStats struct {
	TotalLanguagePairs int `json:"total_language_pairs"`
	TotalModelVersions int `json:"total_model_versions"`
	TotalTestsets      int `json:"total_testsets"`
	TotalEvaluations   int `json:"total_evaluations"`
	ActiveEvaluations  int `json:"active_evaluations"`
}

type StorageCategory struct {
	Name      string `json:"name"`
	Bytes     int64  `json:"size_bytes"`
	FileCount int    `json:"file_count"`
}

type StorageOverview struct {
	TotalBytes int64             `json:"total_bytes"`
	UsedBytes  int64             `json:"used_bytes"`
	Categories []StorageCategory `json:"categories"`
}

// UsedPercent is 0 when the total is unknown.
func (s StorageOverview) UsedPercent() float64 {
	if s.TotalBytes <= 0 {
		return 0
	}
	return float64(s.UsedBytes) / float64(s.TotalBytes) * 100
}

const (
	ComponentHealthy   = "healthy"
	ComponentDegraded  = "degraded"
	ComponentUnhealthy = "unhealthy"
	ComponentUnknown   = "unknown"
)

type ComponentStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type SystemStatus struct {
	Status     string            `json:"status"`
	Components []ComponentStatus `json:"components"`
}

// Overview is everything the dashboard landing page renders.
type Overview struct {
	Stats             DashboardStats  `json:"stats"`
	Storage           StorageOverview `json:"storage"`
	System            SystemStatus    `json:"system"`
	ActiveEvaluations []EvaluationJob `json:"active_evaluations"`
}
