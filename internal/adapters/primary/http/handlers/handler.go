package handlers

import (
	"release-management-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authSvc      *services.AuthService
	langPairSvc  *services.LanguagePairService
	versionSvc   *services.ModelVersionService
	testsetSvc   *services.TestsetService
	resultSvc    *services.TrainingResultService
	noteSvc      *services.ReleaseNoteService
	evalSvc      *services.EvaluationService
	sqeSvc       *services.SQEService
	dashboardSvc *services.DashboardService
}

func New(
	authSvc *services.AuthService,
	langPairSvc *services.LanguagePairService,
	versionSvc *services.ModelVersionService,
	testsetSvc *services.TestsetService,
	resultSvc *services.TrainingResultService,
	noteSvc *services.ReleaseNoteService,
	evalSvc *services.EvaluationService,
	sqeSvc *services.SQEService,
	dashboardSvc *services.DashboardService,
) *Handler {
	return &Handler{
		authSvc:      authSvc,
		langPairSvc:  langPairSvc,
		versionSvc:   versionSvc,
		testsetSvc:   testsetSvc,
		resultSvc:    resultSvc,
		noteSvc:      noteSvc,
		evalSvc:      evalSvc,
		sqeSvc:       sqeSvc,
		dashboardSvc: dashboardSvc,
	}
}

// RegisterRoutes mounts the API on r. Everything except login runs behind auth.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth ...gin.HandlerFunc) {
	r.POST("/auth/login", h.Login)

	p := r.Group("", auth...)

	// Auth
	p.POST("/auth/logout", h.Logout)
	p.GET("/auth/me", h.CurrentUser)

	// Language Pairs
	p.GET("/language-pairs", h.ListLanguagePairs)
	p.POST("/language-pairs", h.CreateLanguagePair)
	p.GET("/language-pairs/:id", h.GetLanguagePair)
	p.PUT("/language-pairs/:id", h.UpdateLanguagePair)
	p.DELETE("/language-pairs/:id", h.DeleteLanguagePair)

	// Model Versions
	p.GET("/model-versions", h.ListModelVersions)
	p.POST("/model-versions", h.CreateModelVersion)
	p.GET("/model-versions/:id", h.GetModelVersion)
	p.PUT("/model-versions/:id", h.UpdateModelVersion)
	p.DELETE("/model-versions/:id", h.DeleteModelVersion)
	p.GET("/model-versions/:id/detail", h.GetModelVersionDetail)
	p.GET("/model-versions/:id/files/:file_type", h.DownloadModelFile)

	// Testsets
	p.GET("/testsets", h.ListTestsets)
	p.POST("/testsets", h.CreateTestset)
	p.GET("/testsets/:id", h.GetTestset)
	p.DELETE("/testsets/:id", h.DeleteTestset)

	// Training Results
	p.GET("/training-results", h.ListTrainingResults)
	p.POST("/training-results", h.CreateTrainingResult)
	p.DELETE("/training-results/:id", h.DeleteTrainingResult)

	// Release Notes
	p.GET("/release-notes/:version_id", h.GetReleaseNote)
	p.PUT("/release-notes/:version_id", h.SaveReleaseNote)
	p.DELETE("/release-notes/:version_id", h.DeleteReleaseNote)

	// Evaluations
	p.GET("/evaluations", h.ListEvaluations)
	p.POST("/evaluations/run", h.RunEvaluation)
	p.GET("/evaluations/modes", h.ListModeTypes)
	p.POST("/evaluations/bulk-delete", h.BulkDeleteEvaluations)
	p.DELETE("/evaluations/by-date", h.DeleteEvaluationsByDate)
	p.GET("/evaluations/:id/status", h.GetEvaluationStatus)
	p.GET("/evaluations/:id/watch", h.WatchEvaluation)
	p.GET("/evaluations/:id/download", h.DownloadEvaluationOutput)
	p.GET("/evaluations/:id/content", h.GetEvaluationContent)
	p.GET("/evaluations/:id/comparison", h.CompareEvaluation)
	p.DELETE("/evaluations/:id", h.DeleteEvaluation)

	// SQE Results
	p.GET("/sqe-results", h.ListSQEResults)
	p.POST("/sqe-results", h.CreateSQEResult)
	p.GET("/sqe-results/analytics", h.GetSQEAnalytics)
	p.GET("/sqe-results/by-version/:version_id", h.ListSQEResultsByVersion)
	p.GET("/sqe-results/:id", h.GetSQEResult)
	p.PUT("/sqe-results/:id", h.UpdateSQEResult)
	p.DELETE("/sqe-results/:id", h.DeleteSQEResult)

	// Dashboard
	p.GET("/dashboard/overview", h.GetDashboardOverview)
}
