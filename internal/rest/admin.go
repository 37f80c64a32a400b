package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"aipricing/domain"
	"aipricing/internal/repository/redisrepo"
	"aipricing/pkg/logger"
)

type AdminService interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type RescoreService interface {
	StartRescore(ctx context.Context) (string, error)
	JobStatus(ctx context.Context, id string) (domain.RescoreJob, error)
}

// ModelReloader swaps the serving model artifact without a restart.
type ModelReloader interface {
	Load(path string) error
	Version() string
	Loaded() bool
}

type AdminHandler struct {
	adminService      AdminService
	rescoreService    RescoreService
	model             ModelReloader
	modelArtifactPath string
	timeout           time.Duration
}

func NewAdminHandler(
	adminService AdminService,
	rescoreService RescoreService,
	model ModelReloader,
	modelArtifactPath string,
) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		rescoreService:    rescoreService,
		model:             model,
		modelArtifactPath: modelArtifactPath,
		timeout:           10 * time.Second,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.adminService.DashboardStats(ctx)
	if err != nil {
		logger.Error("Failed to build dashboard stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

// StartRescore kicks off a background batch over the whole offer book
// and returns the job id for polling.
func (h *AdminHandler) StartRescore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	jobID, err := h.rescoreService.StartRescore(ctx)
	if err != nil {
		logger.Error("Failed to start rescore job", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusAccepted, fres.Response.StatusOK(map[string]interface{}{
		"job_id": jobID,
	}))
}

func (h *AdminHandler) RescoreStatus(c echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing job id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	job, err := h.rescoreService.JobStatus(ctx, jobID)
	if err != nil {
		if errors.Is(err, redisrepo.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to read rescore job", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(job))
}

// ReloadModel re-reads the model artifact from disk. On failure the
// previous snapshot keeps serving.
func (h *AdminHandler) ReloadModel(c echo.Context) error {
	if err := h.model.Load(h.modelArtifactPath); err != nil {
		logger.Error("Failed to reload model artifact", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	logger.Info("model artifact reloaded", "version", h.model.Version())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"loaded":  h.model.Loaded(),
		"version": h.model.Version(),
	}))
}
