package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"aipricing/pkg/logger"
)

// ModelStatus reports whether a model artifact is currently serving.
type ModelStatus interface {
	Loaded() bool
	Version() string
}

type HealthHandler struct {
	db    *gorm.DB
	model ModelStatus
}

func NewHealthHandler(db *gorm.DB, model ModelStatus) *HealthHandler {
	return &HealthHandler{db: db, model: model}
}

// Health pings the database and reports model availability. The service
// stays up without a model; scoring just runs degraded.
func (h *HealthHandler) Health(c echo.Context) error {
	status := http.StatusOK
	dbStatus := "up"

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		logger.Error("Database ping failed", err)
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]interface{}{
		"status":        dbStatus,
		"model_loaded":  h.model.Loaded(),
		"model_version": h.model.Version(),
		"time":          time.Now().UTC(),
	})
}
