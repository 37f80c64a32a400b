package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"aipricing/business/simulation"
	"aipricing/domain"
	"aipricing/pkg/logger"
)

type SimulationService interface {
	SimulatePrice(ctx context.Context, in simulation.Input) (domain.SimulationResult, error)
	ScenarioAnalysis(ctx context.Context, in simulation.Input) (domain.ScenarioAnalysis, error)
}

type SimulationHandler struct {
	simulationService SimulationService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewSimulationHandler(simulationService SimulationService) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
		validator:         validator.New(),
		// Monte Carlo runs take longer than a plain lookup.
		timeout: 30 * time.Second,
	}
}

type SimulationRequest struct {
	BasePrice          float64 `json:"base_price" validate:"required,gt=0"`
	EmployeesCount     int     `json:"employees_count" validate:"required,gt=0"`
	Region             string  `json:"region" validate:"required"`
	Premium48h         bool    `json:"premium_48h"`
	IndustryRiskFactor float64 `json:"industry_risk_factor" validate:"gte=0,lte=1"`
	AIScore            float64 `json:"ai_score" validate:"gte=0,lte=100"`
	CustomVolatility   float64 `json:"custom_volatility" validate:"gte=0,lte=1"`
}

func (r SimulationRequest) toInput() simulation.Input {
	return simulation.Input{
		BasePrice:          r.BasePrice,
		EmployeesCount:     r.EmployeesCount,
		Region:             domain.Region(r.Region),
		Premium48h:         r.Premium48h,
		IndustryRiskFactor: r.IndustryRiskFactor,
		AIScore:            r.AIScore,
		CustomVolatility:   r.CustomVolatility,
	}
}

func (h *SimulationHandler) SimulatePrice(c echo.Context) error {
	var req SimulationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate simulation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.simulationService.SimulatePrice(ctx, req.toInput())
	if err != nil {
		logger.Error("Failed to run price simulation", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *SimulationHandler) ScenarioAnalysis(c echo.Context) error {
	var req SimulationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate simulation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analysis, err := h.simulationService.ScenarioAnalysis(ctx, req.toInput())
	if err != nil {
		logger.Error("Failed to run scenario analysis", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analysis))
}
