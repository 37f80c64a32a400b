package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"aipricing/domain"
	"aipricing/pkg/logger"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, userID uint, name string, industryID uint64) (domain.Company, error)
	GetCompanies(ctx context.Context, userID uint, role string) ([]domain.Company, error)
	GetCompanyByID(ctx context.Context, id uint64) (domain.Company, error)
	DeleteCompany(ctx context.Context, id uint64, userID uint, role string) error
	CreateIndustry(ctx context.Context, name string, riskFactor float64) (domain.Industry, error)
	GetIndustries(ctx context.Context) ([]domain.Industry, error)
}

type CompanyHandler struct {
	companyService CompanyService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCompanyHandler(companyService CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateCompanyRequest struct {
	Name       string `json:"name" validate:"required"`
	IndustryID uint64 `json:"industry_id"`
}

type CreateIndustryRequest struct {
	Name       string  `json:"name" validate:"required"`
	RiskFactor float64 `json:"risk_factor" validate:"gte=0,lte=1"`
}

func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req CreateCompanyRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate company request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	company, err := h.companyService.CreateCompany(ctx, userID, req.Name, req.IndustryID)
	if err != nil {
		logger.Error("Failed to create company", err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "required") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(company))
}

func (h *CompanyHandler) GetCompanies(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	companies, err := h.companyService.GetCompanies(ctx, userID, role)
	if err != nil {
		logger.Error("Failed to list companies", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(companies))
}

func (h *CompanyHandler) GetCompanyByID(c echo.Context) error {
	companyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid company id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid company id"})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	company, err := h.companyService.GetCompanyByID(ctx, companyID)
	if err != nil {
		logger.Error("Failed to find company", err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if role != "admin" && company.UserID != userID {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "company does not belong to user"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(company))
}

func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	companyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid company id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid company id"})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.companyService.DeleteCompany(ctx, companyID, userID, role); err != nil {
		logger.Error("Failed to delete company", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "does not belong") {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Company deleted successfully"))
}

func (h *CompanyHandler) CreateIndustry(c echo.Context) error {
	var req CreateIndustryRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate industry request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	industry, err := h.companyService.CreateIndustry(ctx, req.Name, req.RiskFactor)
	if err != nil {
		logger.Error("Failed to create industry", err)
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(industry))
}

func (h *CompanyHandler) GetIndustries(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	industries, err := h.companyService.GetIndustries(ctx)
	if err != nil {
		logger.Error("Failed to list industries", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(industries))
}
