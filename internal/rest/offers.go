package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"aipricing/business/offers"
	"aipricing/business/pricing"
	"aipricing/domain"
	"aipricing/pkg/logger"
	"aipricing/pkg/metrics"
)

type OfferService interface {
	CreateOffer(ctx context.Context, userID uint, role string, in offers.CreateOfferInput) (domain.Offer, error)
	Preview(ctx context.Context, in offers.CreateOfferInput) (domain.OfferResult, error)
	ListOffers(ctx context.Context, userID uint, role string) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id uint64) (domain.Offer, error)
}

type OfferHandler struct {
	offerService OfferService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewOfferHandler(offerService OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type CreateOfferRequest struct {
	CompanyID        uint64  `json:"company_id" validate:"required"`
	EmployeesCount   int     `json:"employees_count" validate:"required,gt=0"`
	Region           string  `json:"region" validate:"required"`
	Premium48h       bool    `json:"premium_48h"`
	AvgOrderValue    float64 `json:"avg_order_value" validate:"gte=0"`
	PriorOffersCount int     `json:"prior_offers_count" validate:"gte=0"`
}

func (r CreateOfferRequest) toInput() offers.CreateOfferInput {
	return offers.CreateOfferInput{
		CompanyID:        r.CompanyID,
		EmployeesCount:   r.EmployeesCount,
		Region:           r.Region,
		Premium48h:       r.Premium48h,
		AvgOrderValue:    r.AvgOrderValue,
		PriorOffersCount: r.PriorOffersCount,
	}
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req CreateOfferRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate offer request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	metrics.OfferComputeRequests.Inc()

	offer, err := h.offerService.CreateOffer(ctx, userID, role, req.toInput())
	if err != nil {
		return h.offerError(c, err)
	}

	metrics.OfferComputeLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(offer))
}

// PreviewOffer prices the request without persisting anything.
func (h *OfferHandler) PreviewOffer(c echo.Context) error {
	var req CreateOfferRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// A preview does not need an existing company.
	req.CompanyID = 0
	if err := h.validator.StructExcept(&req, "CompanyID"); err != nil {
		logger.Error("Failed to validate offer request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	metrics.OfferComputeRequests.Inc()

	result, err := h.offerService.Preview(ctx, req.toInput())
	if err != nil {
		return h.offerError(c, err)
	}

	metrics.OfferComputeLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *OfferHandler) GetAllOffers(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offerList, err := h.offerService.ListOffers(ctx, userID, role)
	if err != nil {
		logger.Error("Failed to list offers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(offerList))
}

func (h *OfferHandler) GetOfferByID(c echo.Context) error {
	offerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid offer id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid offer id"})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offer, err := h.offerService.GetOffer(ctx, offerID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if role != "admin" && offer.Company != nil && offer.Company.UserID != userID {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "offer does not belong to user"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(offer))
}

func (h *OfferHandler) offerError(c echo.Context, err error) error {
	logger.Error("Failed to price offer", err)

	var invalidErr *pricing.InvalidAttributesError
	if errors.As(err, &invalidErr) {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "does not belong") {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}
