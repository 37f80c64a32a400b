package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aipricing/business/offers"
	"aipricing/business/pricing"
	"aipricing/domain"
)

type stubOfferService struct {
	result domain.OfferResult
	offer  domain.Offer
	err    error
}

func (s *stubOfferService) CreateOffer(context.Context, uint, string, offers.CreateOfferInput) (domain.Offer, error) {
	return s.offer, s.err
}

func (s *stubOfferService) Preview(context.Context, offers.CreateOfferInput) (domain.OfferResult, error) {
	return s.result, s.err
}

func (s *stubOfferService) ListOffers(context.Context, uint, string) ([]domain.Offer, error) {
	return []domain.Offer{s.offer}, s.err
}

func (s *stubOfferService) GetOffer(context.Context, uint64) (domain.Offer, error) {
	return s.offer, s.err
}

func previewRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers/preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPreviewOffer_ReturnsScoredResult(t *testing.T) {
	svc := &stubOfferService{
		result: domain.OfferResult{
			Score: domain.ScoreBreakdown{FinalScore: 66.5, PriorityTier: domain.TierStandard},
			Price: domain.PriceBreakdown{FinalPrice: 10800},
		},
	}
	handler := NewOfferHandler(svc)

	c, rec := previewRequest(`{"employees_count":120,"region":"Mazowieckie","premium_48h":true,"avg_order_value":25000}`)
	require.NoError(t, handler.PreviewOffer(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, rec.Body.String(), "66.5")
	assert.Contains(t, rec.Body.String(), "STANDARD")
}

func TestPreviewOffer_RejectsInvalidBody(t *testing.T) {
	handler := NewOfferHandler(&stubOfferService{})

	c, rec := previewRequest(`{"employees_count":0,"region":""}`)
	require.NoError(t, handler.PreviewOffer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewOffer_MapsAttributeErrorsToBadRequest(t *testing.T) {
	svc := &stubOfferService{
		err: &pricing.InvalidAttributesError{Field: "employees_count", Reason: "must be positive"},
	}
	handler := NewOfferHandler(svc)

	c, rec := previewRequest(`{"employees_count":5,"region":"Inne"}`)
	require.NoError(t, handler.PreviewOffer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "employees_count")
}

func TestCreateOffer_RequiresAuthContext(t *testing.T) {
	handler := NewOfferHandler(&stubOfferService{})

	c, rec := previewRequest(`{"company_id":1,"employees_count":10,"region":"Inne"}`)
	require.NoError(t, handler.CreateOffer(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAllOffers_ServiceFailureIs500(t *testing.T) {
	handler := NewOfferHandler(&stubOfferService{err: errors.New("db down")})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))
	c.Set("role", "user")

	require.NoError(t, handler.GetAllOffers(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
