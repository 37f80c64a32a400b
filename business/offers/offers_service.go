package offers

import (
	"context"
	"errors"
	"fmt"

	"aipricing/business/pricing"
	"aipricing/domain"
	"aipricing/pkg/logger"
)

// Repository contracts

type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	FindByID(ctx context.Context, id uint64) (domain.Offer, error)
	FindAll(ctx context.Context) ([]domain.Offer, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Offer, error)
	UpdateScores(ctx context.Context, id uint64, score domain.ScoreBreakdown, finalPrice float64) error
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Company, error)
}

// CreateOfferInput is the caller-facing shape of a pricing request. The
// industry risk factor is resolved from the company, not caller-supplied.
type CreateOfferInput struct {
	CompanyID        uint64
	EmployeesCount   int
	Region           string
	Premium48h       bool
	AvgOrderValue    float64
	PriorOffersCount int
}

type OfferService struct {
	offerRepo   OfferRepository
	companyRepo CompanyRepository
	engine      *pricing.Engine
	model       pricing.Model
}

func NewOfferService(
	offerRepo OfferRepository,
	companyRepo CompanyRepository,
	engine *pricing.Engine,
	model pricing.Model,
) *OfferService {
	return &OfferService{
		offerRepo:   offerRepo,
		companyRepo: companyRepo,
		engine:      engine,
		model:       model,
	}
}

// CreateOffer prices one offer and persists the result. Non-admin callers
// may only create offers for their own companies.
func (s *OfferService) CreateOffer(ctx context.Context, userID uint, role string, in CreateOfferInput) (domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Offer{}, fmt.Errorf("context error: %w", err)
	}

	company, err := s.companyRepo.FindByID(ctx, in.CompanyID)
	if err != nil {
		return domain.Offer{}, err
	}
	if role != "admin" && company.UserID != userID {
		return domain.Offer{}, errors.New("company does not belong to user")
	}

	industryRisk := domain.DefaultIndustryRisk
	if company.Industry != nil {
		industryRisk = company.Industry.RiskFactor
	}

	attrs := domain.OfferAttributes{
		EmployeesCount:     in.EmployeesCount,
		Region:             domain.Region(in.Region),
		Premium48h:         in.Premium48h,
		AvgOrderValue:      in.AvgOrderValue,
		PriorOffersCount:   in.PriorOffersCount,
		IndustryRiskFactor: industryRisk,
	}

	result, err := s.engine.ComputeOffer(attrs, s.model)
	if err != nil {
		return domain.Offer{}, err
	}

	if result.Score.ModelUnavailable {
		logger.Warn("offer scored on degraded rule-only path",
			"company_id", in.CompanyID,
		)
	}

	offer := domain.Offer{
		CompanyID:        in.CompanyID,
		EmployeesCount:   attrs.EmployeesCount,
		Region:           string(attrs.Region),
		Premium48h:       attrs.Premium48h,
		AvgOrderValue:    attrs.AvgOrderValue,
		PriorOffersCount: attrs.PriorOffersCount,
		BasePrice:        result.Price.BasePrice,
		FinalPrice:       result.Price.FinalPrice,
		AIScore:          result.Score.FinalScore,
		MLScore:          result.Score.ModelScore,
		RuleScore:        result.Score.RuleScore,
		ModelUnavailable: result.Score.ModelUnavailable,
		PriorityLevel:    string(result.Score.PriorityTier),
	}

	if err := s.offerRepo.Create(ctx, &offer); err != nil {
		return domain.Offer{}, err
	}

	return offer, nil
}

// Preview prices an offer without persisting it.
func (s *OfferService) Preview(ctx context.Context, in CreateOfferInput) (domain.OfferResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.OfferResult{}, fmt.Errorf("context error: %w", err)
	}

	industryRisk := domain.DefaultIndustryRisk
	if in.CompanyID != 0 {
		if company, err := s.companyRepo.FindByID(ctx, in.CompanyID); err == nil && company.Industry != nil {
			industryRisk = company.Industry.RiskFactor
		}
	}

	return s.engine.ComputeOffer(domain.OfferAttributes{
		EmployeesCount:     in.EmployeesCount,
		Region:             domain.Region(in.Region),
		Premium48h:         in.Premium48h,
		AvgOrderValue:      in.AvgOrderValue,
		PriorOffersCount:   in.PriorOffersCount,
		IndustryRiskFactor: industryRisk,
	}, s.model)
}

// ListOffers returns all offers for admins and only the caller's
// companies' offers otherwise.
func (s *OfferService) ListOffers(ctx context.Context, userID uint, role string) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if role == "admin" {
		return s.offerRepo.FindAll(ctx)
	}
	return s.offerRepo.FindByUser(ctx, userID)
}

func (s *OfferService) GetOffer(ctx context.Context, id uint64) (domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Offer{}, fmt.Errorf("context error: %w", err)
	}

	return s.offerRepo.FindByID(ctx, id)
}
