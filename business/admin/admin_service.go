package admin

import (
	"context"
	"fmt"

	"aipricing/domain"
	"aipricing/pkg/logger"
)

const topCompaniesLimit = 5

// OfferStatsRepository contract interface
type OfferStatsRepository interface {
	CountAll(ctx context.Context) (int64, error)
	AvgFinalPrice(ctx context.Context) (float64, error)
	TopCompaniesByScore(ctx context.Context, limit int) ([]domain.TopCompany, error)
	AvgScorePerRegion(ctx context.Context) (map[string]float64, error)
}

// CompanyStatsRepository contract interface
type CompanyStatsRepository interface {
	CountAll(ctx context.Context) (int64, error)
	IndustryDistribution(ctx context.Context) (map[string]int64, error)
}

type adminService struct {
	offerRepo   OfferStatsRepository
	companyRepo CompanyStatsRepository
}

func NewAdminService(offerRepo OfferStatsRepository, companyRepo CompanyStatsRepository) *adminService {
	return &adminService{
		offerRepo:   offerRepo,
		companyRepo: companyRepo,
	}
}

// DashboardStats collects the admin overview in one pass.
func (s *adminService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building dashboard stats")
		return domain.DashboardStats{}, fmt.Errorf("context error: %w", err)
	}

	companiesCount, err := s.companyRepo.CountAll(ctx)
	if err != nil {
		logger.Error("Failed to count companies", err)
		return domain.DashboardStats{}, err
	}

	offersCount, err := s.offerRepo.CountAll(ctx)
	if err != nil {
		logger.Error("Failed to count offers", err)
		return domain.DashboardStats{}, err
	}

	avgOfferValue, err := s.offerRepo.AvgFinalPrice(ctx)
	if err != nil {
		logger.Error("Failed to average offer value", err)
		return domain.DashboardStats{}, err
	}

	topCompanies, err := s.offerRepo.TopCompaniesByScore(ctx, topCompaniesLimit)
	if err != nil {
		logger.Error("Failed to rank companies by score", err)
		return domain.DashboardStats{}, err
	}

	industryDistribution, err := s.companyRepo.IndustryDistribution(ctx)
	if err != nil {
		logger.Error("Failed to compute industry distribution", err)
		return domain.DashboardStats{}, err
	}

	avgScorePerRegion, err := s.offerRepo.AvgScorePerRegion(ctx)
	if err != nil {
		logger.Error("Failed to average scores per region", err)
		return domain.DashboardStats{}, err
	}

	return domain.DashboardStats{
		CompaniesCount:       companiesCount,
		OffersCount:          offersCount,
		AvgOfferValue:        avgOfferValue,
		TopCompanies:         topCompanies,
		IndustryDistribution: industryDistribution,
		AvgScorePerRegion:    avgScorePerRegion,
	}, nil
}
