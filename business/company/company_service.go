package company

import (
	"context"
	"errors"
	"fmt"

	"aipricing/domain"
	"aipricing/pkg/logger"
)

// CompanyRepository contract interface
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	FindByID(ctx context.Context, id uint64) (domain.Company, error)
	FindAll(ctx context.Context) ([]domain.Company, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Company, error)
	Delete(ctx context.Context, id uint64) error
}

// IndustryRepository contract interface
type IndustryRepository interface {
	Create(ctx context.Context, industry *domain.Industry) error
	FindByID(ctx context.Context, id uint64) (domain.Industry, error)
	FindAll(ctx context.Context) ([]domain.Industry, error)
}

type companyService struct {
	companyRepo  CompanyRepository
	industryRepo IndustryRepository
}

func NewCompanyService(companyRepo CompanyRepository, industryRepo IndustryRepository) *companyService {
	return &companyService{
		companyRepo:  companyRepo,
		industryRepo: industryRepo,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, userID uint, name string, industryID uint64) (domain.Company, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create company")
		return domain.Company{}, fmt.Errorf("context error: %w", err)
	}

	if name == "" {
		logger.Error("Invalid company data: name is required")
		return domain.Company{}, errors.New("company name is required")
	}

	if industryID != 0 {
		if _, err := s.industryRepo.FindByID(ctx, industryID); err != nil {
			logger.Error("industry not found", err)
			return domain.Company{}, errors.New("industry not found")
		}
	}

	company := domain.Company{
		Name:       name,
		IndustryID: industryID,
		UserID:     userID,
	}

	if err := s.companyRepo.Create(ctx, &company); err != nil {
		logger.Error("failed to create new company", err)
		return domain.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	logger.Info("company created successfully", "company_id", company.ID)

	return company, nil
}

// GetCompanies returns all companies for admins and only the caller's
// companies otherwise.
func (s *companyService) GetCompanies(ctx context.Context, userID uint, role string) ([]domain.Company, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get companies")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if role == "admin" {
		return s.companyRepo.FindAll(ctx)
	}
	return s.companyRepo.FindByUser(ctx, userID)
}

func (s *companyService) GetCompanyByID(ctx context.Context, id uint64) (domain.Company, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get company by id")
		return domain.Company{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid company id")
		return domain.Company{}, errors.New("invalid company id")
	}

	return s.companyRepo.FindByID(ctx, id)
}

func (s *companyService) DeleteCompany(ctx context.Context, id uint64, userID uint, role string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting company")
		return fmt.Errorf("context error: %w", err)
	}

	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("company not found", err)
		return errors.New("company not found")
	}

	if role != "admin" && company.UserID != userID {
		return errors.New("company does not belong to user")
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete company", err)
		return fmt.Errorf("failed to delete company: %w", err)
	}

	logger.Info("company deleted successfully", "company_id", id)

	return nil
}

func (s *companyService) CreateIndustry(ctx context.Context, name string, riskFactor float64) (domain.Industry, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create industry")
		return domain.Industry{}, fmt.Errorf("context error: %w", err)
	}

	if name == "" {
		logger.Error("Invalid industry data: name is required")
		return domain.Industry{}, errors.New("industry name is required")
	}
	if riskFactor < 0 || riskFactor > 1 {
		logger.Error("Invalid industry data: risk factor out of range")
		return domain.Industry{}, errors.New("risk factor must be between 0 and 1")
	}

	industry := domain.Industry{Name: name, RiskFactor: riskFactor}
	if err := s.industryRepo.Create(ctx, &industry); err != nil {
		logger.Error("failed to create new industry", err)
		return domain.Industry{}, fmt.Errorf("failed to create industry: %w", err)
	}

	return industry, nil
}

func (s *companyService) GetIndustries(ctx context.Context) ([]domain.Industry, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get industries")
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.industryRepo.FindAll(ctx)
}
