package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aipricing/domain"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		DB: db,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint64) (domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return domain.Company{}, fmt.Errorf("context error: %w", err)
	}

	var company domain.Company

	err := r.DB.WithContext(ctx).Preload("Industry").First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Company{}, errors.New("company not found")
		}
		return domain.Company{}, fmt.Errorf("failed to find company: %w", err)
	}

	return company, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var companies []domain.Company
	err := r.DB.WithContext(ctx).Preload("Industry").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	return companies, nil
}

func (r *CompanyRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var companies []domain.Company
	err := r.DB.WithContext(ctx).Preload("Industry").Where("user_id = ?", userID).Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find companies for user: %w", err)
	}

	return companies, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Company{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("company not found or already deleted")
	}

	return nil
}

func (r *CompanyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Company{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}

// IndustryDistribution counts companies per industry name.
func (r *CompanyRepository) IndustryDistribution(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Name  string
		Count int64
	}
	err := r.DB.WithContext(ctx).Model(&domain.Company{}).
		Select("industries.name AS name, COUNT(companies.id) AS count").
		Joins("JOIN industries ON industries.id = companies.industry_id").
		Group("industries.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group companies by industry: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Count
	}
	return out, nil
}
