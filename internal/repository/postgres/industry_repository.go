package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aipricing/domain"
)

type IndustryRepository struct {
	DB *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{
		DB: db,
	}
}

func (r *IndustryRepository) Create(ctx context.Context, industry *domain.Industry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(industry).Error; err != nil {
		return fmt.Errorf("failed to create industry: %w", err)
	}

	return nil
}

func (r *IndustryRepository) FindByID(ctx context.Context, id uint64) (domain.Industry, error) {
	if err := ctx.Err(); err != nil {
		return domain.Industry{}, fmt.Errorf("context error: %w", err)
	}

	var industry domain.Industry

	err := r.DB.WithContext(ctx).First(&industry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Industry{}, errors.New("industry not found")
		}
		return domain.Industry{}, fmt.Errorf("failed to find industry: %w", err)
	}

	return industry, nil
}

func (r *IndustryRepository) FindAll(ctx context.Context) ([]domain.Industry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var industries []domain.Industry
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&industries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find industries: %w", err)
	}

	return industries, nil
}
