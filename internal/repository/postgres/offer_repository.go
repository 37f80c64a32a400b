package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aipricing/domain"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{
		DB: db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uint64) (domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Offer{}, fmt.Errorf("context error: %w", err)
	}

	var offer domain.Offer

	err := r.DB.WithContext(ctx).Preload("Company").First(&offer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Offer{}, errors.New("offer not found")
		}
		return domain.Offer{}, fmt.Errorf("failed to find offer: %w", err)
	}

	return offer, nil
}

func (r *OfferRepository) FindAll(ctx context.Context) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.Offer
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}

	return offers, nil
}

// FindByUser returns offers of companies owned by the given user.
func (r *OfferRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.Offer
	err := r.DB.WithContext(ctx).
		Joins("JOIN companies ON companies.id = offers.company_id").
		Where("companies.user_id = ?", userID).
		Order("offers.created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers for user: %w", err)
	}

	return offers, nil
}

// UpdateScores rewrites the scoring columns of a rescored offer.
func (r *OfferRepository) UpdateScores(ctx context.Context, id uint64, score domain.ScoreBreakdown, finalPrice float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Offer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"ai_score":          score.FinalScore,
		"ml_score":          score.ModelScore,
		"rule_score":        score.RuleScore,
		"model_unavailable": score.ModelUnavailable,
		"priority_level":    string(score.PriorityTier),
		"final_price":       finalPrice,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update offer scores: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("offer not found")
	}

	return nil
}

// Dashboard aggregations

func (r *OfferRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Offer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count offers: %w", err)
	}
	return count, nil
}

func (r *OfferRepository) AvgFinalPrice(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.DB.WithContext(ctx).Model(&domain.Offer{}).
		Select("AVG(final_price)").Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average offer value: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *OfferRepository) TopCompaniesByScore(ctx context.Context, limit int) ([]domain.TopCompany, error) {
	var rows []domain.TopCompany
	err := r.DB.WithContext(ctx).Model(&domain.Offer{}).
		Select("companies.name AS name, MAX(offers.ai_score) AS ai_score").
		Joins("JOIN companies ON companies.id = offers.company_id").
		Group("companies.name").
		Order("ai_score DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank companies: %w", err)
	}
	return rows, nil
}

func (r *OfferRepository) AvgScorePerRegion(ctx context.Context) (map[string]float64, error) {
	var rows []struct {
		Region string
		Avg    float64
	}
	err := r.DB.WithContext(ctx).Model(&domain.Offer{}).
		Select("region, AVG(ai_score) AS avg").
		Group("region").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average scores per region: %w", err)
	}

	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.Region] = row.Avg
	}
	return out, nil
}
