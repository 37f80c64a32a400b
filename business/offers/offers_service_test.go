package offers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aipricing/business/pricing"
	"aipricing/domain"
)

type stubModel struct {
	score float64
	err   error
}

func (m stubModel) Predict(pricing.FeatureVector) (float64, error) {
	return m.score, m.err
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	offers []domain.Offer
	nextID uint64
}

func (r *fakeOfferRepo) Create(_ context.Context, offer *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	offer.ID = r.nextID
	r.offers = append(r.offers, *offer)
	return nil
}

func (r *fakeOfferRepo) FindByID(_ context.Context, id uint64) (domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Offer{}, errors.New("offer not found")
}

func (r *fakeOfferRepo) FindAll(_ context.Context) ([]domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func (r *fakeOfferRepo) FindByUser(_ context.Context, userID uint) ([]domain.Offer, error) {
	return nil, nil
}

func (r *fakeOfferRepo) UpdateScores(_ context.Context, id uint64, score domain.ScoreBreakdown, finalPrice float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.offers {
		if r.offers[i].ID == id {
			r.offers[i].AIScore = score.FinalScore
			r.offers[i].MLScore = score.ModelScore
			r.offers[i].RuleScore = score.RuleScore
			r.offers[i].ModelUnavailable = score.ModelUnavailable
			r.offers[i].PriorityLevel = string(score.PriorityTier)
			r.offers[i].FinalPrice = finalPrice
			return nil
		}
	}
	return errors.New("offer not found")
}

type fakeCompanyRepo struct {
	companies map[uint64]domain.Company
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id uint64) (domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return domain.Company{}, errors.New("company not found")
	}
	return c, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]domain.RescoreJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]domain.RescoreJob)}
}

func (r *fakeJobRepo) Save(_ context.Context, job domain.RescoreJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Find(_ context.Context, id string) (domain.RescoreJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return domain.RescoreJob{}, errors.New("rescore job not found")
	}
	return job, nil
}

func testCompanies() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[uint64]domain.Company{
		1: {ID: 1, UserID: 7, Industry: &domain.Industry{ID: 1, Name: "IT", RiskFactor: 0.3}},
		2: {ID: 2, UserID: 9},
	}}
}

func newTestEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	engine, err := pricing.NewEngine(pricing.DefaultConfig())
	require.NoError(t, err)
	return engine
}

func TestCreateOffer_PersistsScoredOffer(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	svc := NewOfferService(offerRepo, testCompanies(), newTestEngine(t), stubModel{score: 80})

	offer, err := svc.CreateOffer(context.Background(), 7, "user", CreateOfferInput{
		CompanyID:      1,
		EmployeesCount: 120,
		Region:         "Mazowieckie",
		Premium48h:     true,
		AvgOrderValue:  25000,
	})
	require.NoError(t, err)

	assert.NotZero(t, offer.ID)
	assert.Equal(t, 35.0, offer.RuleScore)
	assert.Equal(t, 80.0, offer.MLScore)
	assert.Equal(t, 66.5, offer.AIScore)
	assert.Equal(t, "STANDARD", offer.PriorityLevel)
	assert.False(t, offer.ModelUnavailable)
	assert.Greater(t, offer.FinalPrice, 0.0)

	stored, err := offerRepo.FindByID(context.Background(), offer.ID)
	require.NoError(t, err)
	assert.Equal(t, offer.FinalPrice, stored.FinalPrice)
}

func TestCreateOffer_RejectsForeignCompany(t *testing.T) {
	svc := NewOfferService(&fakeOfferRepo{}, testCompanies(), newTestEngine(t), stubModel{score: 50})

	_, err := svc.CreateOffer(context.Background(), 7, "user", CreateOfferInput{
		CompanyID:      2,
		EmployeesCount: 10,
		Region:         "Inne",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}

func TestCreateOffer_AdminMayUseAnyCompany(t *testing.T) {
	svc := NewOfferService(&fakeOfferRepo{}, testCompanies(), newTestEngine(t), stubModel{score: 50})

	_, err := svc.CreateOffer(context.Background(), 1, "admin", CreateOfferInput{
		CompanyID:      2,
		EmployeesCount: 10,
		Region:         "Inne",
	})
	assert.NoError(t, err)
}

func TestCreateOffer_DefaultRiskWithoutIndustry(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	svc := NewOfferService(offerRepo, testCompanies(), newTestEngine(t), stubModel{err: pricing.ErrModelUnavailable})

	offer, err := svc.CreateOffer(context.Background(), 9, "user", CreateOfferInput{
		CompanyID:      2,
		EmployeesCount: 10,
		Region:         "Inne",
	})
	require.NoError(t, err)
	assert.True(t, offer.ModelUnavailable)
	assert.Equal(t, offer.RuleScore, offer.AIScore)
}

func TestRescore_UpdatesWholeBook(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	companies := testCompanies()
	engine := newTestEngine(t)

	seed := NewOfferService(offerRepo, companies, engine, stubModel{err: pricing.ErrModelUnavailable})
	for i := 0; i < 5; i++ {
		_, err := seed.CreateOffer(context.Background(), 7, "user", CreateOfferInput{
			CompanyID:      1,
			EmployeesCount: 20 + i,
			Region:         "Mazowieckie",
		})
		require.NoError(t, err)
	}

	jobRepo := newFakeJobRepo()
	svc := NewRescoreService(offerRepo, companies, jobRepo, engine, stubModel{score: 90})

	job := domain.RescoreJob{ID: "job-1", Status: domain.RescoreStatusPending}
	require.NoError(t, svc.execute(context.Background(), &job))

	assert.Equal(t, 5, job.Total)
	assert.Equal(t, 5, job.Updated)
	assert.Equal(t, 0, job.Degraded)
	assert.Equal(t, 0, job.Failed)

	offers, err := offerRepo.FindAll(context.Background())
	require.NoError(t, err)
	for _, o := range offers {
		assert.False(t, o.ModelUnavailable)
		assert.Equal(t, 90.0, o.MLScore)
	}
}

func TestRescore_CountsDegradedOffers(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	companies := testCompanies()
	engine := newTestEngine(t)

	seed := NewOfferService(offerRepo, companies, engine, stubModel{score: 60})
	for i := 0; i < 3; i++ {
		_, err := seed.CreateOffer(context.Background(), 7, "user", CreateOfferInput{
			CompanyID:      1,
			EmployeesCount: 15,
			Region:         "Inne",
		})
		require.NoError(t, err)
	}

	jobRepo := newFakeJobRepo()
	svc := NewRescoreService(offerRepo, companies, jobRepo, engine, stubModel{err: pricing.ErrModelUnavailable})

	job := domain.RescoreJob{ID: "job-2", Status: domain.RescoreStatusPending}
	require.NoError(t, svc.execute(context.Background(), &job))

	assert.Equal(t, 3, job.Degraded)
	assert.Equal(t, 3, job.Updated)
}

func TestRescore_CanceledContextAborts(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	companies := testCompanies()
	engine := newTestEngine(t)

	seed := NewOfferService(offerRepo, companies, engine, stubModel{score: 60})
	_, err := seed.CreateOffer(context.Background(), 7, "user", CreateOfferInput{
		CompanyID:      1,
		EmployeesCount: 15,
		Region:         "Inne",
	})
	require.NoError(t, err)

	jobRepo := newFakeJobRepo()
	svc := NewRescoreService(offerRepo, companies, jobRepo, engine, stubModel{score: 50})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := domain.RescoreJob{ID: "job-3", Status: domain.RescoreStatusPending}
	err = svc.execute(ctx, &job)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
