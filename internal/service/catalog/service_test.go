package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type stubServiceRepo struct {
	services map[int64]*model.Service
}

func (r *stubServiceRepo) Get(_ context.Context, id int64) (*model.Service, error) {
	return r.services[id], nil
}

func (r *stubServiceRepo) ListByProvider(context.Context, int64) ([]*model.Service, error) {
	return nil, nil
}

func (r *stubServiceRepo) ListByCategory(_ context.Context, categoryID int64) ([]*model.Service, error) {
	out := []*model.Service{}
	for _, s := range r.services {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubServiceRepo) ListFeatured(context.Context) ([]*model.Service, error) {
	out := []*model.Service{}
	for _, s := range r.services {
		if s.Featured {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubServiceRepo) Search(context.Context, *model.SearchFilters) ([]*model.Service, error) {
	return nil, nil
}

func (r *stubServiceRepo) Create(_ context.Context, service *model.Service) error {
	service.ID = int64(len(r.services) + 1)
	r.services[service.ID] = service
	return nil
}

func (r *stubServiceRepo) Update(context.Context, *model.Service) error { return nil }

type stubCategoryRepo struct {
	categories map[int64]*model.Category
	listCalls  int
}

func (r *stubCategoryRepo) List(context.Context) ([]*model.Category, error) {
	r.listCalls++
	out := make([]*model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Get(_ context.Context, id int64) (*model.Category, error) {
	return r.categories[id], nil
}

type stubProviderRepo struct {
	providers map[int64]*model.Provider
}

func (r *stubProviderRepo) Get(_ context.Context, id int64) (*model.Provider, error) {
	return r.providers[id], nil
}

func (r *stubProviderRepo) GetByUserID(context.Context, int64) (*model.Provider, error) {
	return nil, nil
}

func (r *stubProviderRepo) Create(context.Context, *model.Provider) error { return nil }
func (r *stubProviderRepo) Update(context.Context, *model.Provider) error { return nil }
func (r *stubProviderRepo) Register(context.Context, *model.ProviderRegistration) error {
	return nil
}

type stubReviewRepo struct {
	reviews map[int64][]*model.Review
}

func (r *stubReviewRepo) ListByService(_ context.Context, serviceID int64) ([]*model.Review, error) {
	return r.reviews[serviceID], nil
}

func (r *stubReviewRepo) Create(context.Context, *model.Review) error { return nil }

func newFixtureService() (*Service, *stubServiceRepo, *stubCategoryRepo) {
	serviceRepo := &stubServiceRepo{services: map[int64]*model.Service{
		1: {ID: 1, ProviderID: 1, CategoryID: 1, Title: "BBQ Catering", Price: "50000", Featured: true},
		2: {ID: 2, ProviderID: 1, CategoryID: 3, Title: "DJ Set", Price: "30000"},
	}}
	categoryRepo := &stubCategoryRepo{categories: map[int64]*model.Category{
		1: {ID: 1, Name: "Catering"},
		3: {ID: 3, Name: "Música"},
	}}
	providerRepo := &stubProviderRepo{providers: map[int64]*model.Provider{
		1: {ID: 1, BusinessName: "Eventos del Sur", Location: "Montevideo"},
	}}
	reviewRepo := &stubReviewRepo{reviews: map[int64][]*model.Review{
		1: {{ID: 1, ServiceID: 1, Rating: 5, Comment: "excelente"}},
	}}

	svc := NewService(serviceRepo, categoryRepo, providerRepo, reviewRepo, time.Minute)
	return svc, serviceRepo, categoryRepo
}

func TestListCategoriesIsCached(t *testing.T) {
	svc, _, categoryRepo := newFixtureService()

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	_, err = svc.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, categoryRepo.listCalls)
}

func TestListServicesByCategoryEnriches(t *testing.T) {
	svc, _, _ := newFixtureService()

	services, err := svc.ListServicesByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, services, 1)

	assert.Equal(t, "BBQ Catering", services[0].Title)
	require.NotNil(t, services[0].Provider)
	assert.Equal(t, "Eventos del Sur", services[0].Provider.BusinessName)
	require.NotNil(t, services[0].Category)
	assert.Equal(t, "Catering", services[0].Category.Name)
}

func TestListServicesByCategoryEmptyForUnknownCategory(t *testing.T) {
	svc, _, _ := newFixtureService()

	services, err := svc.ListServicesByCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestGetServiceIncludesReviews(t *testing.T) {
	svc, _, _ := newFixtureService()

	service, err := svc.GetService(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, service.Reviews, 1)
	assert.Equal(t, 5, service.Reviews[0].Rating)
}

func TestGetServiceNotFound(t *testing.T) {
	svc, _, _ := newFixtureService()

	_, err := svc.GetService(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateServiceRejectsUnknownCategory(t *testing.T) {
	svc, _, _ := newFixtureService()

	_, err := svc.CreateService(context.Background(), &model.Service{
		ProviderID: 1,
		CategoryID: 42,
		Title:      "Fotografía",
		Price:      "20000",
		PriceType:  model.PriceTypePerEvent,
	})
	require.Error(t, err)

	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Status)
}
