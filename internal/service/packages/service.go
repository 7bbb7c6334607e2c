package packages

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type PackageServicer interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*model.Package, error)
	Get(ctx context.Context, id int64) (*model.Package, error)
	Create(ctx context.Context, pkg *model.Package) (*model.Package, error)
	Update(ctx context.Context, pkg *model.Package) (*model.Package, error)
	Delete(ctx context.Context, id int64) error

	ListServices(ctx context.Context, packageID int64) ([]*model.PackageServiceWithDetail, error)
	AddService(ctx context.Context, ps *model.PackageService) (*model.PackageService, error)
	UpdateService(ctx context.Context, ps *model.PackageService) (*model.PackageService, error)
	RemoveService(ctx context.Context, id int64) error

	Quote(ctx context.Context, packageID int64, serviceIDs []int64) (*model.PackageQuote, error)
}

type Service struct {
	repo         repository.PackageRepository
	providerRepo repository.ProviderRepository
	serviceRepo  repository.ServiceRepository
}

func NewService(
	repo repository.PackageRepository,
	providerRepo repository.ProviderRepository,
	serviceRepo repository.ServiceRepository,
) *Service {
	return &Service{repo: repo, providerRepo: providerRepo, serviceRepo: serviceRepo}
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*model.Package, error) {
	pkgs, err := s.repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch packages", err)
	}
	return pkgs, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Package, error) {
	pkg, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to fetch package", err)
	}
	if pkg == nil {
		return nil, apperror.NotFound("package")
	}
	return pkg, nil
}

func (s *Service) Create(ctx context.Context, pkg *model.Package) (*model.Package, error) {
	provider, err := s.providerRepo.Get(ctx, pkg.ProviderID)
	if err != nil {
		return nil, apperror.Internal("failed to create package", err)
	}
	if provider == nil {
		return nil, apperror.BadRequest("provider not found")
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, apperror.Internal("failed to create package", err)
	}
	return pkg, nil
}

func (s *Service) Update(ctx context.Context, pkg *model.Package) (*model.Package, error) {
	existing, err := s.repo.Get(ctx, pkg.ID)
	if err != nil {
		return nil, apperror.Internal("failed to update package", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("package")
	}

	pkg.ProviderID = existing.ProviderID
	pkg.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, pkg); err != nil {
		return nil, apperror.Internal("failed to update package", err)
	}
	return pkg, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("package")
		}
		return apperror.Internal("failed to delete package", err)
	}
	return nil
}

func (s *Service) ListServices(ctx context.Context, packageID int64) ([]*model.PackageServiceWithDetail, error) {
	rows, err := s.repo.ListServices(ctx, packageID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch package services", err)
	}

	detailed := make([]*model.PackageServiceWithDetail, 0, len(rows))
	for _, row := range rows {
		service, err := s.serviceRepo.Get(ctx, row.ServiceID)
		if err != nil {
			return nil, apperror.Internal("failed to fetch package services", err)
		}
		detailed = append(detailed, &model.PackageServiceWithDetail{
			PackageService: *row,
			Service:        service,
		})
	}
	return detailed, nil
}

func (s *Service) AddService(ctx context.Context, ps *model.PackageService) (*model.PackageService, error) {
	pkg, err := s.repo.Get(ctx, ps.PackageID)
	if err != nil {
		return nil, apperror.Internal("failed to add package service", err)
	}
	if pkg == nil {
		return nil, apperror.BadRequest("package not found")
	}

	service, err := s.serviceRepo.Get(ctx, ps.ServiceID)
	if err != nil {
		return nil, apperror.Internal("failed to add package service", err)
	}
	if service == nil {
		return nil, apperror.BadRequest("service not found")
	}

	if err := s.repo.AddService(ctx, ps); err != nil {
		return nil, apperror.Internal("failed to add package service", err)
	}
	return ps, nil
}

func (s *Service) UpdateService(ctx context.Context, ps *model.PackageService) (*model.PackageService, error) {
	existing, err := s.repo.GetService(ctx, ps.ID)
	if err != nil {
		return nil, apperror.Internal("failed to update package service", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("package service")
	}

	ps.PackageID = existing.PackageID
	ps.ServiceID = existing.ServiceID
	ps.CreatedAt = existing.CreatedAt
	if err := s.repo.UpdateService(ctx, ps); err != nil {
		return nil, apperror.Internal("failed to update package service", err)
	}
	return ps, nil
}

func (s *Service) RemoveService(ctx context.Context, id int64) error {
	if err := s.repo.RemoveService(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("package service")
		}
		return apperror.Internal("failed to remove package service", err)
	}
	return nil
}

// Quote computes the price of a customized package on the server. Selected
// optional services add their additional price; included services never do.
func (s *Service) Quote(ctx context.Context, packageID int64, serviceIDs []int64) (*model.PackageQuote, error) {
	pkg, err := s.repo.Get(ctx, packageID)
	if err != nil {
		return nil, apperror.Internal("failed to quote package", err)
	}
	if pkg == nil {
		return nil, apperror.NotFound("package")
	}

	rows, err := s.repo.ListServices(ctx, packageID)
	if err != nil {
		return nil, apperror.Internal("failed to quote package", err)
	}

	quote, err := computeQuote(pkg, rows, serviceIDs)
	if err != nil {
		return nil, err
	}
	return quote, nil
}
