package service

import (
	"context"
	"fmt"
	"math"

	"parceldesk/internal/dto"
	"parceldesk/internal/model"
	"parceldesk/internal/repository"
)

type PackageService struct {
	pkgRepo  *repository.PackageRepository
	typeRepo *repository.PackageTypeRepository
}

func NewPackageService(pkgRepo *repository.PackageRepository, typeRepo *repository.PackageTypeRepository) *PackageService {
	return &PackageService{pkgRepo: pkgRepo, typeRepo: typeRepo}
}

// Register stores a new package for the session. The delivery cost stays
// unset until the next pricing sweep.
func (s *PackageService) Register(ctx context.Context, sessionID string, req *dto.RegisterPackageRequest) (*model.Package, error) {
	exists, err := s.typeRepo.Exists(ctx, req.TypeID)
	if err != nil {
		return nil, fmt.Errorf("check package type: %w", err)
	}
	if !exists {
		return nil, &validationErr{field: "type_id", message: fmt.Sprintf("package type %d not found", req.TypeID)}
	}

	pkg := &model.Package{
		Name:            req.Name,
		Weight:          req.Weight,
		TypeID:          req.TypeID,
		ContentValueUSD: math.Round(req.ContentValueUSD*100) / 100,
		SessionID:       sessionID,
	}

	if err := s.pkgRepo.Insert(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

func (s *PackageService) List(ctx context.Context, sessionID string, p dto.PaginationParams) ([]model.Package, int, error) {
	total, err := s.pkgRepo.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, 0, fmt.Errorf("count packages: %w", err)
	}

	pkgs, err := s.pkgRepo.ListBySession(ctx, sessionID, p.PageSize, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages: %w", err)
	}

	return pkgs, total, nil
}

func (s *PackageService) Get(ctx context.Context, id int64, sessionID string) (*model.Package, error) {
	return s.pkgRepo.FindByID(ctx, id, sessionID)
}

func (s *PackageService) Types(ctx context.Context) ([]model.PackageType, error) {
	return s.typeRepo.List(ctx)
}

type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}
