package repository

import (
	"context"

	"go-dental-estimator/internal/domain/entity"
	domainRepo "go-dental-estimator/internal/domain/repository"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) domainRepo.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindAllProcedures(ctx context.Context) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&procedures).Error; err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *catalogRepository) FindAllAliases(ctx context.Context) ([]entity.ProcedureAlias, error) {
	var aliases []entity.ProcedureAlias
	if err := r.db.WithContext(ctx).Find(&aliases).Error; err != nil {
		return nil, err
	}
	return aliases, nil
}

func (r *catalogRepository) FindAllPairings(ctx context.Context) ([]entity.ProcedurePairing, error) {
	var pairings []entity.ProcedurePairing
	if err := r.db.WithContext(ctx).Find(&pairings).Error; err != nil {
		return nil, err
	}
	return pairings, nil
}

func (r *catalogRepository) FindAllProviders(ctx context.Context) ([]entity.Provider, error) {
	var providers []entity.Provider
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *catalogRepository) FindAllCompatibilities(ctx context.Context) ([]entity.ProviderCompatibility, error) {
	var compatibilities []entity.ProviderCompatibility
	if err := r.db.WithContext(ctx).Find(&compatibilities).Error; err != nil {
		return nil, err
	}
	return compatibilities, nil
}

func (r *catalogRepository) FindAllMitigatingFactors(ctx context.Context) ([]entity.MitigatingFactor, error) {
	var factors []entity.MitigatingFactor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&factors).Error; err != nil {
		return nil, err
	}
	return factors, nil
}
