package repository

import (
	"context"

	"go-dental-estimator/internal/domain/entity"
)

type CatalogRepository interface {
	FindAllProcedures(ctx context.Context) ([]entity.Procedure, error)
	FindAllAliases(ctx context.Context) ([]entity.ProcedureAlias, error)
	FindAllPairings(ctx context.Context) ([]entity.ProcedurePairing, error)
	FindAllProviders(ctx context.Context) ([]entity.Provider, error)
	FindAllCompatibilities(ctx context.Context) ([]entity.ProviderCompatibility, error)
	FindAllMitigatingFactors(ctx context.Context) ([]entity.MitigatingFactor, error)
}
