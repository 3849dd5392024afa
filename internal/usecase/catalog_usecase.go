package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"go-dental-estimator/internal/converter"
	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/internal/domain/repository"
	"go-dental-estimator/internal/engine"
	"go-dental-estimator/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrCatalogEmpty     = errors.New("procedure catalog is empty")
	ErrCatalogNotLoaded = errors.New("procedure catalog is not loaded")
	ErrUnknownProcedure = errors.New("procedure not found in catalog")
)

type CatalogUsecase interface {
	// Load builds the initial snapshot; a failure here is fatal at startup.
	Load(ctx context.Context) error
	// Reload atomically swaps in a freshly built snapshot.
	Reload(ctx context.Context) (*dto.CatalogReloadResponse, error)
	// Snapshot returns the active snapshot, nil before the first Load.
	Snapshot() *engine.Snapshot
	ListProcedures(ctx context.Context) (*dto.ProcedureListResponse, error)
	ListPrimaryProcedures(ctx context.Context) (*dto.ProcedureListResponse, error)
	ListSecondaryProcedures(ctx context.Context, primary, provider string) (*dto.ProcedureListResponse, error)
	ListProviders(ctx context.Context) (*dto.ProviderListResponse, error)
	ListMitigatingFactors(ctx context.Context) (*dto.MitigatingFactorListResponse, error)
}

type catalogUsecase struct {
	log          *logrus.Logger
	catalogRepo  repository.CatalogRepository
	syncService  *service.CatalogSyncService
	strictCompat bool
	snapshot     atomic.Pointer[engine.Snapshot]
}

// NewCatalogUsecase wires the catalog loader. syncService may be nil when no
// Redis mirror is configured.
func NewCatalogUsecase(
	log *logrus.Logger,
	catalogRepo repository.CatalogRepository,
	syncService *service.CatalogSyncService,
	strictCompatibility bool,
) CatalogUsecase {
	return &catalogUsecase{
		log:          log,
		catalogRepo:  catalogRepo,
		syncService:  syncService,
		strictCompat: strictCompatibility,
	}
}

func (u *catalogUsecase) Load(ctx context.Context) error {
	snap, err := u.build(ctx)
	if err != nil {
		return err
	}

	// Atomic swap: in-flight estimates keep the snapshot they started with.
	u.snapshot.Store(snap)
	u.log.Infof("Catalog loaded: %d procedures, %d providers, %d factors",
		len(snap.ProcedureNames()), len(snap.ProviderNames()), len(snap.Factors()))

	u.mirror(ctx, snap)
	return nil
}

func (u *catalogUsecase) Reload(ctx context.Context) (*dto.CatalogReloadResponse, error) {
	snap, err := u.build(ctx)
	if err != nil {
		u.log.Warnf("Catalog reload failed: %+v", err)
		return nil, err
	}

	u.snapshot.Store(snap)
	u.log.Info("Catalog reloaded")
	u.mirror(ctx, snap)

	return &dto.CatalogReloadResponse{
		Procedures: len(snap.ProcedureNames()),
		Providers:  len(snap.ProviderNames()),
		Factors:    len(snap.Factors()),
	}, nil
}

func (u *catalogUsecase) build(ctx context.Context) (*engine.Snapshot, error) {
	procedures, err := u.catalogRepo.FindAllProcedures(ctx)
	if err != nil {
		return nil, err
	}
	if len(procedures) == 0 {
		return nil, ErrCatalogEmpty
	}

	aliases, err := u.catalogRepo.FindAllAliases(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := u.catalogRepo.FindAllPairings(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := u.catalogRepo.FindAllProviders(ctx)
	if err != nil {
		return nil, err
	}
	compatibilities, err := u.catalogRepo.FindAllCompatibilities(ctx)
	if err != nil {
		return nil, err
	}
	factors, err := u.catalogRepo.FindAllMitigatingFactors(ctx)
	if err != nil {
		return nil, err
	}

	input := converter.CatalogToSnapshotInput(
		procedures, aliases, pairings, providers, compatibilities, factors, u.strictCompat)
	return engine.NewSnapshot(input), nil
}

// mirror pushes the snapshot to Redis; a mirror failure never fails the
// load since estimation reads the in-process snapshot.
func (u *catalogUsecase) mirror(ctx context.Context, snap *engine.Snapshot) {
	if u.syncService == nil {
		return
	}
	if err := u.syncService.SyncSnapshot(ctx, snap); err != nil {
		u.log.Warnf("Failed to mirror catalog to Redis: %+v", err)
	}
}

func (u *catalogUsecase) Snapshot() *engine.Snapshot {
	return u.snapshot.Load()
}

func (u *catalogUsecase) ListProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	snap := u.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}

	names := snap.ProcedureNames()
	return &dto.ProcedureListResponse{Procedures: names, Total: len(names)}, nil
}

func (u *catalogUsecase) ListPrimaryProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	snap := u.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}

	names := snap.PrimaryProcedureNames()
	return &dto.ProcedureListResponse{Procedures: names, Total: len(names)}, nil
}

func (u *catalogUsecase) ListSecondaryProcedures(ctx context.Context, primary, provider string) (*dto.ProcedureListResponse, error) {
	snap := u.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}
	if !snap.HasProcedure(primary) {
		return nil, ErrUnknownProcedure
	}

	names := snap.SecondaryProceduresFor(primary, provider)
	return &dto.ProcedureListResponse{Procedures: names, Total: len(names)}, nil
}

func (u *catalogUsecase) ListProviders(ctx context.Context) (*dto.ProviderListResponse, error) {
	snap := u.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}

	names := snap.ProviderNames()
	return &dto.ProviderListResponse{Providers: names, Total: len(names)}, nil
}

func (u *catalogUsecase) ListMitigatingFactors(ctx context.Context) (*dto.MitigatingFactorListResponse, error) {
	snap := u.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}

	factors := snap.Factors()
	responses := make([]dto.MitigatingFactorResponse, len(factors))
	for i, factor := range factors {
		responses[i] = dto.MitigatingFactorResponse{
			Name:         factor.Name,
			Value:        factor.Value,
			IsMultiplier: factor.IsMultiplier(),
		}
	}

	return &dto.MitigatingFactorListResponse{Factors: responses, Total: len(responses)}, nil
}
