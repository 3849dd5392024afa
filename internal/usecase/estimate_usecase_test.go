package usecase_test

import (
	"context"
	"testing"

	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/internal/engine"
	"go-dental-estimator/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog serves a fixed snapshot without touching the database.
type stubCatalog struct {
	snap *engine.Snapshot
}

func (s *stubCatalog) Load(ctx context.Context) error { return nil }
func (s *stubCatalog) Reload(ctx context.Context) (*dto.CatalogReloadResponse, error) {
	return nil, nil
}
func (s *stubCatalog) Snapshot() *engine.Snapshot { return s.snap }
func (s *stubCatalog) ListProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	return nil, nil
}
func (s *stubCatalog) ListPrimaryProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	return nil, nil
}
func (s *stubCatalog) ListSecondaryProcedures(ctx context.Context, primary, provider string) (*dto.ProcedureListResponse, error) {
	return nil, nil
}
func (s *stubCatalog) ListProviders(ctx context.Context) (*dto.ProviderListResponse, error) {
	return nil, nil
}
func (s *stubCatalog) ListMitigatingFactors(ctx context.Context) (*dto.MitigatingFactorListResponse, error) {
	return nil, nil
}

func newTestEstimateUsecase(snap *engine.Snapshot) usecase.EstimateUsecase {
	log := logrus.New()
	eng := engine.New(engine.Config{})
	return usecase.NewEstimateUsecase(log, &stubCatalog{snap: snap}, eng)
}

func builtSnapshot() *engine.Snapshot {
	return engine.NewSnapshot(engine.SnapshotInput{
		Procedures: map[string]engine.BaseTimes{
			"Extraction": {Assistant: 15, Practitioner: 35, Total: 50},
			"Crown":      {Assistant: 30, Practitioner: 60, Total: 90},
		},
		Sections: map[string]string{
			"Extraction": engine.SectionPrimary,
			"Crown":      engine.SectionPrimary,
		},
		Aliases:   map[string]string{"ext": "Extraction"},
		Providers: []string{"Radin"},
	})
}

func TestEstimate_CatalogNotLoaded(t *testing.T) {
	uc := newTestEstimateUsecase(nil)

	_, err := uc.Estimate(context.Background(), &dto.EstimateRequest{
		Provider:  "Radin",
		Procedure: "Extraction",
	})

	assert.ErrorIs(t, err, usecase.ErrCatalogNotLoaded)
}

func TestEstimate_NoProcedures(t *testing.T) {
	uc := newTestEstimateUsecase(builtSnapshot())

	_, err := uc.Estimate(context.Background(), &dto.EstimateRequest{Provider: "Radin"})

	assert.ErrorIs(t, err, usecase.ErrNoProcedures)
}

func TestEstimate_LegacySingleProcedurePayload(t *testing.T) {
	uc := newTestEstimateUsecase(builtSnapshot())

	resp, err := uc.Estimate(context.Background(), &dto.EstimateRequest{
		Provider:  "Radin",
		Procedure: "Extraction",
	})

	require.NoError(t, err)
	require.Len(t, resp.Procedures, 1)
	assert.Equal(t, "Extraction", resp.Procedures[0].Procedure)
	assert.Equal(t, 1, resp.Procedures[0].NumTeeth)
	assert.Equal(t, 50, resp.FinalTimes.Total)
}

func TestEstimate_ProcedureListPayload(t *testing.T) {
	uc := newTestEstimateUsecase(builtSnapshot())
	teeth := 1

	resp, err := uc.Estimate(context.Background(), &dto.EstimateRequest{
		Provider: "Radin",
		Procedures: []dto.ProcedureSelection{
			{Procedure: "Crown", NumTeeth: &teeth},
			{Procedure: "ext", NumTeeth: &teeth},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Procedures, 2)
	assert.Equal(t, "Extraction", resp.Procedures[1].Procedure)
	assert.True(t, resp.Procedures[1].DiscountApplied)
	assert.Equal(t, 130, resp.FinalTimes.Total)
}

func TestEstimate_UnknownProcedureStillSucceeds(t *testing.T) {
	uc := newTestEstimateUsecase(builtSnapshot())

	resp, err := uc.Estimate(context.Background(), &dto.EstimateRequest{
		Provider:  "Radin",
		Procedure: "Bridge",
	})

	require.NoError(t, err)
	require.Len(t, resp.Procedures, 1)
	assert.Equal(t, 0, resp.FinalTimes.Total)
}
