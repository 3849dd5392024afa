package usecase

import (
	"context"
	"errors"

	"go-dental-estimator/internal/converter"
	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/internal/engine"

	"github.com/sirupsen/logrus"
)

var ErrNoProcedures = errors.New("at least one procedure is required")

type EstimateUsecase interface {
	Estimate(ctx context.Context, req *dto.EstimateRequest) (*dto.EstimateResponse, error)
}

type estimateUsecase struct {
	log     *logrus.Logger
	catalog CatalogUsecase
	engine  *engine.Engine
}

func NewEstimateUsecase(log *logrus.Logger, catalog CatalogUsecase, eng *engine.Engine) EstimateUsecase {
	return &estimateUsecase{
		log:     log,
		catalog: catalog,
		engine:  eng,
	}
}

func (u *estimateUsecase) Estimate(ctx context.Context, req *dto.EstimateRequest) (*dto.EstimateResponse, error) {
	snap := u.catalog.Snapshot()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}

	engineReq := converter.EstimateRequestToEngine(req)
	if len(engineReq.Procedures) == 0 {
		return nil, ErrNoProcedures
	}

	result := u.engine.Estimate(snap, engineReq)

	// Unknown procedures and incompatible pairings degrade to zeroed or
	// flagged fields instead of errors; surface them in the logs so catalog
	// gaps are visible.
	for _, outcome := range result.Procedures {
		if outcome.Base.IsZero() {
			u.log.Warnf("Estimate requested for unknown procedure: %s", outcome.Procedure)
		} else if !outcome.Compatible {
			u.log.Warnf("Provider %s is not authorized for procedure %s", req.Provider, outcome.Procedure)
		}
	}

	return converter.AppointmentResultToResponse(result), nil
}
