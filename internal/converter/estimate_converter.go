package converter

import (
	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/internal/engine"
)

// countOrDefault dereferences an optional count, defaulting to 1 when the
// client omitted it. Explicit values pass through, including zero.
func countOrDefault(count *int) int {
	if count == nil {
		return 1
	}
	return *count
}

// EstimateRequestToEngine maps the API payload onto the engine request,
// folding the legacy single-procedure fields into a one-element list when no
// procedures array was sent.
func EstimateRequestToEngine(req *dto.EstimateRequest) engine.EstimateRequest {
	selections := req.Procedures
	if len(selections) == 0 && req.Procedure != "" {
		selections = []dto.ProcedureSelection{{
			Procedure:    req.Procedure,
			NumTeeth:     req.NumTeeth,
			NumSurfaces:  req.NumSurfaces,
			NumQuadrants: req.NumQuadrants,
		}}
	}

	procedures := make([]engine.ProcedureRequest, 0, len(selections))
	for _, selection := range selections {
		procedures = append(procedures, engine.ProcedureRequest{
			Name:      selection.Procedure,
			Teeth:     countOrDefault(selection.NumTeeth),
			Surfaces:  countOrDefault(selection.NumSurfaces),
			Quadrants: countOrDefault(selection.NumQuadrants),
		})
	}

	return engine.EstimateRequest{
		Provider:   req.Provider,
		Procedures: procedures,
		Factors:    req.MitigatingFactors,
	}
}

// AppointmentResultToResponse maps the engine's result onto the API response.
func AppointmentResultToResponse(result engine.AppointmentResult) *dto.EstimateResponse {
	procedures := make([]dto.ProcedureDetailResponse, len(result.Procedures))
	for i, outcome := range result.Procedures {
		procedures[i] = dto.ProcedureDetailResponse{
			Procedure:          outcome.Procedure,
			NumTeeth:           outcome.Teeth,
			NumSurfaces:        outcome.Surfaces,
			NumQuadrants:       outcome.Quadrants,
			BaseTimes:          rawBreakdown(outcome.Base),
			AdjustedTimes:      rawBreakdown(outcome.Adjusted),
			SlotMinutes:        outcome.SlotTotal,
			DiscountApplied:    outcome.Discounted,
			ProviderCompatible: outcome.Compatible,
		}
	}

	factors := make([]dto.AppliedFactorResponse, len(result.AppliedFactors))
	for i, factor := range result.AppliedFactors {
		factors[i] = dto.AppliedFactorResponse{
			Name:         factor.Name,
			Value:        factor.Value,
			IsMultiplier: factor.Multiplier,
		}
	}

	return &dto.EstimateResponse{
		Provider:       result.Provider,
		BaseTimes:      roundedBreakdown(result.BaseTimes),
		FinalTimes:     roundedBreakdown(result.FinalTimes),
		Procedures:     procedures,
		AppliedFactors: factors,
	}
}

func rawBreakdown(times engine.BaseTimes) dto.RawTimeBreakdown {
	return dto.RawTimeBreakdown{
		Assistant:    times.Assistant,
		Practitioner: times.Practitioner,
		Total:        times.Total,
	}
}

func roundedBreakdown(times engine.RoundedTimes) dto.TimeBreakdown {
	return dto.TimeBreakdown{
		Assistant:    times.Assistant,
		Practitioner: times.Practitioner,
		Total:        times.Total,
	}
}
