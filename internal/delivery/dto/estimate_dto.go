package dto

// Request DTOs

// ProcedureSelection is one requested procedure with its parametric counts.
// Omitted counts default to 1; explicit zeros are kept (a zero quadrant
// count selects a different filling formula branch).
type ProcedureSelection struct {
	Procedure    string `json:"procedure" validate:"required"`
	NumTeeth     *int   `json:"num_teeth,omitempty"`
	NumSurfaces  *int   `json:"num_surfaces,omitempty"`
	NumQuadrants *int   `json:"num_quadrants,omitempty"`
}

// EstimateRequest is the estimation payload. Clients either send the
// procedures list or the flat single-procedure fields kept for backward
// compatibility with the original API shape.
type EstimateRequest struct {
	Provider          string               `json:"provider" validate:"required"`
	Procedures        []ProcedureSelection `json:"procedures" validate:"omitempty,dive"`
	MitigatingFactors []string             `json:"mitigating_factors"`

	// Legacy single-procedure shape.
	Procedure    string `json:"procedure,omitempty"`
	NumTeeth     *int   `json:"num_teeth,omitempty"`
	NumSurfaces  *int   `json:"num_surfaces,omitempty"`
	NumQuadrants *int   `json:"num_quadrants,omitempty"`
}

// Response DTOs

// TimeBreakdown holds slot-rounded minutes per role.
type TimeBreakdown struct {
	Assistant    int `json:"assistant"`
	Practitioner int `json:"practitioner"`
	Total        int `json:"total"`
}

// RawTimeBreakdown holds unrounded minutes per role, used for the
// per-procedure breakdown.
type RawTimeBreakdown struct {
	Assistant    float64 `json:"assistant"`
	Practitioner float64 `json:"practitioner"`
	Total        float64 `json:"total"`
}

type ProcedureDetailResponse struct {
	Procedure          string           `json:"procedure"`
	NumTeeth           int              `json:"num_teeth"`
	NumSurfaces        int              `json:"num_surfaces"`
	NumQuadrants       int              `json:"num_quadrants"`
	BaseTimes          RawTimeBreakdown `json:"base_times"`
	AdjustedTimes      RawTimeBreakdown `json:"adjusted_times"`
	SlotMinutes        int              `json:"slot_minutes"`
	DiscountApplied    bool             `json:"discount_applied"`
	ProviderCompatible bool             `json:"provider_compatible"`
}

type AppliedFactorResponse struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	IsMultiplier bool    `json:"is_multiplier"`
}

type EstimateResponse struct {
	Provider       string                    `json:"provider"`
	BaseTimes      TimeBreakdown             `json:"base_times"`
	FinalTimes     TimeBreakdown             `json:"final_times"`
	Procedures     []ProcedureDetailResponse `json:"procedures"`
	AppliedFactors []AppliedFactorResponse   `json:"applied_factors"`
}
