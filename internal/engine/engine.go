// Package engine implements the appointment duration calculation pipeline:
// catalog lookup, per-procedure formula resolution, sequence discounting,
// mitigating-factor application and slot rounding. Every calculation is a
// pure function over an immutable catalog snapshot, safe for unlimited
// concurrent use.
package engine

// Config holds the engine's rounding policy.
type Config struct {
	// RoundUp switches the final times from nearest-slot rounding to
	// always-round-up, for schedules that must never under-book.
	RoundUp bool
}

// Engine turns procedure requests into visit time estimates.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// EstimateRequest is the engine's input: a provider, the procedures in
// submission order, and the selected mitigating factor names.
type EstimateRequest struct {
	Provider   string
	Procedures []ProcedureRequest
	Factors    []string
}

// RoundedTimes are slot-rounded, non-negative integer minutes per role.
type RoundedTimes struct {
	Assistant    int
	Practitioner int
	Total        int
}

// AppointmentResult is the full estimate breakdown.
type AppointmentResult struct {
	Provider       string
	BaseTimes      RoundedTimes
	FinalTimes     RoundedTimes
	Procedures     []ProcedureOutcome
	AppliedFactors []AppliedFactor
}

// Estimate runs the full pipeline. Malformed business input never fails the
// calculation: unknown procedures contribute zeros, invalid counts are
// clamped, unknown factors are skipped, and incompatible provider pairings
// are flagged on the per-procedure outcomes for the caller to act on.
func (e *Engine) Estimate(snap *Snapshot, req EstimateRequest) AppointmentResult {
	outcomes, totals := sequence(snap, req.Provider, req.Procedures)

	var base runningTotals
	for _, outcome := range outcomes {
		base.assistant += outcome.Base.Assistant
		base.practitioner += outcome.Base.Practitioner
		base.total += outcome.Base.Total
	}

	finals, applied := applyFactors(snap, totals, req.Factors)

	round := RoundToSlot
	if e.cfg.RoundUp {
		round = RoundUpToSlot
	}

	return AppointmentResult{
		Provider: req.Provider,
		BaseTimes: RoundedTimes{
			Assistant:    RoundToSlot(base.assistant),
			Practitioner: RoundToSlot(base.practitioner),
			Total:        RoundToSlot(base.total),
		},
		FinalTimes: RoundedTimes{
			Assistant:    round(finals.assistant),
			Practitioner: round(finals.practitioner),
			Total:        round(finals.total),
		},
		Procedures:     outcomes,
		AppliedFactors: applied,
	}
}
