package engine

import "strings"

// Markers identifying add-on procedures that ride on the primary setup.
// Matching is by substring on the lower-cased resolved name so catalog
// variants ("IV Sedation", "Additional Anesthesia") classify without
// per-name special cases.
var (
	sedationMarkers       = []string{"sedation", "nitrous"}
	discountExemptMarkers = []string{"sedation", "nitrous", "additional"}
)

func matchesAny(name string, markers []string) bool {
	lower := strings.ToLower(name)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// isSedationAddOn reports whether the procedure is a sedation-type add-on,
// which switches assistant-time aggregation to sum-across-procedures.
func isSedationAddOn(name string) bool {
	return matchesAny(name, sedationMarkers)
}

// isDiscountExempt reports whether the procedure is never sequence-discounted
// regardless of its position: it represents add-on time, not a second setup.
func isDiscountExempt(name string) bool {
	return matchesAny(name, discountExemptMarkers)
}

// ProcedureRequest is one requested procedure with its parametric counts.
type ProcedureRequest struct {
	Name      string
	Teeth     int
	Surfaces  int
	Quadrants int
}

// sanitized clamps invalid counts instead of failing the calculation: a
// partial estimate is more useful than none. Teeth and surfaces floor at 1.
// Quadrants floor at 0 because the filling formula legitimately branches on
// a sub-1 quadrant count.
func (r ProcedureRequest) sanitized() ProcedureRequest {
	if r.Teeth < 1 {
		r.Teeth = 1
	}
	if r.Surfaces < 1 {
		r.Surfaces = 1
	}
	if r.Quadrants < 0 {
		r.Quadrants = 0
	}
	return r
}

// ProcedureOutcome is the per-procedure breakdown, in request order.
type ProcedureOutcome struct {
	Procedure string
	Teeth     int
	Surfaces  int
	Quadrants int
	// Base is the unadjusted catalog time; all zeros for an unknown
	// procedure.
	Base BaseTimes
	// Adjusted is the formula output after any sequence discount, before
	// slot rounding.
	Adjusted BaseTimes
	// SlotTotal is Adjusted.Total snapped to the schedulable increment; it
	// is what accumulates into the visit totals.
	SlotTotal  int
	Discounted bool
	Compatible bool
}

type runningTotals struct {
	assistant    float64
	practitioner float64
	total        float64
}

// sequence processes the requested procedures in submission order. The first
// procedure keeps its full formula output; later ones are discounted unless
// exempt. Assistant time follows a dual policy: when any requested procedure
// is a sedation add-on, assistant time sums across all procedures, otherwise
// only the first procedure's assistant setup counts.
func sequence(snap *Snapshot, provider string, requests []ProcedureRequest) ([]ProcedureOutcome, runningTotals) {
	sumAssistant := false
	for _, req := range requests {
		if isSedationAddOn(snap.Resolve(req.Name)) {
			sumAssistant = true
			break
		}
	}

	outcomes := make([]ProcedureOutcome, 0, len(requests))
	var totals runningTotals

	for i, raw := range requests {
		req := raw.sanitized()
		name := snap.Resolve(req.Name)
		base := snap.BaseTimes(name)

		adjusted := splitTimes(adjustedTotal(name, base, req.Teeth, req.Surfaces, req.Quadrants), base)
		discounted := false
		if i > 0 && !isDiscountExempt(name) {
			adjusted = splitTimes(adjusted.Total*sequenceDiscount, base)
			discounted = true
		}

		// Snap the procedure to a schedulable slot before accumulating, then
		// re-derive the role split from the snapped total so components keep
		// summing to it.
		slotTotal := RoundToSlot(adjusted.Total)
		slot := splitTimes(float64(slotTotal), base)

		totals.practitioner += slot.Practitioner
		totals.total += slot.Total
		if i == 0 || sumAssistant {
			totals.assistant += slot.Assistant
		}

		outcomes = append(outcomes, ProcedureOutcome{
			Procedure:  name,
			Teeth:      req.Teeth,
			Surfaces:   req.Surfaces,
			Quadrants:  req.Quadrants,
			Base:       base,
			Adjusted:   adjusted,
			SlotTotal:  slotTotal,
			Discounted: discounted,
			Compatible: snap.IsCompatible(provider, name),
		})
	}

	return outcomes, totals
}
