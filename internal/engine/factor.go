package engine

// AppliedFactor records one mitigating factor that took effect, in the order
// it was selected.
type AppliedFactor struct {
	Name       string
	Value      float64
	Multiplier bool
}

// applyFactors applies each selected factor exactly once to the aggregate
// visit totals, never per-procedure. Factors apply in selection order;
// multipliers scale all three role totals, additive factors add their
// minutes to all three. Unknown factor names are skipped, not errors, so a
// stale client survives catalog changes.
func applyFactors(snap *Snapshot, totals runningTotals, names []string) (runningTotals, []AppliedFactor) {
	applied := make([]AppliedFactor, 0, len(names))

	for _, name := range names {
		factor, ok := snap.Factor(name)
		if !ok {
			continue
		}

		if factor.IsMultiplier() {
			totals.assistant *= factor.Value
			totals.practitioner *= factor.Value
			totals.total *= factor.Value
		} else {
			totals.assistant += factor.Value
			totals.practitioner += factor.Value
			totals.total += factor.Value
		}

		applied = append(applied, AppliedFactor{
			Name:       factor.Name,
			Value:      factor.Value,
			Multiplier: factor.IsMultiplier(),
		})
	}

	return totals, applied
}
