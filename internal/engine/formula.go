package engine

import (
	"math"
	"strings"
)

const (
	// sequenceDiscount scales every non-exempt procedure after the first in
	// a visit, reflecting the shared setup overhead.
	sequenceDiscount = 0.7

	// fallbackAssistantShare splits an adjusted total when the procedure has
	// no usable base total to derive a ratio from.
	fallbackAssistantShare = 0.3

	// multiplierThreshold separates multiplier factors (value <= threshold)
	// from additive-minute factors (value > threshold).
	multiplierThreshold = 2.0

	// slotMinutes is the schedulable increment all final times snap to.
	slotMinutes = 10
)

// familyRule binds a procedure-family match to its duration formula. The
// formulas are absolute: they replace the base total outright rather than
// adding to it.
type familyRule struct {
	family string
	total  func(base BaseTimes, teeth, surfaces, quadrants int) float64
}

// familyRules is evaluated top to bottom against the lower-cased resolved
// procedure name; first substring match wins. "crown delivery" must stay
// ahead of "crown".
var familyRules = []familyRule{
	{
		family: "crown delivery",
		total: func(_ BaseTimes, teeth, _, _ int) float64 {
			if teeth <= 1 {
				return 40
			}
			return 40 + 10*float64(teeth-1)
		},
	},
	{
		family: "crown",
		total: func(_ BaseTimes, teeth, _, _ int) float64 {
			if teeth <= 1 {
				return 90
			}
			return 90 + 30*float64(teeth-1)
		},
	},
	{
		family: "implant",
		total: func(_ BaseTimes, teeth, _, _ int) float64 {
			if teeth <= 1 {
				return 90
			}
			return 80 + 10*float64(teeth)
		},
	},
	{
		family: "root canal",
		total: func(_ BaseTimes, _, surfaces, _ int) float64 {
			if surfaces <= 1 {
				return 60
			}
			return 60 + 10*float64(surfaces-1)
		},
	},
	{
		family: "filling",
		total: func(_ BaseTimes, _, surfaces, quadrants int) float64 {
			if surfaces <= 1 {
				return 30
			}
			if quadrants < 1 {
				return 10 * (3 + 0.5*float64(surfaces))
			}
			return 10 * (3 + 0.5*float64(surfaces) + float64(quadrants-1))
		},
	},
	{
		family: "extraction",
		total: func(_ BaseTimes, teeth, _, quadrants int) float64 {
			switch {
			case teeth <= 1:
				return 50
			case teeth == 2 && quadrants <= 1:
				return 55
			case teeth == 2:
				return 60
			case quadrants <= 1:
				return 45 + 5*float64(teeth)
			default:
				return 45 + 5*float64(teeth) + 5*float64(quadrants)
			}
		},
	},
}

// adjustedTotal computes the absolute adjusted total minutes for a procedure.
// Procedures outside every family fall through to a linear per-tooth
// adjustment on the base total.
func adjustedTotal(name string, base BaseTimes, teeth, surfaces, quadrants int) float64 {
	lower := strings.ToLower(name)
	for _, rule := range familyRules {
		if strings.Contains(lower, rule.family) {
			return clampMinutes(rule.total(base, teeth, surfaces, quadrants))
		}
	}
	if teeth > 1 {
		return clampMinutes(base.Total + 10*float64(teeth-1))
	}
	return clampMinutes(base.Total)
}

// clampMinutes keeps negative or NaN minute values from propagating.
func clampMinutes(minutes float64) float64 {
	if math.IsNaN(minutes) || minutes < 0 {
		return 0
	}
	return minutes
}

// splitTimes spreads an adjusted total across roles, preserving the base
// assistant/practitioner ratio so role-level times stay meaningful after a
// formula override.
func splitTimes(total float64, base BaseTimes) BaseTimes {
	assistant := total * base.assistantShare()
	return BaseTimes{
		Assistant:    assistant,
		Practitioner: total - assistant,
		Total:        total,
	}
}
