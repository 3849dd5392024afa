package engine_test

import (
	"testing"

	"go-dental-estimator/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(strict bool) *engine.Snapshot {
	return engine.NewSnapshot(engine.SnapshotInput{
		Procedures: map[string]engine.BaseTimes{
			"Crown":          {Assistant: 30, Practitioner: 60, Total: 90},
			"Crown Delivery": {Assistant: 15, Practitioner: 25, Total: 40},
			"Extraction":     {Assistant: 15, Practitioner: 35, Total: 50},
			"Filling":        {Assistant: 10, Practitioner: 20, Total: 30},
			"Root Canal":     {Assistant: 20, Practitioner: 40, Total: 60},
			"Implant":        {Assistant: 30, Practitioner: 60, Total: 90},
			"Cleaning":       {Assistant: 40, Practitioner: 0, Total: 40},
			"IV Sedation":    {Assistant: 15, Practitioner: 15, Total: 30},
			"Broken Entry":   {Assistant: 10, Practitioner: 10, Total: 0}, // invalid, must be dropped
		},
		Sections: map[string]string{
			"IV Sedation": engine.SectionSecondary,
		},
		Aliases: map[string]string{
			"RCT": "Root Canal",
			"Ext": "Extraction",
		},
		Compatibilities: map[string][]string{
			"Crown":       {"Radin"},
			"Extraction":  {"Radin", "Kayla"},
			"IV Sedation": {"Radin"},
		},
		Factors: []engine.Factor{
			{Name: "Provider Learning Curve", Value: 1.15},
			{Name: "Assistant Unfamiliarity", Value: 1.1},
			{Name: "Anxious Patient", Value: 1.2},
			{Name: "Special Needs", Value: 10},
		},
		Pairings: map[string][]string{
			"Crown": {"Crown Delivery", "IV Sedation"},
		},
		Providers:           []string{"Radin", "Kayla", "Hygiene"},
		StrictCompatibility: strict,
	})
}

func TestEstimate_SingleExtractionMultipleQuadrants(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "Extraction", Teeth: 3, Surfaces: 1, Quadrants: 2}},
	})

	// 45 + 5*3 + 5*2 = 70, already slot-aligned.
	assert.Equal(t, 70, result.FinalTimes.Total)
	require.Len(t, result.Procedures, 1)
	assert.Equal(t, 70.0, result.Procedures[0].Adjusted.Total)
	assert.False(t, result.Procedures[0].Discounted)
}

func TestEstimate_FillingQuadrantsBelowOne(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Kayla",
		Procedures: []engine.ProcedureRequest{{Name: "Filling", Teeth: 1, Surfaces: 4, Quadrants: 0}},
	})

	// 10 * (3 + 0.5*4) = 50; the zero quadrant count must survive sanitation.
	assert.Equal(t, 50, result.FinalTimes.Total)
	assert.Equal(t, 0, result.Procedures[0].Quadrants)
}

func TestEstimate_SequenceDiscountAppliesAfterFirst(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider: "Radin",
		Procedures: []engine.ProcedureRequest{
			{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1},
			{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
		},
	})

	require.Len(t, result.Procedures, 2)

	first, second := result.Procedures[0], result.Procedures[1]
	assert.False(t, first.Discounted)
	assert.Equal(t, 90, first.SlotTotal)

	assert.True(t, second.Discounted)
	assert.InDelta(t, 35, second.Adjusted.Total, 1e-9) // 0.7 * 50 before rounding
	assert.Equal(t, 40, second.SlotTotal)

	assert.Equal(t, 130, result.FinalTimes.Total)
	assert.Equal(t, 140, result.BaseTimes.Total) // 90 + 50 unadjusted
}

func TestEstimate_SedationNeverDiscounted(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider: "Radin",
		Procedures: []engine.ProcedureRequest{
			{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
			{Name: "IV Sedation", Teeth: 1, Surfaces: 1, Quadrants: 1},
		},
	})

	require.Len(t, result.Procedures, 2)
	sedation := result.Procedures[1]
	assert.False(t, sedation.Discounted)
	assert.Equal(t, 30, sedation.SlotTotal)
	assert.Equal(t, 80, result.FinalTimes.Total)
}

func TestEstimate_AssistantTimePolicy(t *testing.T) {
	e := engine.New(engine.Config{})
	snap := testSnapshot(false)

	t.Run("first procedure only without sedation", func(t *testing.T) {
		result := e.Estimate(snap, engine.EstimateRequest{
			Provider: "Radin",
			Procedures: []engine.ProcedureRequest{
				{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1},
				{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
			},
		})
		// Only the crown's assistant setup counts: 90 * 30/90 = 30.
		assert.Equal(t, 30, result.FinalTimes.Assistant)
	})

	t.Run("summed across procedures with sedation", func(t *testing.T) {
		result := e.Estimate(snap, engine.EstimateRequest{
			Provider: "Radin",
			Procedures: []engine.ProcedureRequest{
				{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
				{Name: "IV Sedation", Teeth: 1, Surfaces: 1, Quadrants: 1},
			},
		})
		// Extraction 50*0.3 + sedation 30*0.5 = 15 + 15 = 30.
		assert.Equal(t, 30, result.FinalTimes.Assistant)
	})
}

func TestEstimate_FactorAppliesOnceToAggregate(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider: "Radin",
		Procedures: []engine.ProcedureRequest{
			{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1},
			{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
		},
		Factors: []string{"Provider Learning Curve"},
	})

	// (90 + 40) * 1.15 = 149.5, half rounds away from zero.
	assert.Equal(t, 150, result.FinalTimes.Total)
	require.Len(t, result.AppliedFactors, 1)
	assert.Equal(t, "Provider Learning Curve", result.AppliedFactors[0].Name)
	assert.True(t, result.AppliedFactors[0].Multiplier)
}

func TestEstimate_AdditiveFactor(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1}},
		Factors:    []string{"Special Needs"},
	})

	assert.Equal(t, 100, result.FinalTimes.Total)
	require.Len(t, result.AppliedFactors, 1)
	assert.False(t, result.AppliedFactors[0].Multiplier)
	assert.Equal(t, 10.0, result.AppliedFactors[0].Value)
}

func TestEstimate_MultiplierFactorsComposeMultiplicatively(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider: "Radin",
		Procedures: []engine.ProcedureRequest{
			{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1},
			{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
		},
		Factors: []string{"Provider Learning Curve", "Anxious Patient"},
	})

	// (90 + 40) * 1.15 * 1.2 = 179.4, not (90 + 40) * (1.15 + 1.2 - 1).
	assert.Equal(t, 180, result.FinalTimes.Total)
	require.Len(t, result.AppliedFactors, 2)
	assert.Equal(t, "Provider Learning Curve", result.AppliedFactors[0].Name)
	assert.Equal(t, "Anxious Patient", result.AppliedFactors[1].Name)
	assert.True(t, result.AppliedFactors[0].Multiplier)
	assert.True(t, result.AppliedFactors[1].Multiplier)
}

func TestEstimate_FactorSelectionOrderPreserved(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1}},
		Factors:    []string{"Special Needs", "Anxious Patient"},
	})

	require.Len(t, result.AppliedFactors, 2)
	assert.Equal(t, "Special Needs", result.AppliedFactors[0].Name)
	assert.Equal(t, "Anxious Patient", result.AppliedFactors[1].Name)
}

func TestEstimate_UnknownFactorIgnored(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1}},
		Factors:    []string{"No Such Factor"},
	})

	assert.Empty(t, result.AppliedFactors)
	assert.Equal(t, 90, result.FinalTimes.Total)
}

func TestEstimate_UnknownProcedureYieldsZeros(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "Gizmo", Teeth: 1, Surfaces: 1, Quadrants: 1}},
	})

	require.Len(t, result.Procedures, 1)
	assert.True(t, result.Procedures[0].Base.IsZero())
	assert.Equal(t, 0, result.Procedures[0].SlotTotal)
	assert.Equal(t, 0, result.FinalTimes.Total)
}

func TestEstimate_AliasResolvesBeforeLookup(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "rct", Teeth: 1, Surfaces: 1, Quadrants: 1}},
	})

	require.Len(t, result.Procedures, 1)
	assert.Equal(t, "Root Canal", result.Procedures[0].Procedure)
	assert.Equal(t, 60, result.FinalTimes.Total)
}

func TestEstimate_InvalidCountsClamped(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider:   "Radin",
		Procedures: []engine.ProcedureRequest{{Name: "Crown", Teeth: -3, Surfaces: -1, Quadrants: -2}},
	})

	require.Len(t, result.Procedures, 1)
	assert.Equal(t, 1, result.Procedures[0].Teeth)
	assert.Equal(t, 1, result.Procedures[0].Surfaces)
	assert.Equal(t, 0, result.Procedures[0].Quadrants)
	assert.Equal(t, 90, result.FinalTimes.Total)
}

func TestEstimate_CompatibilityFlag(t *testing.T) {
	e := engine.New(engine.Config{})
	result := e.Estimate(testSnapshot(false), engine.EstimateRequest{
		Provider: "Kayla",
		Procedures: []engine.ProcedureRequest{
			{Name: "Crown", Teeth: 1, Surfaces: 1, Quadrants: 1},
			{Name: "Extraction", Teeth: 1, Surfaces: 1, Quadrants: 1},
			{Name: "Cleaning", Teeth: 1, Surfaces: 1, Quadrants: 1},
		},
	})

	require.Len(t, result.Procedures, 3)
	assert.False(t, result.Procedures[0].Compatible) // only Radin does crowns
	assert.True(t, result.Procedures[1].Compatible)
	assert.True(t, result.Procedures[2].Compatible) // no entry, lenient default
}

func TestSnapshot_StrictCompatibilityDefault(t *testing.T) {
	lenient := testSnapshot(false)
	strict := testSnapshot(true)

	assert.True(t, lenient.IsCompatible("Hygiene", "Cleaning"))
	assert.False(t, strict.IsCompatible("Hygiene", "Cleaning"))

	// Explicit entries behave the same under both policies.
	assert.True(t, strict.IsCompatible("Radin", "Crown"))
	assert.False(t, strict.IsCompatible("Kayla", "Crown"))
}

func TestSnapshot_InvalidProceduresExcluded(t *testing.T) {
	snap := testSnapshot(false)

	assert.False(t, snap.HasProcedure("Broken Entry"))
	assert.True(t, snap.BaseTimes("Broken Entry").IsZero())
	assert.NotContains(t, snap.ProcedureNames(), "Broken Entry")
}

func TestSnapshot_SecondaryProceduresFiltered(t *testing.T) {
	snap := testSnapshot(false)

	assert.Equal(t, []string{"Crown Delivery", "IV Sedation"}, snap.SecondaryProceduresFor("Crown", "Radin"))
	// Kayla is not authorized for IV Sedation.
	assert.Equal(t, []string{"Crown Delivery"}, snap.SecondaryProceduresFor("Crown", "Kayla"))
}

func TestSnapshot_PrimaryProcedureNamesExcludeSecondary(t *testing.T) {
	snap := testSnapshot(false)

	assert.NotContains(t, snap.PrimaryProcedureNames(), "IV Sedation")
	assert.Contains(t, snap.ProcedureNames(), "IV Sedation")
}

func TestEstimate_RoundUpMode(t *testing.T) {
	snap := testSnapshot(false)
	request := engine.EstimateRequest{
		Provider:   "Kayla",
		Procedures: []engine.ProcedureRequest{{Name: "Filling", Teeth: 1, Surfaces: 1, Quadrants: 1}},
		Factors:    []string{"Assistant Unfamiliarity"},
	}

	// 30 * 1.1 = 33: nearest-slot gives 30, round-up mode must give 40.
	nearest := engine.New(engine.Config{}).Estimate(snap, request)
	assert.Equal(t, 30, nearest.FinalTimes.Total)

	roundedUp := engine.New(engine.Config{RoundUp: true}).Estimate(snap, request)
	assert.Equal(t, 40, roundedUp.FinalTimes.Total)
}
