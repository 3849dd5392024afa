package engine

import (
	"math"
	"sort"
	"strings"
)

// BaseTimes holds clinical minutes broken down by role. Total is the
// authoritative figure; it is not required to equal Assistant+Practitioner.
type BaseTimes struct {
	Assistant    float64
	Practitioner float64
	Total        float64
}

// IsZero reports whether all components are zero, which is how a failed
// catalog lookup presents itself to callers.
func (t BaseTimes) IsZero() bool {
	return t.Assistant == 0 && t.Practitioner == 0 && t.Total == 0
}

// assistantShare is the fraction of the total owed to the assistant,
// falling back to the default split when the base total is unusable.
func (t BaseTimes) assistantShare() float64 {
	if t.Total <= 0 {
		return fallbackAssistantShare
	}
	return t.Assistant / t.Total
}

// Factor is a mitigating factor as loaded from the catalog.
type Factor struct {
	Name  string
	Value float64
}

// IsMultiplier classifies the factor by value: values at or below the
// threshold scale the visit, larger values are additive minutes.
func (f Factor) IsMultiplier() bool {
	return f.Value <= multiplierThreshold
}

// SnapshotInput carries the raw catalog tables used to build a Snapshot.
type SnapshotInput struct {
	Procedures map[string]BaseTimes
	// Sections maps procedure name to "primary" or "secondary".
	Sections map[string]string
	// Aliases maps an alternate spelling (any case) to the canonical name.
	Aliases map[string]string
	// Compatibilities maps procedure name to the providers authorized to
	// perform it. A missing entry falls back to the default policy below.
	Compatibilities map[string][]string
	Factors         []Factor
	// Pairings maps a primary procedure to its valid secondary follow-ups.
	Pairings  map[string][]string
	Providers []string
	// StrictCompatibility flips the default for procedures with no
	// compatibility entry: false means anyone may perform them, true means
	// no one may.
	StrictCompatibility bool
}

// Snapshot is an immutable view of the catalog. All engine calculations read
// from a single shared snapshot, so concurrent estimates need no locking;
// hot reloads swap in a fully built replacement.
type Snapshot struct {
	procedures      map[string]BaseTimes
	sections        map[string]string
	aliases         map[string]string
	compatibilities map[string]map[string]bool
	factors         map[string]Factor
	factorOrder     []string
	pairings        map[string][]string
	providers       []string
	strictCompat    bool
}

// NewSnapshot builds a snapshot from raw catalog tables. Procedures with a
// non-positive total or any NaN component are invalid and excluded.
func NewSnapshot(in SnapshotInput) *Snapshot {
	snap := &Snapshot{
		procedures:      make(map[string]BaseTimes, len(in.Procedures)),
		sections:        make(map[string]string, len(in.Sections)),
		aliases:         make(map[string]string, len(in.Aliases)),
		compatibilities: make(map[string]map[string]bool, len(in.Compatibilities)),
		factors:         make(map[string]Factor, len(in.Factors)),
		pairings:        make(map[string][]string, len(in.Pairings)),
		providers:       append([]string(nil), in.Providers...),
		strictCompat:    in.StrictCompatibility,
	}

	for name, times := range in.Procedures {
		if times.Total <= 0 || math.IsNaN(times.Assistant) || math.IsNaN(times.Practitioner) || math.IsNaN(times.Total) {
			continue
		}
		snap.procedures[name] = times
		if section, ok := in.Sections[name]; ok {
			snap.sections[name] = section
		}
	}

	for alias, canonical := range in.Aliases {
		snap.aliases[strings.ToLower(strings.TrimSpace(alias))] = canonical
	}

	for procedure, providers := range in.Compatibilities {
		set := make(map[string]bool, len(providers))
		for _, provider := range providers {
			set[provider] = true
		}
		snap.compatibilities[procedure] = set
	}

	for _, factor := range in.Factors {
		if _, exists := snap.factors[factor.Name]; exists {
			continue
		}
		snap.factors[factor.Name] = factor
		snap.factorOrder = append(snap.factorOrder, factor.Name)
	}

	for primary, secondaries := range in.Pairings {
		snap.pairings[primary] = append([]string(nil), secondaries...)
	}

	sort.Strings(snap.providers)
	return snap
}

// Resolve maps a submitted procedure name to its canonical catalog name.
// Unknown names pass through unchanged.
func (s *Snapshot) Resolve(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := s.aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// BaseTimes returns the base minutes for a procedure, zeros when the
// procedure is unknown. Lookup misses never fail; callers detect the
// all-zero result.
func (s *Snapshot) BaseTimes(name string) BaseTimes {
	return s.procedures[s.Resolve(name)]
}

// HasProcedure reports whether the (alias-resolved) name is in the catalog.
func (s *Snapshot) HasProcedure(name string) bool {
	_, ok := s.procedures[s.Resolve(name)]
	return ok
}

// IsCompatible reports whether the provider is authorized to perform the
// procedure. Procedures without compatibility entries follow the snapshot's
// single default policy.
func (s *Snapshot) IsCompatible(provider, procedure string) bool {
	set, ok := s.compatibilities[s.Resolve(procedure)]
	if !ok {
		return !s.strictCompat
	}
	return set[provider]
}

// Factor looks up a mitigating factor by name.
func (s *Snapshot) Factor(name string) (Factor, bool) {
	factor, ok := s.factors[name]
	return factor, ok
}

// Factors returns all mitigating factors in catalog order.
func (s *Snapshot) Factors() []Factor {
	factors := make([]Factor, 0, len(s.factorOrder))
	for _, name := range s.factorOrder {
		factors = append(factors, s.factors[name])
	}
	return factors
}

// ProcedureNames returns every valid procedure name, sorted.
func (s *Snapshot) ProcedureNames() []string {
	names := make([]string, 0, len(s.procedures))
	for name := range s.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrimaryProcedureNames returns the procedures selectable on their own.
func (s *Snapshot) PrimaryProcedureNames() []string {
	names := make([]string, 0, len(s.procedures))
	for name := range s.procedures {
		if s.sections[name] != SectionSecondary {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// SecondaryProceduresFor lists the valid follow-up procedures for a primary
// procedure, filtered to those the provider may perform.
func (s *Snapshot) SecondaryProceduresFor(primary, provider string) []string {
	var valid []string
	for _, secondary := range s.pairings[s.Resolve(primary)] {
		if !s.HasProcedure(secondary) {
			continue
		}
		if !s.IsCompatible(provider, secondary) {
			continue
		}
		valid = append(valid, secondary)
	}
	sort.Strings(valid)
	return valid
}

// ProviderNames returns all providers, sorted.
func (s *Snapshot) ProviderNames() []string {
	return append([]string(nil), s.providers...)
}

// SectionPrimary / SectionSecondary mirror the catalog's section values.
const (
	SectionPrimary   = "primary"
	SectionSecondary = "secondary"
)
