package converter

import (
	"go-dental-estimator/internal/domain/entity"
	"go-dental-estimator/internal/engine"
)

// CatalogToSnapshotInput assembles the engine's snapshot input from raw
// catalog rows. Practitioner minutes default to total - assistant when the
// catalog leaves them unspecified.
func CatalogToSnapshotInput(
	procedures []entity.Procedure,
	aliases []entity.ProcedureAlias,
	pairings []entity.ProcedurePairing,
	providers []entity.Provider,
	compatibilities []entity.ProviderCompatibility,
	factors []entity.MitigatingFactor,
	strictCompatibility bool,
) engine.SnapshotInput {
	in := engine.SnapshotInput{
		Procedures:          make(map[string]engine.BaseTimes, len(procedures)),
		Sections:            make(map[string]string, len(procedures)),
		Aliases:             make(map[string]string, len(aliases)),
		Compatibilities:     make(map[string][]string),
		Pairings:            make(map[string][]string),
		Providers:           make([]string, 0, len(providers)),
		Factors:             make([]engine.Factor, 0, len(factors)),
		StrictCompatibility: strictCompatibility,
	}

	for _, procedure := range procedures {
		practitioner := procedure.TotalMinutes - procedure.AssistantMinutes
		if procedure.PractitionerMinutes != nil {
			practitioner = *procedure.PractitionerMinutes
		}
		in.Procedures[procedure.Name] = engine.BaseTimes{
			Assistant:    procedure.AssistantMinutes,
			Practitioner: practitioner,
			Total:        procedure.TotalMinutes,
		}
		in.Sections[procedure.Name] = procedure.Section
	}

	for _, alias := range aliases {
		in.Aliases[alias.Alias] = alias.ProcedureName
	}

	for _, pairing := range pairings {
		in.Pairings[pairing.PrimaryName] = append(in.Pairings[pairing.PrimaryName], pairing.SecondaryName)
	}

	for _, provider := range providers {
		in.Providers = append(in.Providers, provider.Name)
	}

	for _, compatibility := range compatibilities {
		in.Compatibilities[compatibility.ProcedureName] = append(
			in.Compatibilities[compatibility.ProcedureName], compatibility.ProviderName)
	}

	for _, factor := range factors {
		in.Factors = append(in.Factors, engine.Factor{Name: factor.Name, Value: factor.Value})
	}

	return in
}
