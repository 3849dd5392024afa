package database

import (
	"fmt"

	"go-dental-estimator/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Procedure{},
		&entity.ProcedureAlias{},
		&entity.ProcedurePairing{},
		&entity.Provider{},
		&entity.ProviderCompatibility{},
		&entity.MitigatingFactor{},
	)
}

// SeedDefaultCatalog inserts the default clinic catalog when the procedures
// table is empty. An already populated database is left untouched.
func SeedDefaultCatalog(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.Procedure{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count procedures: %w", err)
	}
	if count > 0 {
		log.Infof("Catalog already populated (%d procedures), skipping seed", count)
		return nil
	}

	practitioner := func(v float64) *float64 { return &v }

	procedures := []entity.Procedure{
		{Name: "Filling", Section: entity.SectionPrimary, AssistantMinutes: 10, TotalMinutes: 30},
		{Name: "Crown", Section: entity.SectionPrimary, AssistantMinutes: 30, TotalMinutes: 90},
		{Name: "Root Canal", Section: entity.SectionPrimary, AssistantMinutes: 20, TotalMinutes: 60},
		{Name: "Extraction", Section: entity.SectionPrimary, AssistantMinutes: 15, TotalMinutes: 50},
		{Name: "Implant", Section: entity.SectionPrimary, AssistantMinutes: 30, TotalMinutes: 90},
		{Name: "Cleaning", Section: entity.SectionPrimary, AssistantMinutes: 40, PractitionerMinutes: practitioner(0), TotalMinutes: 40},
		{Name: "Crown Delivery", Section: entity.SectionSecondary, AssistantMinutes: 15, TotalMinutes: 40},
		{Name: "IV Sedation", Section: entity.SectionSecondary, AssistantMinutes: 15, TotalMinutes: 30},
		{Name: "Nitrous Sedation", Section: entity.SectionSecondary, AssistantMinutes: 10, TotalMinutes: 20},
		{Name: "Additional Anesthesia", Section: entity.SectionSecondary, AssistantMinutes: 5, TotalMinutes: 10},
	}

	aliases := []entity.ProcedureAlias{
		{Alias: "RCT", ProcedureName: "Root Canal"},
		{Alias: "Ext", ProcedureName: "Extraction"},
		{Alias: "Prophy", ProcedureName: "Cleaning"},
	}

	pairings := []entity.ProcedurePairing{
		{PrimaryName: "Crown", SecondaryName: "Crown Delivery"},
		{PrimaryName: "Crown", SecondaryName: "IV Sedation"},
		{PrimaryName: "Crown", SecondaryName: "Nitrous Sedation"},
		{PrimaryName: "Root Canal", SecondaryName: "IV Sedation"},
		{PrimaryName: "Root Canal", SecondaryName: "Nitrous Sedation"},
		{PrimaryName: "Root Canal", SecondaryName: "Additional Anesthesia"},
		{PrimaryName: "Extraction", SecondaryName: "IV Sedation"},
		{PrimaryName: "Extraction", SecondaryName: "Nitrous Sedation"},
		{PrimaryName: "Extraction", SecondaryName: "Additional Anesthesia"},
		{PrimaryName: "Implant", SecondaryName: "IV Sedation"},
		{PrimaryName: "Filling", SecondaryName: "Nitrous Sedation"},
		{PrimaryName: "Filling", SecondaryName: "Additional Anesthesia"},
	}

	providers := []entity.Provider{
		{Name: "Miekella"},
		{Name: "Kayla"},
		{Name: "Radin"},
		{Name: "Marina"},
		{Name: "Monse"},
		{Name: "Jessica"},
		{Name: "Amber"},
		{Name: "Kym"},
		{Name: "Natalia"},
		{Name: "Hygiene"},
	}

	compatibilities := []entity.ProviderCompatibility{
		{ProcedureName: "Crown", ProviderName: "Radin"},
		{ProcedureName: "Crown", ProviderName: "Miekella"},
		{ProcedureName: "Implant", ProviderName: "Radin"},
		{ProcedureName: "Root Canal", ProviderName: "Radin"},
		{ProcedureName: "Root Canal", ProviderName: "Miekella"},
		{ProcedureName: "Root Canal", ProviderName: "Kayla"},
		{ProcedureName: "IV Sedation", ProviderName: "Radin"},
		{ProcedureName: "IV Sedation", ProviderName: "Miekella"},
		{ProcedureName: "Cleaning", ProviderName: "Hygiene"},
	}

	factors := []entity.MitigatingFactor{
		{Name: "Provider Learning Curve", Value: 1.15},
		{Name: "Assistant Unfamiliarity", Value: 1.1},
		{Name: "Anxious Patient", Value: 1.25},
		{Name: "Special Needs", Value: 10},
		{Name: "Language Barrier", Value: 15},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&procedures).Error; err != nil {
			return fmt.Errorf("failed to seed procedures: %w", err)
		}
		if err := tx.Create(&aliases).Error; err != nil {
			return fmt.Errorf("failed to seed aliases: %w", err)
		}
		if err := tx.Create(&pairings).Error; err != nil {
			return fmt.Errorf("failed to seed pairings: %w", err)
		}
		if err := tx.Create(&providers).Error; err != nil {
			return fmt.Errorf("failed to seed providers: %w", err)
		}
		if err := tx.Create(&compatibilities).Error; err != nil {
			return fmt.Errorf("failed to seed compatibilities: %w", err)
		}
		if err := tx.Create(&factors).Error; err != nil {
			return fmt.Errorf("failed to seed mitigating factors: %w", err)
		}

		log.Infof("Seeded default catalog: %d procedures, %d providers, %d factors",
			len(procedures), len(providers), len(factors))
		return nil
	})
}
