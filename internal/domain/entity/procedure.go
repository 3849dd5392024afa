package entity

import (
	"time"

	"github.com/google/uuid"
)

// Procedure section values. Primary procedures are selectable on their own,
// secondary procedures are follow-ups booked alongside a primary one.
const (
	SectionPrimary   = "primary"
	SectionSecondary = "secondary"
)

// Procedure holds the unadjusted clinical minutes for one catalog entry.
// PractitionerMinutes may be null, in which case it is derived as
// TotalMinutes - AssistantMinutes when the catalog snapshot is built.
type Procedure struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Section             string    `gorm:"type:varchar(20);not null;default:'primary'"`
	AssistantMinutes    float64   `gorm:"not null;default:0"`
	PractitionerMinutes *float64
	TotalMinutes        float64   `gorm:"not null;default:0"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (Procedure) TableName() string {
	return "procedures"
}

// ProcedureAlias maps an alternate spelling to the canonical catalog name.
type ProcedureAlias struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Alias         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ProcedureName string    `gorm:"type:varchar(255);not null"`
}

func (ProcedureAlias) TableName() string {
	return "procedure_aliases"
}

// ProcedurePairing records which secondary procedures are valid follow-ups
// for a given primary procedure.
type ProcedurePairing struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PrimaryName   string    `gorm:"type:varchar(255);not null;index:idx_pairing,unique"`
	SecondaryName string    `gorm:"type:varchar(255);not null;index:idx_pairing,unique"`
}

func (ProcedurePairing) TableName() string {
	return "procedure_pairings"
}
