package entity

import (
	"time"

	"github.com/google/uuid"
)

// MitigatingFactor is a patient or provider condition that lengthens (or
// shortens) a visit. Whether the value acts as a multiplier or as additive
// minutes is decided by the engine's threshold policy, not stored here.
type MitigatingFactor struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Value     float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MitigatingFactor) TableName() string {
	return "mitigating_factors"
}
