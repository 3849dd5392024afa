package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a care provider who can be scheduled for procedures.
type Provider struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Provider) TableName() string {
	return "providers"
}

// ProviderCompatibility marks one provider as authorized to perform one
// procedure. A procedure with no rows falls back to the engine's
// compatibility default policy.
type ProviderCompatibility struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProcedureName string    `gorm:"type:varchar(255);not null;index:idx_compat,unique"`
	ProviderName  string    `gorm:"type:varchar(100);not null;index:idx_compat,unique"`
}

func (ProviderCompatibility) TableName() string {
	return "provider_compatibilities"
}
