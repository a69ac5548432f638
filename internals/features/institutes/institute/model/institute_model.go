// file: internals/features/institutes/institute/model/institute_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InstituteModel merepresentasikan tabel institutes (tenant).
type InstituteModel struct {
	InstituteID   uuid.UUID `gorm:"column:institute_id;type:uuid;default:gen_random_uuid();primaryKey" json:"institute_id"`
	InstituteName string    `gorm:"column:institute_name;size:120;not null" json:"institute_name"`
	InstituteSlug string    `gorm:"column:institute_slug;size:160;not null" json:"institute_slug"`
	InstituteCity *string   `gorm:"column:institute_city;size:80" json:"institute_city,omitempty"`

	// Feature flag per-tenant: {"billing": false, ...}; modul yang tidak
	// disebut dianggap mengikuti default global.
	InstituteFeatures datatypes.JSON `gorm:"column:institute_features;type:jsonb;not null;default:'{}'" json:"institute_features"`

	InstituteIsActive  bool           `gorm:"column:institute_is_active;not null;default:true" json:"institute_is_active"`
	InstituteCreatedAt time.Time      `gorm:"column:institute_created_at;type:timestamptz;autoCreateTime" json:"institute_created_at"`
	InstituteUpdatedAt *time.Time     `gorm:"column:institute_updated_at;type:timestamptz;autoUpdateTime" json:"institute_updated_at,omitempty"`
	InstituteDeletedAt gorm.DeletedAt `gorm:"column:institute_deleted_at;index" json:"-"`
}

func (InstituteModel) TableName() string {
	return "institutes"
}
