// file: internals/features/students/family/model/family_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyModel merepresentasikan tabel families.
type FamilyModel struct {
	FamilyID          uuid.UUID `gorm:"column:family_id;type:uuid;default:gen_random_uuid();primaryKey" json:"family_id"`
	FamilyInstituteID uuid.UUID `gorm:"column:family_institute_id;type:uuid;not null" json:"family_institute_id"`

	FamilyName           string     `gorm:"column:family_name;size:120;not null" json:"family_name"`
	FamilyGuardianName   *string    `gorm:"column:family_guardian_name;size:120" json:"family_guardian_name,omitempty"`
	FamilyGuardianUserID *uuid.UUID `gorm:"column:family_guardian_user_id;type:uuid" json:"family_guardian_user_id,omitempty"`
	FamilyPhone          *string    `gorm:"column:family_phone;size:30" json:"family_phone,omitempty"`
	FamilyAddress        *string    `gorm:"column:family_address;type:text" json:"family_address,omitempty"`

	FamilyIsActive  bool           `gorm:"column:family_is_active;not null;default:true" json:"family_is_active"`
	FamilyCreatedAt time.Time      `gorm:"column:family_created_at;type:timestamptz;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt *time.Time     `gorm:"column:family_updated_at;type:timestamptz;autoUpdateTime" json:"family_updated_at,omitempty"`
	FamilyDeletedAt gorm.DeletedAt `gorm:"column:family_deleted_at;index" json:"-"`
}

func (FamilyModel) TableName() string {
	return "families"
}
