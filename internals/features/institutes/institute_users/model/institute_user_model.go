// file: internals/features/institutes/institute_users/model/institute_user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// InstituteUserModel: penugasan role user pada satu institute.
// Satu user boleh punya beberapa role di institute yang sama (baris terpisah).
type InstituteUserModel struct {
	InstituteUserID          uuid.UUID  `gorm:"column:institute_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"institute_user_id"`
	InstituteUserInstituteID uuid.UUID  `gorm:"column:institute_user_institute_id;type:uuid;not null" json:"institute_user_institute_id"`
	InstituteUserUserID      uuid.UUID  `gorm:"column:institute_user_user_id;type:uuid;not null" json:"institute_user_user_id"`
	InstituteUserRole        string     `gorm:"column:institute_user_role;type:varchar(20);not null" json:"institute_user_role"`
	InstituteUserIsActive    bool       `gorm:"column:institute_user_is_active;not null;default:true" json:"institute_user_is_active"`
	InstituteUserCreatedAt   time.Time  `gorm:"column:institute_user_created_at;type:timestamptz;autoCreateTime" json:"institute_user_created_at"`
	InstituteUserUpdatedAt   *time.Time `gorm:"column:institute_user_updated_at;type:timestamptz;autoUpdateTime" json:"institute_user_updated_at,omitempty"`
}

func (InstituteUserModel) TableName() string {
	return "institute_users"
}
