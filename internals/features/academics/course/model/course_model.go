// file: internals/features/academics/course/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel merepresentasikan tabel courses (kelas/program berbayar bulanan).
type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseInstituteID uuid.UUID `gorm:"column:course_institute_id;type:uuid;not null" json:"course_institute_id"`

	CourseName          string     `gorm:"column:course_name;size:120;not null" json:"course_name"`
	CourseSlug          string     `gorm:"column:course_slug;size:160;not null" json:"course_slug"`
	CourseLevel         *string    `gorm:"column:course_level;type:text" json:"course_level,omitempty"`
	CourseFeeMonthlyIDR *int64     `gorm:"column:course_fee_monthly_idr" json:"course_fee_monthly_idr,omitempty"`
	CourseTeacherUserID *uuid.UUID `gorm:"column:course_teacher_user_id;type:uuid" json:"course_teacher_user_id,omitempty"`

	CourseIsActive  bool           `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`
	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;type:timestamptz;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
