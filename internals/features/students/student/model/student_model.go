// file: internals/features/students/student/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel students.
// Setiap siswa WAJIB menempel pada satu keluarga (family_id NOT NULL).
type StudentModel struct {
	StudentID          uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentInstituteID uuid.UUID `gorm:"column:student_institute_id;type:uuid;not null" json:"student_institute_id"`
	StudentFamilyID    uuid.UUID `gorm:"column:student_family_id;type:uuid;not null" json:"student_family_id"`

	StudentUserID     *uuid.UUID `gorm:"column:student_user_id;type:uuid" json:"student_user_id,omitempty"`
	StudentCode       string     `gorm:"column:student_code;size:40;not null" json:"student_code"`
	StudentFullName   string     `gorm:"column:student_full_name;size:120;not null" json:"student_full_name"`
	StudentGender     *string    `gorm:"column:student_gender;size:10" json:"student_gender,omitempty"`
	StudentBirthDate  *time.Time `gorm:"column:student_birth_date;type:date" json:"student_birth_date,omitempty"`
	StudentEnrolledAt *time.Time `gorm:"column:student_enrolled_at;type:date" json:"student_enrolled_at,omitempty"`

	StudentIsActive  bool           `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;type:timestamptz;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
