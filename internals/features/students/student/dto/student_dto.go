// file: internals/features/students/student/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sModel "institutku_backend/internals/features/students/student/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentFamilyID   uuid.UUID  `json:"student_family_id" validate:"required"`
	StudentUserID     *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentCode       string     `json:"student_code" validate:"required,min=2,max=40"`
	StudentFullName   string     `json:"student_full_name" validate:"required,min=2,max=120"`
	StudentGender     *string    `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate  *time.Time `json:"student_birth_date" validate:"omitempty"`
	StudentEnrolledAt *time.Time `json:"student_enrolled_at" validate:"omitempty"`
}

func (r *CreateStudentRequest) ToModel(instituteID uuid.UUID) *sModel.StudentModel {
	return &sModel.StudentModel{
		StudentInstituteID: instituteID,
		StudentFamilyID:    r.StudentFamilyID,
		StudentUserID:      r.StudentUserID,
		StudentCode:        r.StudentCode,
		StudentFullName:    r.StudentFullName,
		StudentGender:      r.StudentGender,
		StudentBirthDate:   r.StudentBirthDate,
		StudentEnrolledAt:  r.StudentEnrolledAt,
	}
}

type UpdateStudentRequest struct {
	StudentFamilyID   *uuid.UUID `json:"student_family_id" validate:"omitempty"`
	StudentUserID     *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentCode       *string    `json:"student_code" validate:"omitempty,min=2,max=40"`
	StudentFullName   *string    `json:"student_full_name" validate:"omitempty,min=2,max=120"`
	StudentGender     *string    `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate  *time.Time `json:"student_birth_date" validate:"omitempty"`
	StudentEnrolledAt *time.Time `json:"student_enrolled_at" validate:"omitempty"`
	StudentIsActive   *bool      `json:"student_is_active" validate:"omitempty"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *sModel.StudentModel) {
	if r.StudentFamilyID != nil {
		m.StudentFamilyID = *r.StudentFamilyID
	}
	if r.StudentUserID != nil {
		m.StudentUserID = r.StudentUserID
	}
	if r.StudentCode != nil {
		m.StudentCode = *r.StudentCode
	}
	if r.StudentFullName != nil {
		m.StudentFullName = *r.StudentFullName
	}
	if r.StudentGender != nil {
		m.StudentGender = r.StudentGender
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentEnrolledAt != nil {
		m.StudentEnrolledAt = r.StudentEnrolledAt
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
}
