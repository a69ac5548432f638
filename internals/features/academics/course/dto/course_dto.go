// file: internals/features/academics/course/dto/course_dto.go
package dto

import (
	"github.com/google/uuid"

	cModel "institutku_backend/internals/features/academics/course/model"
)

/* ===================== REQUESTS ===================== */

type CreateCourseRequest struct {
	CourseName          string     `json:"course_name" validate:"required,min=2,max=120"`
	CourseSlug          string     `json:"course_slug" validate:"omitempty,min=3,max=160"`
	CourseLevel         *string    `json:"course_level" validate:"omitempty"`
	CourseFeeMonthlyIDR *int64     `json:"course_fee_monthly_idr" validate:"omitempty,gte=0"`
	CourseTeacherUserID *uuid.UUID `json:"course_teacher_user_id" validate:"omitempty"`
}

func (r *CreateCourseRequest) ToModel(instituteID uuid.UUID) *cModel.CourseModel {
	return &cModel.CourseModel{
		CourseInstituteID:   instituteID,
		CourseName:          r.CourseName,
		CourseSlug:          r.CourseSlug,
		CourseLevel:         r.CourseLevel,
		CourseFeeMonthlyIDR: r.CourseFeeMonthlyIDR,
		CourseTeacherUserID: r.CourseTeacherUserID,
	}
}

type UpdateCourseRequest struct {
	CourseName          *string    `json:"course_name" validate:"omitempty,min=2,max=120"`
	CourseLevel         *string    `json:"course_level" validate:"omitempty"`
	CourseFeeMonthlyIDR *int64     `json:"course_fee_monthly_idr" validate:"omitempty,gte=0"`
	CourseTeacherUserID *uuid.UUID `json:"course_teacher_user_id" validate:"omitempty"`
	CourseIsActive      *bool      `json:"course_is_active" validate:"omitempty"`
}

func (r *UpdateCourseRequest) ApplyToModel(m *cModel.CourseModel) {
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CourseLevel != nil {
		m.CourseLevel = r.CourseLevel
	}
	if r.CourseFeeMonthlyIDR != nil {
		m.CourseFeeMonthlyIDR = r.CourseFeeMonthlyIDR
	}
	if r.CourseTeacherUserID != nil {
		m.CourseTeacherUserID = r.CourseTeacherUserID
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
}
