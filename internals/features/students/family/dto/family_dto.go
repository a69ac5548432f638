// file: internals/features/students/family/dto/family_dto.go
package dto

import (
	"github.com/google/uuid"

	fModel "institutku_backend/internals/features/students/family/model"
)

/* ===================== REQUESTS ===================== */

type CreateFamilyRequest struct {
	FamilyName           string     `json:"family_name" validate:"required,min=2,max=120"`
	FamilyGuardianName   *string    `json:"family_guardian_name" validate:"omitempty,max=120"`
	FamilyGuardianUserID *uuid.UUID `json:"family_guardian_user_id" validate:"omitempty"`
	FamilyPhone          *string    `json:"family_phone" validate:"omitempty,max=30"`
	FamilyAddress        *string    `json:"family_address" validate:"omitempty"`
}

func (r *CreateFamilyRequest) ToModel(instituteID uuid.UUID) *fModel.FamilyModel {
	return &fModel.FamilyModel{
		FamilyInstituteID:    instituteID,
		FamilyName:           r.FamilyName,
		FamilyGuardianName:   r.FamilyGuardianName,
		FamilyGuardianUserID: r.FamilyGuardianUserID,
		FamilyPhone:          r.FamilyPhone,
		FamilyAddress:        r.FamilyAddress,
	}
}

type UpdateFamilyRequest struct {
	FamilyName           *string    `json:"family_name" validate:"omitempty,min=2,max=120"`
	FamilyGuardianName   *string    `json:"family_guardian_name" validate:"omitempty,max=120"`
	FamilyGuardianUserID *uuid.UUID `json:"family_guardian_user_id" validate:"omitempty"`
	FamilyPhone          *string    `json:"family_phone" validate:"omitempty,max=30"`
	FamilyAddress        *string    `json:"family_address" validate:"omitempty"`
	FamilyIsActive       *bool      `json:"family_is_active" validate:"omitempty"`
}

func (r *UpdateFamilyRequest) ApplyToModel(m *fModel.FamilyModel) {
	if r.FamilyName != nil {
		m.FamilyName = *r.FamilyName
	}
	if r.FamilyGuardianName != nil {
		m.FamilyGuardianName = r.FamilyGuardianName
	}
	if r.FamilyGuardianUserID != nil {
		m.FamilyGuardianUserID = r.FamilyGuardianUserID
	}
	if r.FamilyPhone != nil {
		m.FamilyPhone = r.FamilyPhone
	}
	if r.FamilyAddress != nil {
		m.FamilyAddress = r.FamilyAddress
	}
	if r.FamilyIsActive != nil {
		m.FamilyIsActive = *r.FamilyIsActive
	}
}
