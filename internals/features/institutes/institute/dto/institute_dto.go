// file: internals/features/institutes/institute/dto/institute_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	iModel "institutku_backend/internals/features/institutes/institute/model"
)

/* ===================== REQUESTS ===================== */

type CreateInstituteRequest struct {
	InstituteName string  `json:"institute_name" validate:"required,min=2,max=120"`
	InstituteSlug string  `json:"institute_slug" validate:"omitempty,min=3,max=160"`
	InstituteCity *string `json:"institute_city" validate:"omitempty,max=80"`
}

func (r *CreateInstituteRequest) ToModel() *iModel.InstituteModel {
	return &iModel.InstituteModel{
		InstituteName: r.InstituteName,
		InstituteSlug: r.InstituteSlug,
		InstituteCity: r.InstituteCity,
	}
}

type UpdateInstituteRequest struct {
	InstituteName     *string `json:"institute_name" validate:"omitempty,min=2,max=120"`
	InstituteCity     *string `json:"institute_city" validate:"omitempty,max=80"`
	InstituteIsActive *bool   `json:"institute_is_active" validate:"omitempty"`
}

func (r *UpdateInstituteRequest) ApplyToModel(m *iModel.InstituteModel) {
	if r.InstituteName != nil {
		m.InstituteName = *r.InstituteName
	}
	if r.InstituteCity != nil {
		m.InstituteCity = r.InstituteCity
	}
	if r.InstituteIsActive != nil {
		m.InstituteIsActive = *r.InstituteIsActive
	}
}

// PatchFeaturesRequest: nama modul -> on/off (parsial, merge ke JSON existing)
type PatchFeaturesRequest map[string]bool

/* ===================== RESPONSES ===================== */

type InstituteResponse struct {
	InstituteID        uuid.UUID      `json:"institute_id"`
	InstituteName      string         `json:"institute_name"`
	InstituteSlug      string         `json:"institute_slug"`
	InstituteCity      *string        `json:"institute_city,omitempty"`
	InstituteFeatures  datatypes.JSON `json:"institute_features"`
	InstituteIsActive  bool           `json:"institute_is_active"`
	InstituteCreatedAt time.Time      `json:"institute_created_at"`
}

func FromModel(m *iModel.InstituteModel) InstituteResponse {
	return InstituteResponse{
		InstituteID:        m.InstituteID,
		InstituteName:      m.InstituteName,
		InstituteSlug:      m.InstituteSlug,
		InstituteCity:      m.InstituteCity,
		InstituteFeatures:  m.InstituteFeatures,
		InstituteIsActive:  m.InstituteIsActive,
		InstituteCreatedAt: m.InstituteCreatedAt,
	}
}

func FromModels(ms []iModel.InstituteModel) []InstituteResponse {
	out := make([]InstituteResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
