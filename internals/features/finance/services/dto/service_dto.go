// file: internals/features/finance/services/dto/service_dto.go
package dto

import (
	"github.com/google/uuid"

	svcModel "institutku_backend/internals/features/finance/services/model"
)

/* ===================== REQUESTS ===================== */

type CreateServiceRequest struct {
	ServiceName     string `json:"service_name" validate:"required,min=2,max=120"`
	ServicePriceIDR int64  `json:"service_price_idr" validate:"required,gte=0"`
	ServiceCycle    string `json:"service_cycle" validate:"omitempty,oneof=monthly once"`
}

func (r *CreateServiceRequest) ToModel(instituteID uuid.UUID) *svcModel.ServiceModel {
	cycle := r.ServiceCycle
	if cycle == "" {
		cycle = svcModel.CycleMonthly
	}
	return &svcModel.ServiceModel{
		ServiceInstituteID: instituteID,
		ServiceName:        r.ServiceName,
		ServicePriceIDR:    r.ServicePriceIDR,
		ServiceCycle:       cycle,
	}
}

type UpdateServiceRequest struct {
	ServiceName     *string `json:"service_name" validate:"omitempty,min=2,max=120"`
	ServicePriceIDR *int64  `json:"service_price_idr" validate:"omitempty,gte=0"`
	ServiceCycle    *string `json:"service_cycle" validate:"omitempty,oneof=monthly once"`
	ServiceIsActive *bool   `json:"service_is_active" validate:"omitempty"`
}

func (r *UpdateServiceRequest) ApplyToModel(m *svcModel.ServiceModel) {
	if r.ServiceName != nil {
		m.ServiceName = *r.ServiceName
	}
	if r.ServicePriceIDR != nil {
		m.ServicePriceIDR = *r.ServicePriceIDR
	}
	if r.ServiceCycle != nil {
		m.ServiceCycle = *r.ServiceCycle
	}
	if r.ServiceIsActive != nil {
		m.ServiceIsActive = *r.ServiceIsActive
	}
}
