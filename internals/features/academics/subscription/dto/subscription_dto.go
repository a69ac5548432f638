// file: internals/features/academics/subscription/dto/subscription_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	subModel "institutku_backend/internals/features/academics/subscription/model"
)

/* ===================== REQUESTS ===================== */

type CreateSubscriptionRequest struct {
	SubscriptionStudentID       uuid.UUID  `json:"subscription_student_id" validate:"required"`
	SubscriptionCourseID        *uuid.UUID `json:"subscription_course_id" validate:"omitempty"`
	SubscriptionServiceID       *uuid.UUID `json:"subscription_service_id" validate:"omitempty"`
	SubscriptionDiscountPercent int16      `json:"subscription_discount_percent" validate:"gte=0,lte=100"`
	SubscriptionStartedAt       *time.Time `json:"subscription_started_at" validate:"omitempty"`
}

// ValidateTarget menjaga invariant: tepat satu dari course/service terisi.
func (r *CreateSubscriptionRequest) ValidateTarget() error {
	hasCourse := r.SubscriptionCourseID != nil
	hasService := r.SubscriptionServiceID != nil
	if hasCourse == hasService {
		return errors.New("subscription harus menunjuk tepat satu course atau service")
	}
	return nil
}

func (r *CreateSubscriptionRequest) ToModel(instituteID uuid.UUID) *subModel.SubscriptionModel {
	startedAt := time.Now()
	if r.SubscriptionStartedAt != nil {
		startedAt = *r.SubscriptionStartedAt
	}
	return &subModel.SubscriptionModel{
		SubscriptionInstituteID:     instituteID,
		SubscriptionStudentID:       r.SubscriptionStudentID,
		SubscriptionCourseID:        r.SubscriptionCourseID,
		SubscriptionServiceID:       r.SubscriptionServiceID,
		SubscriptionDiscountPercent: r.SubscriptionDiscountPercent,
		SubscriptionStatus:          subModel.StatusActive,
		SubscriptionStartedAt:       startedAt,
	}
}

type UpdateSubscriptionRequest struct {
	SubscriptionDiscountPercent *int16     `json:"subscription_discount_percent" validate:"omitempty,gte=0,lte=100"`
	SubscriptionStatus          *string    `json:"subscription_status" validate:"omitempty,oneof=active ended"`
	SubscriptionEndedAt         *time.Time `json:"subscription_ended_at" validate:"omitempty"`
}

func (r *UpdateSubscriptionRequest) ApplyToModel(m *subModel.SubscriptionModel) {
	if r.SubscriptionDiscountPercent != nil {
		m.SubscriptionDiscountPercent = *r.SubscriptionDiscountPercent
	}
	if r.SubscriptionStatus != nil {
		m.SubscriptionStatus = *r.SubscriptionStatus
	}
	if r.SubscriptionEndedAt != nil {
		m.SubscriptionEndedAt = r.SubscriptionEndedAt
	}
}
