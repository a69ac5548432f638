// file: internals/features/academics/subscription/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status subscription
const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

// SubscriptionModel: langganan siswa ke TEPAT SATU course ATAU service
// (constraint num_nonnulls di DB, dijaga juga di DTO).
type SubscriptionModel struct {
	SubscriptionID          uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`
	SubscriptionInstituteID uuid.UUID `gorm:"column:subscription_institute_id;type:uuid;not null" json:"subscription_institute_id"`
	SubscriptionStudentID   uuid.UUID `gorm:"column:subscription_student_id;type:uuid;not null" json:"subscription_student_id"`

	SubscriptionCourseID  *uuid.UUID `gorm:"column:subscription_course_id;type:uuid" json:"subscription_course_id,omitempty"`
	SubscriptionServiceID *uuid.UUID `gorm:"column:subscription_service_id;type:uuid" json:"subscription_service_id,omitempty"`

	SubscriptionDiscountPercent int16      `gorm:"column:subscription_discount_percent;not null;default:0" json:"subscription_discount_percent"`
	SubscriptionStatus          string     `gorm:"column:subscription_status;type:varchar(10);not null;default:'active'" json:"subscription_status"`
	SubscriptionStartedAt       time.Time  `gorm:"column:subscription_started_at;type:date;not null" json:"subscription_started_at"`
	SubscriptionEndedAt         *time.Time `gorm:"column:subscription_ended_at;type:date" json:"subscription_ended_at,omitempty"`

	SubscriptionCreatedAt time.Time  `gorm:"column:subscription_created_at;type:timestamptz;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time `gorm:"column:subscription_updated_at;type:timestamptz;autoUpdateTime" json:"subscription_updated_at,omitempty"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
