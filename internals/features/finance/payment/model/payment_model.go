// file: internals/features/finance/payment/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Metode & status pembayaran
const (
	MethodManual   = "manual"
	MethodMidtrans = "midtrans"

	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusExpired  = "expired"
	StatusCanceled = "canceled"
)

type PaymentModel struct {
	PaymentID          uuid.UUID  `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentInstituteID uuid.UUID  `gorm:"column:payment_institute_id;type:uuid;not null" json:"payment_institute_id"`
	PaymentStudentID   *uuid.UUID `gorm:"column:payment_student_id;type:uuid" json:"payment_student_id,omitempty"`

	PaymentOrderID   string `gorm:"column:payment_order_id;size:64;not null;unique" json:"payment_order_id"`
	PaymentAmountIDR int64  `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentMethod    string `gorm:"column:payment_method;type:varchar(10);not null;default:'manual'" json:"payment_method"`
	PaymentStatus    string `gorm:"column:payment_status;type:varchar(10);not null;default:'pending'" json:"payment_status"`

	PaymentPaidAt      *time.Time `gorm:"column:payment_paid_at;type:timestamptz" json:"payment_paid_at,omitempty"`
	PaymentSnapToken   *string    `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string    `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`
	PaymentNote        *string    `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time `gorm:"column:payment_updated_at;type:timestamptz;autoUpdateTime" json:"payment_updated_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
