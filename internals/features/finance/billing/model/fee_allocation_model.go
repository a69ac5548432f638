// file: internals/features/finance/billing/model/fee_allocation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status alokasi tagihan
const (
	AllocationUnpaid   = "unpaid"
	AllocationPaid     = "paid"
	AllocationCanceled = "canceled"
)

// FeeAllocationModel: satu baris tagihan siswa dalam satu billing.
// Invariant DB: net = gross - discount (CHECK constraint).
type FeeAllocationModel struct {
	FeeAllocationID          uuid.UUID `gorm:"column:fee_allocation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_allocation_id"`
	FeeAllocationBillingID   uuid.UUID `gorm:"column:fee_allocation_billing_id;type:uuid;not null" json:"fee_allocation_billing_id"`
	FeeAllocationInstituteID uuid.UUID `gorm:"column:fee_allocation_institute_id;type:uuid;not null" json:"fee_allocation_institute_id"`
	FeeAllocationStudentID   uuid.UUID `gorm:"column:fee_allocation_student_id;type:uuid;not null" json:"fee_allocation_student_id"`

	FeeAllocationSubscriptionID *uuid.UUID `gorm:"column:fee_allocation_subscription_id;type:uuid" json:"fee_allocation_subscription_id,omitempty"`

	FeeAllocationGrossIDR    int64 `gorm:"column:fee_allocation_gross_idr;not null" json:"fee_allocation_gross_idr"`
	FeeAllocationDiscountIDR int64 `gorm:"column:fee_allocation_discount_idr;not null;default:0" json:"fee_allocation_discount_idr"`
	FeeAllocationNetIDR      int64 `gorm:"column:fee_allocation_net_idr;not null" json:"fee_allocation_net_idr"`

	FeeAllocationStatus    string     `gorm:"column:fee_allocation_status;type:varchar(10);not null;default:'unpaid'" json:"fee_allocation_status"`
	FeeAllocationPaidAt    *time.Time `gorm:"column:fee_allocation_paid_at;type:timestamptz" json:"fee_allocation_paid_at,omitempty"`
	FeeAllocationPaymentID *uuid.UUID `gorm:"column:fee_allocation_payment_id;type:uuid" json:"fee_allocation_payment_id,omitempty"`

	FeeAllocationCreatedAt time.Time  `gorm:"column:fee_allocation_created_at;type:timestamptz;autoCreateTime" json:"fee_allocation_created_at"`
	FeeAllocationUpdatedAt *time.Time `gorm:"column:fee_allocation_updated_at;type:timestamptz;autoUpdateTime" json:"fee_allocation_updated_at,omitempty"`
}

func (FeeAllocationModel) TableName() string {
	return "fee_allocations"
}
