// file: internals/features/finance/billing/dto/billing_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	billModel "institutku_backend/internals/features/finance/billing/model"
)

/* ===================== REQUESTS ===================== */

type GenerateBillingRequest struct {
	BillingTitle   string     `json:"billing_title" validate:"omitempty,max=160"`
	BillingMonth   int16      `json:"billing_month" validate:"required,gte=1,lte=12"`
	BillingYear    int16      `json:"billing_year" validate:"required,gte=2000,lte=2100"`
	BillingDueDate *time.Time `json:"billing_due_date" validate:"omitempty"`
	BillingNote    *string    `json:"billing_note" validate:"omitempty,max=500"`
}

func (r *GenerateBillingRequest) ToModel(instituteID uuid.UUID) *billModel.BillingModel {
	title := r.BillingTitle
	if title == "" {
		title = fmt.Sprintf("Tagihan %02d/%d", r.BillingMonth, r.BillingYear)
	}
	return &billModel.BillingModel{
		BillingInstituteID: instituteID,
		BillingTitle:       title,
		BillingMonth:       r.BillingMonth,
		BillingYear:        r.BillingYear,
		BillingDueDate:     r.BillingDueDate,
		BillingNote:        r.BillingNote,
	}
}

/* ===================== RESPONSES ===================== */

// GenerateBillingResponse: hasil batch generate
type GenerateBillingResponse struct {
	Billing         *billModel.BillingModel `json:"billing"`
	AllocationCount int                     `json:"allocation_count"`
	TotalGrossIDR   int64                   `json:"total_gross_idr"`
	TotalNetIDR     int64                   `json:"total_net_idr"`
}

// AllocationResponse: baris alokasi digabung identitas siswa
type AllocationResponse struct {
	FeeAllocationID          uuid.UUID  `json:"fee_allocation_id"`
	FeeAllocationBillingID   uuid.UUID  `json:"fee_allocation_billing_id"`
	FeeAllocationStudentID   uuid.UUID  `json:"fee_allocation_student_id"`
	StudentCode              string     `json:"student_code"`
	StudentFullName          string     `json:"student_full_name"`
	FeeAllocationGrossIDR    int64      `json:"fee_allocation_gross_idr"`
	FeeAllocationDiscountIDR int64      `json:"fee_allocation_discount_idr"`
	FeeAllocationNetIDR      int64      `json:"fee_allocation_net_idr"`
	FeeAllocationStatus      string     `json:"fee_allocation_status"`
	FeeAllocationPaidAt      *time.Time `json:"fee_allocation_paid_at,omitempty"`
}

/* ===================== HITUNG ALOKASI ===================== */

// ComputeAllocationAmounts menghitung diskon & net dari gross dan persen diskon.
// Diskon dibulatkan ke bawah supaya net = gross - discount selalu konsisten
// dengan CHECK constraint di DB.
func ComputeAllocationAmounts(grossIDR int64, discountPercent int16) (discountIDR, netIDR int64) {
	if grossIDR < 0 {
		grossIDR = 0
	}
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	discountIDR = grossIDR * int64(discountPercent) / 100
	netIDR = grossIDR - discountIDR
	return discountIDR, netIDR
}
