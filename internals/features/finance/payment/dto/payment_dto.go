// file: internals/features/finance/payment/dto/payment_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// ManualPaymentRequest: admin mencatat pembayaran tunai / transfer
// untuk satu atau beberapa alokasi milik siswa yang sama.
type ManualPaymentRequest struct {
	PaymentStudentID uuid.UUID   `json:"payment_student_id" validate:"required"`
	AllocationIDs    []uuid.UUID `json:"allocation_ids" validate:"required,min=1,dive,required"`
	PaymentNote      *string     `json:"payment_note" validate:"omitempty,max=500"`
}

// CheckoutRequest: wali memulai pembayaran online (Midtrans Snap)
// untuk alokasi anak sendiri.
type CheckoutRequest struct {
	AllocationIDs []uuid.UUID `json:"allocation_ids" validate:"required,min=1,dive,required"`
}

// MidtransNotification: payload webhook yang kita pakai.
// Field lain di payload Midtrans diabaikan.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

/* ===================== RESPONSES ===================== */

type CheckoutResponse struct {
	PaymentID        uuid.UUID `json:"payment_id"`
	PaymentOrderID   string    `json:"payment_order_id"`
	PaymentAmountIDR int64     `json:"payment_amount_idr"`
	SnapToken        string    `json:"snap_token"`
	RedirectURL      string    `json:"redirect_url"`
}
