// file: internals/features/finance/billing/model/billing_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingModel: satu batch tagihan bulanan per institute
// (unik per institute+bulan+tahun).
type BillingModel struct {
	BillingID          uuid.UUID `gorm:"column:billing_id;type:uuid;default:gen_random_uuid();primaryKey" json:"billing_id"`
	BillingInstituteID uuid.UUID `gorm:"column:billing_institute_id;type:uuid;not null" json:"billing_institute_id"`

	BillingTitle   string     `gorm:"column:billing_title;type:text;not null" json:"billing_title"`
	BillingMonth   int16      `gorm:"column:billing_month;not null" json:"billing_month"`
	BillingYear    int16      `gorm:"column:billing_year;not null" json:"billing_year"`
	BillingDueDate *time.Time `gorm:"column:billing_due_date;type:date" json:"billing_due_date,omitempty"`
	BillingNote    *string    `gorm:"column:billing_note;type:text" json:"billing_note,omitempty"`

	BillingCreatedAt time.Time      `gorm:"column:billing_created_at;type:timestamptz;autoCreateTime" json:"billing_created_at"`
	BillingUpdatedAt *time.Time     `gorm:"column:billing_updated_at;type:timestamptz;autoUpdateTime" json:"billing_updated_at,omitempty"`
	BillingDeletedAt gorm.DeletedAt `gorm:"column:billing_deleted_at;index" json:"-"`
}

func (BillingModel) TableName() string {
	return "billings"
}
