// file: internals/features/finance/services/model/service_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Siklus tagihan layanan
const (
	CycleMonthly = "monthly"
	CycleOnce    = "once"
)

// ServiceModel merepresentasikan tabel services (layanan non-akademik:
// antar-jemput, katering, asrama, dsb).
type ServiceModel struct {
	ServiceID          uuid.UUID `gorm:"column:service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"service_id"`
	ServiceInstituteID uuid.UUID `gorm:"column:service_institute_id;type:uuid;not null" json:"service_institute_id"`

	ServiceName     string `gorm:"column:service_name;size:120;not null" json:"service_name"`
	ServicePriceIDR int64  `gorm:"column:service_price_idr;not null" json:"service_price_idr"`
	ServiceCycle    string `gorm:"column:service_cycle;type:varchar(10);not null;default:'monthly'" json:"service_cycle"`

	ServiceIsActive  bool           `gorm:"column:service_is_active;not null;default:true" json:"service_is_active"`
	ServiceCreatedAt time.Time      `gorm:"column:service_created_at;type:timestamptz;autoCreateTime" json:"service_created_at"`
	ServiceUpdatedAt *time.Time     `gorm:"column:service_updated_at;type:timestamptz;autoUpdateTime" json:"service_updated_at,omitempty"`
	ServiceDeletedAt gorm.DeletedAt `gorm:"column:service_deleted_at;index" json:"-"`
}

func (ServiceModel) TableName() string {
	return "services"
}
