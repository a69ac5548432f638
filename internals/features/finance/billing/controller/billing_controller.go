// file: internals/features/finance/billing/controller/billing_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/features/finance/billing/dto"
	billModel "institutku_backend/internals/features/finance/billing/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

var validate = validator.New()

// billableRow: hasil join subscription aktif dengan tarifnya
type billableRow struct {
	SubscriptionID              uuid.UUID `gorm:"column:subscription_id"`
	SubscriptionStudentID       uuid.UUID `gorm:"column:subscription_student_id"`
	SubscriptionDiscountPercent int16     `gorm:"column:subscription_discount_percent"`
	GrossIDR                    int64     `gorm:"column:gross_idr"`
}

// POST /api/a/:institute_id/billings
// Generate batch tagihan untuk satu bulan: 1 billing + 1 alokasi per
// subscription aktif. Layanan cycle 'once' hanya ikut pada bulan mulai
// langganan; course tanpa tarif dilewati.
func (ctl *BillingController) Generate(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateBillingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	var rows []billableRow
	if err := ctl.DB.Raw(`
		SELECT s.subscription_id,
		       s.subscription_student_id,
		       s.subscription_discount_percent,
		       COALESCE(c.course_fee_monthly_idr, sv.service_price_idr, 0) AS gross_idr
		FROM subscriptions s
		JOIN students st ON st.student_id = s.subscription_student_id
		 AND st.student_deleted_at IS NULL AND st.student_is_active = TRUE
		LEFT JOIN courses c ON c.course_id = s.subscription_course_id
		 AND c.course_deleted_at IS NULL
		LEFT JOIN services sv ON sv.service_id = s.subscription_service_id
		 AND sv.service_deleted_at IS NULL
		WHERE s.subscription_institute_id = ?
		  AND s.subscription_status = 'active'
		  AND (s.subscription_service_id IS NULL
		       OR sv.service_cycle = 'monthly'
		       OR (sv.service_cycle = 'once'
		           AND EXTRACT(MONTH FROM s.subscription_started_at) = ?
		           AND EXTRACT(YEAR  FROM s.subscription_started_at) = ?))
		ORDER BY s.subscription_created_at ASC`,
		instituteID, req.BillingMonth, req.BillingYear).
		Scan(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil subscription aktif")
	}

	billing := req.ToModel(instituteID)

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(billing).Error; err != nil {
		tx.Rollback()
		// UNIQUE (institute, month, year) -> 409 lewat JsonDBError
		return helper.JsonDBError(c, err, "Gagal membuat billing")
	}

	resp := dto.GenerateBillingResponse{Billing: billing}
	allocations := make([]billModel.FeeAllocationModel, 0, len(rows))
	for _, row := range rows {
		if row.GrossIDR <= 0 {
			continue
		}
		subID := row.SubscriptionID
		discount, net := dto.ComputeAllocationAmounts(row.GrossIDR, row.SubscriptionDiscountPercent)
		allocations = append(allocations, billModel.FeeAllocationModel{
			FeeAllocationBillingID:      billing.BillingID,
			FeeAllocationInstituteID:    instituteID,
			FeeAllocationStudentID:      row.SubscriptionStudentID,
			FeeAllocationSubscriptionID: &subID,
			FeeAllocationGrossIDR:       row.GrossIDR,
			FeeAllocationDiscountIDR:    discount,
			FeeAllocationNetIDR:         net,
			FeeAllocationStatus:         billModel.AllocationUnpaid,
		})
		resp.TotalGrossIDR += row.GrossIDR
		resp.TotalNetIDR += net
	}

	if len(allocations) > 0 {
		if err := tx.CreateInBatches(allocations, 200).Error; err != nil {
			tx.Rollback()
			return helper.JsonDBError(c, err, "Gagal membuat alokasi tagihan")
		}
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan batch tagihan")
	}

	resp.AllocationCount = len(allocations)
	return helper.JsonCreated(c, "Batch tagihan berhasil dibuat", resp)
}

// GET /api/a/:institute_id/billings
func (ctl *BillingController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&billModel.BillingModel{}).
		Where("billing_institute_id = ?", instituteID)
	if y := c.QueryInt("year"); y > 0 {
		q = q.Where("billing_year = ?", y)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung billing")
	}

	var list []billModel.BillingModel
	if err := q.Order("billing_year DESC, billing_month DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar billing")
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/:institute_id/billings/:id
// Detail billing + rekap jumlah alokasi per status.
func (ctl *BillingController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var billing billModel.BillingModel
	if err := ctl.DB.
		First(&billing, "billing_id = ? AND billing_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Billing tidak ditemukan")
	}

	var summary struct {
		TotalAllocations int64 `gorm:"column:total_allocations" json:"total_allocations"`
		PaidCount        int64 `gorm:"column:paid_count" json:"paid_count"`
		TotalNetIDR      int64 `gorm:"column:total_net_idr" json:"total_net_idr"`
		PaidNetIDR       int64 `gorm:"column:paid_net_idr" json:"paid_net_idr"`
	}
	if err := ctl.DB.Raw(`
		SELECT COUNT(*) AS total_allocations,
		       COUNT(*) FILTER (WHERE fee_allocation_status = 'paid') AS paid_count,
		       COALESCE(SUM(fee_allocation_net_idr), 0) AS total_net_idr,
		       COALESCE(SUM(fee_allocation_net_idr) FILTER (WHERE fee_allocation_status = 'paid'), 0) AS paid_net_idr
		FROM fee_allocations
		WHERE fee_allocation_billing_id = ?`, id).
		Scan(&summary).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal merekap alokasi")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"billing": billing,
		"summary": summary,
	})
}

// GET /api/a/:institute_id/billings/:id/allocations
func (ctl *BillingController) ListAllocations(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	billingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	base := ctl.DB.Table("fee_allocations").
		Joins("JOIN students ON students.student_id = fee_allocations.fee_allocation_student_id").
		Where("fee_allocation_billing_id = ? AND fee_allocation_institute_id = ?", billingID, instituteID)

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		studentID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		base = base.Where("fee_allocation_student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("fee_allocation_status = ?", strings.ToLower(status))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung alokasi")
	}

	var list []dto.AllocationResponse
	if err := base.
		Select(`fee_allocations.fee_allocation_id,
			fee_allocations.fee_allocation_billing_id,
			fee_allocations.fee_allocation_student_id,
			students.student_code, students.student_full_name,
			fee_allocations.fee_allocation_gross_idr,
			fee_allocations.fee_allocation_discount_idr,
			fee_allocations.fee_allocation_net_idr,
			fee_allocations.fee_allocation_status,
			fee_allocations.fee_allocation_paid_at`).
		Order("students.student_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&list).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar alokasi")
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/:institute_id/billings/:id
// Batch hanya boleh dihapus selama belum ada alokasi yang dibayar.
func (ctl *BillingController) SoftDelete(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var paid int64
	if err := ctl.DB.Model(&billModel.FeeAllocationModel{}).
		Where("fee_allocation_billing_id = ? AND fee_allocation_status = 'paid'", id).
		Count(&paid).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa alokasi")
	}
	if paid > 0 {
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT",
			"Billing sudah memiliki alokasi terbayar dan tidak dapat dihapus")
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Model(&billModel.FeeAllocationModel{}).
		Where("fee_allocation_billing_id = ? AND fee_allocation_status = 'unpaid'", id).
		Update("fee_allocation_status", billModel.AllocationCanceled).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal membatalkan alokasi")
	}

	res := tx.Where("billing_id = ? AND billing_institute_id = ?", id, instituteID).
		Delete(&billModel.BillingModel{})
	if res.Error != nil {
		tx.Rollback()
		return helper.JsonDBError(c, res.Error, "Gagal menghapus billing")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
			"Billing tidak ditemukan")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghapus billing")
	}

	return helper.JsonDeleted(c, "Billing dihapus", fiber.Map{
		"billing_id": id,
		"deleted_at": time.Now(),
	})
}

// GET /api/u/:institute_id/my-allocations
// Portal orang tua / siswa: alokasi tagihan anak sendiri (atau diri sendiri).
func (ctl *BillingController) MyAllocations(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	base := ctl.DB.Table("fee_allocations").
		Joins("JOIN students ON students.student_id = fee_allocations.fee_allocation_student_id").
		Joins("JOIN families ON families.family_id = students.student_family_id").
		Where("fee_allocation_institute_id = ?", instituteID).
		Where("(families.family_guardian_user_id = ? OR students.student_user_id = ?)", userID, userID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("fee_allocation_status = ?", strings.ToLower(status))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung tagihan")
	}

	var list []dto.AllocationResponse
	if err := base.
		Select(`fee_allocations.fee_allocation_id,
			fee_allocations.fee_allocation_billing_id,
			fee_allocations.fee_allocation_student_id,
			students.student_code, students.student_full_name,
			fee_allocations.fee_allocation_gross_idr,
			fee_allocations.fee_allocation_discount_idr,
			fee_allocations.fee_allocation_net_idr,
			fee_allocations.fee_allocation_status,
			fee_allocations.fee_allocation_paid_at`).
		Order("fee_allocations.fee_allocation_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&list).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil tagihan")
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
