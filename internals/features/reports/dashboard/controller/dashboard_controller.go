// file: internals/features/reports/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type entityCounts struct {
	ActiveStudents      int64 `gorm:"column:active_students" json:"active_students"`
	ActiveFamilies      int64 `gorm:"column:active_families" json:"active_families"`
	ActiveCourses       int64 `gorm:"column:active_courses" json:"active_courses"`
	ActiveSubscriptions int64 `gorm:"column:active_subscriptions" json:"active_subscriptions"`
}

type billingTotals struct {
	BilledIDR      int64 `gorm:"column:billed_idr" json:"billed_idr"`
	PaidIDR        int64 `gorm:"column:paid_idr" json:"paid_idr"`
	OutstandingIDR int64 `gorm:"column:outstanding_idr" json:"outstanding_idr"`
	UnpaidCount    int64 `gorm:"column:unpaid_count" json:"unpaid_count"`
}

type recentPayment struct {
	PaymentOrderID   string    `gorm:"column:payment_order_id" json:"payment_order_id"`
	PaymentAmountIDR int64     `gorm:"column:payment_amount_idr" json:"payment_amount_idr"`
	PaymentMethod    string    `gorm:"column:payment_method" json:"payment_method"`
	PaymentPaidAt    time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at"`
	StudentFullName  *string   `gorm:"column:student_full_name" json:"student_full_name,omitempty"`
}

// GET /api/a/:institute_id/reports/dashboard
// Rekap satu institute: jumlah entitas aktif, total tagihan bulan
// berjalan (atau ?month=&year=), dan pembayaran terakhir.
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month harus 1-12")
	}

	var counts entityCounts
	if err := ctl.DB.Raw(`
		SELECT
		  (SELECT COUNT(*) FROM students
		    WHERE student_institute_id = ? AND student_deleted_at IS NULL
		      AND student_is_active = TRUE) AS active_students,
		  (SELECT COUNT(*) FROM families
		    WHERE family_institute_id = ? AND family_deleted_at IS NULL
		      AND family_is_active = TRUE) AS active_families,
		  (SELECT COUNT(*) FROM courses
		    WHERE course_institute_id = ? AND course_deleted_at IS NULL
		      AND course_is_active = TRUE) AS active_courses,
		  (SELECT COUNT(*) FROM subscriptions
		    WHERE subscription_institute_id = ?
		      AND subscription_status = 'active') AS active_subscriptions`,
		instituteID, instituteID, instituteID, instituteID).
		Scan(&counts).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal merekap entitas")
	}

	var totals billingTotals
	if err := ctl.DB.Raw(`
		SELECT
		  COALESCE(SUM(fa.fee_allocation_net_idr), 0) AS billed_idr,
		  COALESCE(SUM(fa.fee_allocation_net_idr)
		    FILTER (WHERE fa.fee_allocation_status = 'paid'), 0) AS paid_idr,
		  COALESCE(SUM(fa.fee_allocation_net_idr)
		    FILTER (WHERE fa.fee_allocation_status = 'unpaid'), 0) AS outstanding_idr,
		  COUNT(*) FILTER (WHERE fa.fee_allocation_status = 'unpaid') AS unpaid_count
		FROM fee_allocations fa
		JOIN billings b ON b.billing_id = fa.fee_allocation_billing_id
		WHERE fa.fee_allocation_institute_id = ?
		  AND b.billing_month = ? AND b.billing_year = ?
		  AND b.billing_deleted_at IS NULL`,
		instituteID, month, year).
		Scan(&totals).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal merekap tagihan")
	}

	// setoran per bulan sepanjang tahun berjalan
	type monthlyCollected struct {
		Month        int   `gorm:"column:month" json:"month"`
		CollectedIDR int64 `gorm:"column:collected_idr" json:"collected_idr"`
	}
	collected := []monthlyCollected{}
	if err := ctl.DB.Raw(`
		SELECT b.billing_month AS month,
		       COALESCE(SUM(fa.fee_allocation_net_idr)
		         FILTER (WHERE fa.fee_allocation_status = 'paid'), 0) AS collected_idr
		FROM fee_allocations fa
		JOIN billings b ON b.billing_id = fa.fee_allocation_billing_id
		WHERE fa.fee_allocation_institute_id = ?
		  AND b.billing_year = ? AND b.billing_deleted_at IS NULL
		GROUP BY b.billing_month
		ORDER BY b.billing_month ASC`, instituteID, year).
		Scan(&collected).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal merekap setoran bulanan")
	}

	var recent []recentPayment
	if err := ctl.DB.Raw(`
		SELECT p.payment_order_id, p.payment_amount_idr, p.payment_method,
		       p.payment_paid_at, st.student_full_name
		FROM payments p
		LEFT JOIN students st ON st.student_id = p.payment_student_id
		WHERE p.payment_institute_id = ? AND p.payment_status = 'paid'
		ORDER BY p.payment_paid_at DESC
		LIMIT 10`, instituteID).
		Scan(&recent).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil pembayaran terakhir")
	}
	if recent == nil {
		recent = []recentPayment{}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"period":             fiber.Map{"month": month, "year": year},
		"counts":             counts,
		"billing":            totals,
		"collected_by_month": collected,
		"recent_payments":    recent,
	})
}

// GET /api/a/:institute_id/reports/outstanding
// Daftar siswa dengan tunggakan terbesar.
func (ctl *DashboardController) Outstanding(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	var total int64
	if err := ctl.DB.Raw(`
		SELECT COUNT(DISTINCT fee_allocation_student_id)
		FROM fee_allocations
		WHERE fee_allocation_institute_id = ?
		  AND fee_allocation_status = 'unpaid'`, instituteID).
		Scan(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung tunggakan")
	}

	type outstandingRow struct {
		StudentID       string `gorm:"column:student_id" json:"student_id"`
		StudentCode     string `gorm:"column:student_code" json:"student_code"`
		StudentFullName string `gorm:"column:student_full_name" json:"student_full_name"`
		UnpaidCount     int64  `gorm:"column:unpaid_count" json:"unpaid_count"`
		OutstandingIDR  int64  `gorm:"column:outstanding_idr" json:"outstanding_idr"`
	}
	var rows []outstandingRow
	if err := ctl.DB.Raw(`
		SELECT st.student_id, st.student_code, st.student_full_name,
		       COUNT(*) AS unpaid_count,
		       SUM(fa.fee_allocation_net_idr) AS outstanding_idr
		FROM fee_allocations fa
		JOIN students st ON st.student_id = fa.fee_allocation_student_id
		WHERE fa.fee_allocation_institute_id = ?
		  AND fa.fee_allocation_status = 'unpaid'
		GROUP BY st.student_id, st.student_code, st.student_full_name
		ORDER BY outstanding_idr DESC
		LIMIT ? OFFSET ?`, instituteID, paging.Limit, paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar tunggakan")
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
