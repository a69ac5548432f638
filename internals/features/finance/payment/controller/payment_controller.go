// file: internals/features/finance/payment/controller/payment_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "institutku_backend/internals/features/finance/billing/model"
	"institutku_backend/internals/features/finance/payment/dto"
	payModel "institutku_backend/internals/features/finance/payment/model"
	"institutku_backend/internals/features/finance/payment/service"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// lockUnpaidAllocations mengambil alokasi unpaid milik siswa tsb dan
// mengunci barisnya selama transaksi.
func lockUnpaidAllocations(tx *gorm.DB, instituteID, studentID uuid.UUID, ids []uuid.UUID) ([]billModel.FeeAllocationModel, error) {
	var allocations []billModel.FeeAllocationModel
	err := tx.Raw(`
		SELECT * FROM fee_allocations
		WHERE fee_allocation_id IN ?
		  AND fee_allocation_institute_id = ?
		  AND fee_allocation_student_id = ?
		  AND fee_allocation_status = 'unpaid'
		FOR UPDATE`, ids, instituteID, studentID).
		Scan(&allocations).Error
	return allocations, err
}

func sumNet(allocations []billModel.FeeAllocationModel) int64 {
	var total int64
	for _, a := range allocations {
		total += a.FeeAllocationNetIDR
	}
	return total
}

func allocationIDs(allocations []billModel.FeeAllocationModel) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(allocations))
	for _, a := range allocations {
		ids = append(ids, a.FeeAllocationID)
	}
	return ids
}

// priorPaymentIDs mengumpulkan payment_id unik yang masih menempel di
// alokasi unpaid (sesi checkout pending sebelumnya).
func priorPaymentIDs(allocations []billModel.FeeAllocationModel) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(allocations))
	ids := make([]uuid.UUID, 0, len(allocations))
	for _, a := range allocations {
		if a.FeeAllocationPaymentID == nil || seen[*a.FeeAllocationPaymentID] {
			continue
		}
		seen[*a.FeeAllocationPaymentID] = true
		ids = append(ids, *a.FeeAllocationPaymentID)
	}
	return ids
}

// POST /api/a/:institute_id/payments/manual
// Pembayaran tunai / transfer manual: payment langsung paid dan
// alokasinya ditandai lunas dalam satu transaksi.
func (ctl *PaymentController) CreateManual(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ManualPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	allocations, err := lockUnpaidAllocations(tx, instituteID, req.PaymentStudentID, req.AllocationIDs)
	if err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal mengambil alokasi")
	}
	if len(allocations) != len(req.AllocationIDs) {
		tx.Rollback()
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Sebagian alokasi tidak ditemukan, sudah dibayar, atau bukan milik siswa tersebut")
	}

	now := time.Now()
	studentID := req.PaymentStudentID
	payment := payModel.PaymentModel{
		PaymentInstituteID: instituteID,
		PaymentStudentID:   &studentID,
		PaymentOrderID:     service.NewOrderID(instituteID),
		PaymentAmountIDR:   sumNet(allocations),
		PaymentMethod:      payModel.MethodManual,
		PaymentStatus:      payModel.StatusPaid,
		PaymentPaidAt:      &now,
		PaymentNote:        req.PaymentNote,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal mencatat pembayaran")
	}

	if err := tx.Model(&billModel.FeeAllocationModel{}).
		Where("fee_allocation_id IN ?", allocationIDs(allocations)).
		Updates(map[string]any{
			"fee_allocation_status":     billModel.AllocationPaid,
			"fee_allocation_paid_at":    now,
			"fee_allocation_payment_id": payment.PaymentID,
		}).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menandai alokasi lunas")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran manual dicatat", payment)
}

// POST /api/u/:institute_id/payments/checkout
// Wali membuat sesi Snap untuk alokasi anak sendiri. Payment pending
// dibuat dulu; pelunasan terjadi lewat webhook.
func (ctl *PaymentController) Checkout(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStructValidationError(c, err)
	}

	// alokasi harus unpaid dan milik anak dari wali ini (atau siswa sendiri)
	var allocations []billModel.FeeAllocationModel
	if err := ctl.DB.Raw(`
		SELECT fa.* FROM fee_allocations fa
		JOIN students st ON st.student_id = fa.fee_allocation_student_id
		JOIN families f ON f.family_id = st.student_family_id
		WHERE fa.fee_allocation_id IN ?
		  AND fa.fee_allocation_institute_id = ?
		  AND fa.fee_allocation_status = 'unpaid'
		  AND (f.family_guardian_user_id = ? OR st.student_user_id = ?)`,
		req.AllocationIDs, instituteID, userID, userID).
		Scan(&allocations).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil alokasi")
	}
	if len(allocations) != len(req.AllocationIDs) {
		return helper.JsonErrorWithCode(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Sebagian alokasi tidak valid untuk dibayar")
	}

	var payer struct {
		UserName string `gorm:"column:user_name"`
		Email    string `gorm:"column:email"`
	}
	if err := ctl.DB.Raw(`SELECT user_name, email FROM users WHERE id = ?`, userID).
		Scan(&payer).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data pembayar")
	}

	orderID := service.NewOrderID(instituteID)
	amount := sumNet(allocations)
	token, redirectURL, err := service.GenerateSnapToken(orderID, amount, payer.UserName, payer.Email)
	if err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusBadGateway, "PAYMENT_GATEWAY_ERROR",
			"Gagal membuat sesi pembayaran")
	}

	studentID := allocations[0].FeeAllocationStudentID
	payment := payModel.PaymentModel{
		PaymentInstituteID: instituteID,
		PaymentStudentID:   &studentID,
		PaymentOrderID:     orderID,
		PaymentAmountIDR:   amount,
		PaymentMethod:      payModel.MethodMidtrans,
		PaymentStatus:      payModel.StatusPending,
		PaymentSnapToken:   &token,
		PaymentRedirectURL: &redirectURL,
	}

	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	// checkout ulang: sesi pending lama dibatalkan dan tautannya dilepas,
	// webhook sesi lama tidak boleh lagi dianggap pelunasan
	if prior := priorPaymentIDs(allocations); len(prior) > 0 {
		if err := tx.Model(&payModel.PaymentModel{}).
			Where("payment_id IN ? AND payment_status = ?", prior, payModel.StatusPending).
			Update("payment_status", payModel.StatusCanceled).Error; err != nil {
			tx.Rollback()
			return helper.JsonDBError(c, err, "Gagal membatalkan sesi pembayaran lama")
		}
		if err := tx.Model(&billModel.FeeAllocationModel{}).
			Where("fee_allocation_payment_id IN ? AND fee_allocation_status = 'unpaid'", prior).
			Update("fee_allocation_payment_id", nil).Error; err != nil {
			tx.Rollback()
			return helper.JsonDBError(c, err, "Gagal melepas alokasi sesi lama")
		}
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal mencatat pembayaran")
	}
	// tautkan alokasi ke payment pending supaya webhook tahu yang mana
	if err := tx.Model(&billModel.FeeAllocationModel{}).
		Where("fee_allocation_id IN ?", allocationIDs(allocations)).
		Update("fee_allocation_payment_id", payment.PaymentID).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menautkan alokasi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Sesi pembayaran dibuat", dto.CheckoutResponse{
		PaymentID:        payment.PaymentID,
		PaymentOrderID:   orderID,
		PaymentAmountIDR: amount,
		SnapToken:        token,
		RedirectURL:      redirectURL,
	})
}

// POST /api/public/payments/notification
// Webhook Midtrans. Idempotent: notifikasi ulang untuk payment yang
// sudah paid dibalas 200 tanpa perubahan.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if notif.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id wajib ada")
	}
	if !service.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		return helper.JsonErrorWithCode(c, fiber.StatusUnauthorized, "UNAUTHORIZED",
			"Signature tidak valid")
	}

	var payment payModel.PaymentModel
	if err := ctl.DB.First(&payment, "payment_order_id = ?", notif.OrderID).Error; err != nil {
		return helper.JsonDBError(c, err, "Payment tidak ditemukan")
	}
	// hanya payment pending yang boleh berubah status: notifikasi ulang
	// untuk payment paid, maupun notifikasi telat untuk sesi yang sudah
	// dibatalkan/kedaluwarsa, dibalas 200 tanpa menyentuh alokasi
	if payment.PaymentStatus != payModel.StatusPending {
		return helper.JsonOK(c, "OK", fiber.Map{"payment_status": payment.PaymentStatus})
	}

	status := strings.ToLower(notif.TransactionStatus)
	switch status {
	case "capture", "settlement":
		if strings.EqualFold(notif.FraudStatus, "challenge") {
			return helper.JsonOK(c, "OK", fiber.Map{"payment_status": payment.PaymentStatus})
		}
		now := time.Now()
		tx := ctl.DB.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()
		if err := tx.Model(&payModel.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(map[string]any{
				"payment_status":  payModel.StatusPaid,
				"payment_paid_at": now,
			}).Error; err != nil {
			tx.Rollback()
			return helper.JsonDBError(c, err, "Gagal memperbarui payment")
		}
		if err := tx.Model(&billModel.FeeAllocationModel{}).
			Where("fee_allocation_payment_id = ? AND fee_allocation_status = 'unpaid'", payment.PaymentID).
			Updates(map[string]any{
				"fee_allocation_status":  billModel.AllocationPaid,
				"fee_allocation_paid_at": now,
			}).Error; err != nil {
			tx.Rollback()
			return helper.JsonDBError(c, err, "Gagal menandai alokasi lunas")
		}
		if err := tx.Commit().Error; err != nil {
			return helper.JsonDBError(c, err, "Gagal menyimpan status pembayaran")
		}
		log.Printf("[PAYMENT] ✅ order %s settlement", notif.OrderID)
		return helper.JsonOK(c, "OK", fiber.Map{"payment_status": payModel.StatusPaid})

	case "expire":
		return ctl.markFailed(c, payment, payModel.StatusExpired)
	case "cancel", "deny":
		return ctl.markFailed(c, payment, payModel.StatusCanceled)
	default:
		// pending dan status lain: catat saja
		log.Printf("[PAYMENT] ℹ️ order %s status %s", notif.OrderID, status)
		return helper.JsonOK(c, "OK", fiber.Map{"payment_status": payment.PaymentStatus})
	}
}

// markFailed menutup payment gagal dan melepas tautan alokasinya
// supaya bisa dibayar ulang.
func (ctl *PaymentController) markFailed(c *fiber.Ctx, payment payModel.PaymentModel, status string) error {
	tx := ctl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	if err := tx.Model(&payModel.PaymentModel{}).
		Where("payment_id = ?", payment.PaymentID).
		Update("payment_status", status).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal memperbarui payment")
	}
	if err := tx.Model(&billModel.FeeAllocationModel{}).
		Where("fee_allocation_payment_id = ? AND fee_allocation_status = 'unpaid'", payment.PaymentID).
		Update("fee_allocation_payment_id", nil).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal melepas alokasi")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan status pembayaran")
	}
	log.Printf("[PAYMENT] ⚠️ order %s %s", payment.PaymentOrderID, status)
	return helper.JsonOK(c, "OK", fiber.Map{"payment_status": status})
}

// GET /api/a/:institute_id/payments
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, helper.MaxPerPage)

	q := ctl.DB.Model(&payModel.PaymentModel{}).
		Where("payment_institute_id = ?", instituteID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", strings.ToLower(status))
	}
	if method := strings.TrimSpace(c.Query("method")); method != "" {
		q = q.Where("payment_method = ?", strings.ToLower(method))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung pembayaran")
	}

	var list []payModel.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil daftar pembayaran")
	}

	return helper.JsonList(c, "OK", list,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/:institute_id/payments/:id
func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helperAuth.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var payment payModel.PaymentModel
	if err := ctl.DB.
		First(&payment, "payment_id = ? AND payment_institute_id = ?", id, instituteID).Error; err != nil {
		return helper.JsonDBError(c, err, "Payment tidak ditemukan")
	}

	var allocations []billModel.FeeAllocationModel
	if err := ctl.DB.
		Where("fee_allocation_payment_id = ?", id).
		Find(&allocations).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil alokasi")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"payment":     payment,
		"allocations": allocations,
	})
}
