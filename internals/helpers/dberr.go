// file: internals/helpers/dberr.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Vocabulary error_code hasil klasifikasi error DB.
const (
	CodeRecordNotFound      = "RECORD_NOT_FOUND"
	CodeUniqueViolation     = "UNIQUE_CONSTRAINT_VIOLATION"
	CodeForeignKeyViolation = "FOREIGN_KEY_VIOLATION"
	CodeCheckViolation      = "CHECK_CONSTRAINT_VIOLATION"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Kode SQLSTATE Postgres yang dipetakan
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// sqlState mengambil SQLSTATE dari error driver Postgres.
// gorm memakai driver pgx (*pgconn.PgError); *pq.Error tetap
// dikenali untuk koneksi database/sql berbasis lib/pq.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// ClassifyDBError memetakan error gorm/driver ke (status HTTP, error_code).
func ClassifyDBError(err error) (int, string) {
	if err == nil {
		return fiber.StatusOK, ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, CodeRecordNotFound
	}
	switch sqlState(err) {
	case pqUniqueViolation:
		return fiber.StatusConflict, CodeUniqueViolation
	case pqForeignKeyViolation:
		return fiber.StatusConflict, CodeForeignKeyViolation
	case pqCheckViolation:
		return fiber.StatusUnprocessableEntity, CodeCheckViolation
	}
	return fiber.StatusInternalServerError, CodeInternalError
}

// JsonDBError: catch-classify-return untuk error DB (idiom satu baris di controller).
func JsonDBError(c *fiber.Ctx, err error, fallbackMsg string) error {
	status, code := ClassifyDBError(err)
	msg := fallbackMsg
	switch code {
	case CodeRecordNotFound:
		msg = "Data tidak ditemukan"
	case CodeUniqueViolation:
		msg = "Data duplikat (melanggar unique constraint)"
	case CodeForeignKeyViolation:
		msg = "Referensi data tidak valid (melanggar foreign key)"
	}
	return JsonErrorWithCode(c, status, code, msg)
}
