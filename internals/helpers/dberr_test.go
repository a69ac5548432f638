// file: internals/helpers/dberr_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func TestClassifyDBError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil", nil, fiber.StatusOK, ""},
		{"record not found", gorm.ErrRecordNotFound, fiber.StatusNotFound, CodeRecordNotFound},
		// gorm/driver/postgres berbasis pgx: error constraint muncul sebagai *pgconn.PgError
		{"pgconn unique violation", &pgconn.PgError{Code: "23505"}, fiber.StatusConflict, CodeUniqueViolation},
		{"pgconn foreign key violation", &pgconn.PgError{Code: "23503"}, fiber.StatusConflict, CodeForeignKeyViolation},
		{"pgconn check violation", &pgconn.PgError{Code: "23514"}, fiber.StatusUnprocessableEntity, CodeCheckViolation},
		{"pgconn lain jadi internal", &pgconn.PgError{Code: "42601"}, fiber.StatusInternalServerError, CodeInternalError},
		{"pq unique violation", &pq.Error{Code: "23505"}, fiber.StatusConflict, CodeUniqueViolation},
		{"pq foreign key violation", &pq.Error{Code: "23503"}, fiber.StatusConflict, CodeForeignKeyViolation},
		{"pq check violation", &pq.Error{Code: "23514"}, fiber.StatusUnprocessableEntity, CodeCheckViolation},
		{"error generic jadi internal", errors.New("boom"), fiber.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := ClassifyDBError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestClassifyDBErrorWrapped(t *testing.T) {
	// error driver yang dibungkus tetap terdeteksi lewat errors.As
	wrapped := errors.Join(errors.New("insert students"), &pgconn.PgError{Code: "23503"})
	status, code := ClassifyDBError(wrapped)
	if status != fiber.StatusConflict || code != CodeForeignKeyViolation {
		t.Errorf("got (%d, %q), want (409, %q)", status, code, CodeForeignKeyViolation)
	}
}
