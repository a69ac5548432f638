// file: internals/middlewares/recovery_middleware_test.go
package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Defer rollback di controller harus melempar ulang panic-nya supaya
// recovery middleware yang menjawab 500, bukan handler yang diam-diam
// mengembalikan 200 kosong.
func TestRecoveryMiddlewarePanicSetelahRollback(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())

	rolledBack := false
	app.Get("/boom", func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				rolledBack = true
				panic(r)
			}
		}()
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusInternalServerError)
	}
	if !rolledBack {
		t.Error("defer rollback tidak sempat jalan")
	}
}

func TestRecoveryMiddlewareRequestNormal(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
