// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"default", "", 1, 20, 0},
		{"page dan per_page normal", "?page=3&per_page=10", 3, 10, 20},
		{"page nol jadi satu", "?page=0", 1, 20, 0},
		{"page negatif jadi satu", "?page=-5", 1, 20, 0},
		{"page bukan angka jadi satu", "?page=abc", 1, 20, 0},
		{"per_page lewat batas dipangkas", "?per_page=500", 1, 100, 0},
		{"per_page nol jadi default", "?per_page=0", 1, 20, 0},
		{"alias limit dipakai", "?limit=5", 1, 5, 0},
		{"per_page menang atas limit", "?per_page=7&limit=50", 1, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Paging
			app.Get("/x", func(c *fiber.Ctx) error {
				got = ResolvePaging(c, 20, MaxPerPage)
				return c.SendStatus(fiber.StatusOK)
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/x"+tt.query, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			resp.Body.Close()

			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", got.PerPage, tt.wantPerPage)
			}
			if got.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", got.Offset, tt.wantOffset)
			}
			if got.Limit != got.PerPage {
				t.Errorf("Limit = %d, want sama dengan PerPage %d", got.Limit, got.PerPage)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"lebih satu jadi dua halaman", 21, 1, 20, 2, true, false},
		{"halaman tengah", 100, 3, 20, 5, true, true},
		{"halaman terakhir", 100, 5, 20, 5, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}

func TestJsonOKEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		c.Locals("reqid", "req-123")
		return JsonOK(c, "halo", fiber.Map{"x": 1})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["success"] != true {
		t.Errorf("success = %v, want true", out["success"])
	}
	if out["message"] != "halo" {
		t.Errorf("message = %v, want halo", out["message"])
	}
	meta, ok := out["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta hilang dari envelope: %v", out)
	}
	if meta["request_id"] != "req-123" {
		t.Errorf("meta.request_id = %v, want req-123", meta["request_id"])
	}
	if meta["timestamp"] == "" {
		t.Error("meta.timestamp kosong")
	}
}

func TestJsonErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"404", fiber.StatusNotFound, "RECORD_NOT_FOUND"},
		{"422", fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"409", fiber.StatusConflict, "CONFLICT"},
		{"500", fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{"403", fiber.StatusForbidden, "FORBIDDEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/err", func(c *fiber.Ctx) error {
				return JsonError(c, tt.status, "gagal")
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var out ErrorResponse
			body, _ := io.ReadAll(resp.Body)
			if err := json.Unmarshal(body, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.Success {
				t.Error("success = true, want false")
			}
			if out.ErrorCode != tt.wantCode {
				t.Errorf("error_code = %q, want %q", out.ErrorCode, tt.wantCode)
			}
		})
	}
}

func TestJsonValidationErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Post("/v", func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{
			"email": {"Email tidak valid"},
		})
	})
	resp, err := app.Test(httptest.NewRequest("POST", "/v", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var out ErrorResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ErrorCode != "VALIDATION_ERROR" {
		t.Errorf("error_code = %q, want VALIDATION_ERROR", out.ErrorCode)
	}
	if len(out.Errors["email"]) != 1 {
		t.Errorf("errors.email = %v, want satu pesan", out.Errors["email"])
	}
}
