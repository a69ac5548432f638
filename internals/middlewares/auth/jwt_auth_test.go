package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "institutku_backend/internals/helpers/auth"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newAuthApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthJWT(opts), func(c *fiber.Ctx) error {
		uid, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": uid.String()})
	})
	return app
}

func TestAuthJWTValidBearer(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{Secret: testSecret})
	token := signToken(t, jwt.MapClaims{
		"id":   "7e57ed00-0000-4000-8000-000000000001",
		"role": "user",
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, mau 200", resp.StatusCode)
	}
}

func TestAuthJWTMissingToken(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{Secret: testSecret})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, mau 401", resp.StatusCode)
	}
}

func TestAuthJWTWrongSecret(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{Secret: testSecret})

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "7e57ed00-0000-4000-8000-000000000001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	bad, _ := tok.SignedString([]byte("secret-lain"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+bad)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, mau 401", resp.StatusCode)
	}
}

func TestAuthJWTExpiredToken(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{Secret: testSecret})
	token := signToken(t, jwt.MapClaims{
		"id":  "7e57ed00-0000-4000-8000-000000000001",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, mau 401", resp.StatusCode)
	}
}

func TestAuthJWTBlacklistChecker(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(string) (bool, error) { return true, nil },
	})
	token := signToken(t, jwt.MapClaims{"id": "7e57ed00-0000-4000-8000-000000000001"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, mau 401 (token revoked)", resp.StatusCode)
	}
}

func TestAuthJWTBlacklistCheckerError(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(string) (bool, error) { return false, errors.New("db down") },
	})
	token := signToken(t, jwt.MapClaims{"id": "7e57ed00-0000-4000-8000-000000000001"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, mau 503 (blacklist store error harus menolak)", resp.StatusCode)
	}
}

func TestAuthJWTCookieFallback(t *testing.T) {
	app := newAuthApp(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true})
	token := signToken(t, jwt.MapClaims{"id": "7e57ed00-0000-4000-8000-000000000001"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, mau 200 (cookie fallback)", resp.StatusCode)
	}
}

func TestAuthJWTHydratesInstituteRoles(t *testing.T) {
	app := fiber.New()
	app.Get("/claims", AuthJWT(AuthJWTOpts{Secret: testSecret}), func(c *fiber.Ctx) error {
		rc, ok := helperAuth.GetRolesClaim(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "roles_claim hilang")
		}
		return c.JSON(rc)
	})

	token := signToken(t, jwt.MapClaims{
		"id":           "7e57ed00-0000-4000-8000-000000000001",
		"roles_global": []string{"owner"},
		"institute_roles": []map[string]any{
			{"institute_id": "11111111-1111-4111-8111-111111111111", "roles": []string{"admin", "teacher"}},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, mau 200", resp.StatusCode)
	}
}
