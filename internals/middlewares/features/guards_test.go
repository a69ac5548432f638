package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"institutku_backend/internals/constants"
	helperAuth "institutku_backend/internals/helpers/auth"
	"institutku_backend/internals/modules"
)

var testInstituteID = uuid.MustParse("11111111-1111-4111-8111-111111111111")

// stub auth: isi locals seperti yang dilakukan AuthJWT
func stubAuth(userID string, isOwner bool, rc helperAuth.RolesClaim) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, userID)
		c.Locals(helperAuth.LocIsOwner, isOwner)
		c.Locals(helperAuth.LocInstituteRoles, rc)
		return c.Next()
	}
}

func okHandler(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }

func memberClaim(roles ...string) helperAuth.RolesClaim {
	return helperAuth.RolesClaim{
		InstituteRoles: []helperAuth.InstituteRolesEntry{
			{InstituteID: testInstituteID, Roles: roles},
		},
	}
}

func doGet(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestUseInstituteScopeMember(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", false, memberClaim(constants.RoleAdmin, constants.RoleTeacher)),
		UseInstituteScope(),
		func(c *fiber.Ctx) error {
			// admin punya prioritas lebih tinggi dari teacher
			if got := helperAuth.GetActiveRole(c); got != constants.RoleAdmin {
				t.Errorf("active_role = %q, mau admin", got)
			}
			return okHandler(c)
		})

	if code := doGet(t, app, "/api/a/"+testInstituteID.String()+"/ping"); code != http.StatusOK {
		t.Fatalf("status = %d, mau 200", code)
	}
}

func TestUseInstituteScopeNonMember(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", false, helperAuth.RolesClaim{}),
		UseInstituteScope(), okHandler)

	if code := doGet(t, app, "/api/a/"+testInstituteID.String()+"/ping"); code != http.StatusForbidden {
		t.Fatalf("status = %d, mau 403 (bukan anggota)", code)
	}
}

func TestUseInstituteScopeRequestedRoleNotOwned(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", false, memberClaim(constants.RoleTeacher)),
		UseInstituteScope(), okHandler)

	path := "/api/a/" + testInstituteID.String() + "/ping?role=admin"
	if code := doGet(t, app, path); code != http.StatusForbidden {
		t.Fatalf("status = %d, mau 403 (role tidak dimiliki)", code)
	}
}

func TestUseInstituteScopeInvalidID(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", false, memberClaim(constants.RoleAdmin)),
		UseInstituteScope(), okHandler)

	if code := doGet(t, app, "/api/a/bukan-uuid/ping"); code != http.StatusBadRequest {
		t.Fatalf("status = %d, mau 400 (uuid invalid)", code)
	}
}

func TestUseInstituteScopeOwnerBypass(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", true, helperAuth.RolesClaim{}),
		UseInstituteScope(), IsInstituteAdmin(), okHandler)

	if code := doGet(t, app, "/api/a/"+testInstituteID.String()+"/ping"); code != http.StatusOK {
		t.Fatalf("status = %d, mau 200 (owner bypass)", code)
	}
}

func TestIsInstituteAdminRejectsTeacher(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", false, memberClaim(constants.RoleTeacher)),
		UseInstituteScope(), IsInstituteAdmin(), okHandler)

	if code := doGet(t, app, "/api/a/"+testInstituteID.String()+"/ping"); code != http.StatusForbidden {
		t.Fatalf("status = %d, mau 403 (teacher bukan admin)", code)
	}
}

func TestIsInstituteStaffAllowsTeacher(t *testing.T) {
	app := fiber.New()
	app.Get("/api/a/:institute_id/ping",
		stubAuth("u1", false, memberClaim(constants.RoleTeacher)),
		UseInstituteScope(), IsInstituteStaff(), okHandler)

	if code := doGet(t, app, "/api/a/"+testInstituteID.String()+"/ping"); code != http.StatusOK {
		t.Fatalf("status = %d, mau 200 (teacher adalah staff)", code)
	}
}

func TestIsOwnerGlobal(t *testing.T) {
	app := fiber.New()
	app.Get("/api/o/ping",
		stubAuth("u1", false, helperAuth.RolesClaim{RolesGlobal: []string{"owner"}}),
		IsOwnerGlobal(), okHandler)
	app.Get("/api/o/deny",
		stubAuth("u1", false, memberClaim(constants.RoleAdmin)),
		IsOwnerGlobal(), okHandler)

	if code := doGet(t, app, "/api/o/ping"); code != http.StatusOK {
		t.Fatalf("status = %d, mau 200 (roles_global owner)", code)
	}
	if code := doGet(t, app, "/api/o/deny"); code != http.StatusForbidden {
		t.Fatalf("status = %d, mau 403 (bukan owner)", code)
	}
}

func TestRequireModule(t *testing.T) {
	app := fiber.New()
	app.Get("/on", RequireModule(modules.ModStudents), okHandler)
	app.Get("/off", RequireModule("modul-tidak-terdaftar"), okHandler)

	if code := doGet(t, app, "/on"); code != http.StatusOK {
		t.Fatalf("status = %d, mau 200 (modul aktif default)", code)
	}
	if code := doGet(t, app, "/off"); code != http.StatusForbidden {
		t.Fatalf("status = %d, mau 403 (modul tak dikenal = mati)", code)
	}
}
