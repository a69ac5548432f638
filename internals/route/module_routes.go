// file: internals/route/module_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	helper "institutku_backend/internals/helpers"
	"institutku_backend/internals/modules"
)

// ModuleOwnerRoutes: inspeksi & kontrol registry modul global.
// Base: /api/o
func ModuleOwnerRoutes(owner fiber.Router) {
	owner.Get("/modules", listModules)
	owner.Get("/modules/:name/dependents", moduleDependents)
	owner.Post("/modules/:name/disable", disableModule)
	owner.Post("/modules/:name/enable", enableModule)
}

func listModules(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", modules.Default().List())
}

func moduleDependents(c *fiber.Ctx) error {
	name := c.Params("name")
	if !modules.IsKnownModule(name) {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
			"Modul tidak dikenal")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"module":      name,
		"dependents":  modules.Default().GetDependents(name),
		"can_disable": modules.Default().CanDisable(name),
	})
}

func disableModule(c *fiber.Ctx) error {
	name := c.Params("name")
	if !modules.IsKnownModule(name) {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
			"Modul tidak dikenal")
	}
	if err := modules.Default().Disable(name); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT", err.Error())
	}
	return helper.JsonUpdated(c, "Modul dinonaktifkan", fiber.Map{"module": name, "enabled": false})
}

func enableModule(c *fiber.Ctx) error {
	name := c.Params("name")
	if !modules.IsKnownModule(name) {
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, helper.CodeRecordNotFound,
			"Modul tidak dikenal")
	}
	if err := modules.Default().Enable(name); err != nil {
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONFLICT", err.Error())
	}
	return helper.JsonUpdated(c, "Modul diaktifkan", fiber.Map{"module": name, "enabled": true})
}
