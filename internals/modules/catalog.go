// file: internals/modules/catalog.go
package modules

import (
	"strings"

	"institutku_backend/internals/configs"
)

// Nama modul (dipakai route setup & per-tenant feature JSON)
const (
	ModUsers         = "users"
	ModInstitutes    = "institutes"
	ModFamilies      = "families"
	ModStudents      = "students"
	ModCourses       = "courses"
	ModServices      = "services"
	ModSubscriptions = "subscriptions"
	ModBilling       = "billing"
	ModPayments      = "payments"
	ModReports       = "reports"
)

// Catalog: katalog deklaratif seluruh modul fitur. Urutan penting:
// dependency harus terdaftar lebih dulu.
var Catalog = []ModuleConfig{
	{Name: ModUsers, Label: "Users & Auth", Core: true},
	{Name: ModInstitutes, Label: "Institutes", Core: true},
	{Name: ModFamilies, Label: "Families", DependsOn: []string{ModInstitutes}},
	{Name: ModStudents, Label: "Students", DependsOn: []string{ModInstitutes, ModFamilies}},
	{Name: ModCourses, Label: "Courses", DependsOn: []string{ModInstitutes}},
	{Name: ModServices, Label: "Services", DependsOn: []string{ModInstitutes}},
	{Name: ModSubscriptions, Label: "Subscriptions", DependsOn: []string{ModStudents, ModCourses, ModServices}},
	{Name: ModBilling, Label: "Billing & Fees", DependsOn: []string{ModSubscriptions}},
	{Name: ModPayments, Label: "Payments", DependsOn: []string{ModBilling}},
	{Name: ModReports, Label: "Reports", DependsOn: []string{ModBilling, ModPayments}},
}

// IsKnownModule: validasi nama modul (dipakai patch feature per-tenant).
func IsKnownModule(name string) bool {
	name = normalize(name)
	for _, cfg := range Catalog {
		if cfg.Name == name {
			return true
		}
	}
	return false
}

// EnvFlagLookup membaca FEATURE_<NAME> dari ENV; default aktif.
func EnvFlagLookup(name string) bool {
	key := "FEATURE_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return configs.GetEnvBool(key, true)
}
