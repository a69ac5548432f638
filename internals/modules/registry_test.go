package modules

import (
	"testing"
)

func buildRegistry(t *testing.T, lookup FlagLookup) *Registry {
	t.Helper()
	reg := NewRegistry(lookup)
	for _, cfg := range Catalog {
		if err := reg.Register(cfg); err != nil {
			t.Fatalf("register %s: %v", cfg.Name, err)
		}
	}
	return reg
}

func TestRegisterAllEnabledByDefault(t *testing.T) {
	reg := buildRegistry(t, func(string) bool { return true })

	for _, st := range reg.List() {
		if !st.Enabled {
			t.Errorf("modul %s seharusnya aktif", st.Config.Name)
		}
	}
	if got := len(reg.List()); got != len(Catalog) {
		t.Fatalf("jumlah modul = %d, mau %d", got, len(Catalog))
	}
}

func TestFlagOffDisablesModuleAndDependents(t *testing.T) {
	// billing dimatikan lewat flag; payments & reports ikut mati
	reg := buildRegistry(t, func(name string) bool { return name != ModBilling })

	for _, name := range []string{ModBilling, ModPayments, ModReports} {
		if reg.IsEnabled(name) {
			t.Errorf("modul %s seharusnya mati (billing off)", name)
		}
	}
	for _, name := range []string{ModStudents, ModCourses, ModSubscriptions} {
		if !reg.IsEnabled(name) {
			t.Errorf("modul %s seharusnya tetap aktif", name)
		}
	}
}

func TestCoreModuleIgnoresFlag(t *testing.T) {
	reg := buildRegistry(t, func(string) bool { return false })

	if !reg.IsEnabled(ModUsers) || !reg.IsEnabled(ModInstitutes) {
		t.Fatal("modul core harus selalu aktif meski flag off")
	}
	if reg.CanDisable(ModInstitutes) {
		t.Error("modul core tidak boleh bisa dimatikan")
	}
}

func TestGetDependents(t *testing.T) {
	reg := buildRegistry(t, nil)

	deps := reg.GetDependents(ModBilling)
	if len(deps) != 2 || deps[0] != ModPayments || deps[1] != ModReports {
		t.Fatalf("dependents billing = %v, mau [payments reports]", deps)
	}
	if got := reg.GetDependents(ModReports); len(got) != 0 {
		t.Fatalf("reports tidak punya dependents, dapat %v", got)
	}
}

func TestCanDisableRespectsEnabledDependents(t *testing.T) {
	reg := buildRegistry(t, nil)

	if reg.CanDisable(ModBilling) {
		t.Fatal("billing tidak boleh dimatikan selagi payments/reports aktif")
	}
	if err := reg.Disable(ModBilling); err == nil {
		t.Fatal("Disable(billing) harus gagal")
	}

	// matikan daun dulu, baru billing bisa
	if err := reg.Disable(ModReports); err != nil {
		t.Fatalf("disable reports: %v", err)
	}
	if err := reg.Disable(ModPayments); err != nil {
		t.Fatalf("disable payments: %v", err)
	}
	if !reg.CanDisable(ModBilling) {
		t.Fatal("billing seharusnya bisa dimatikan setelah dependents mati")
	}
	if err := reg.Disable(ModBilling); err != nil {
		t.Fatalf("disable billing: %v", err)
	}
}

func TestEnableRequiresDependencies(t *testing.T) {
	reg := buildRegistry(t, func(name string) bool { return name != ModBilling })

	// payments mati karena billing mati; enable payments harus gagal
	if err := reg.Enable(ModPayments); err == nil {
		t.Fatal("Enable(payments) harus gagal selama billing mati")
	}
	if err := reg.Enable(ModBilling); err != nil {
		t.Fatalf("enable billing: %v", err)
	}
	if err := reg.Enable(ModPayments); err != nil {
		t.Fatalf("enable payments setelah billing aktif: %v", err)
	}
}

func TestRegisterUnknownDependencyFails(t *testing.T) {
	reg := NewRegistry(nil)
	err := reg.Register(ModuleConfig{Name: "x", DependsOn: []string{"belum-ada"}})
	if err == nil {
		t.Fatal("register dengan dependency tak dikenal harus gagal")
	}
}

func TestIsKnownModule(t *testing.T) {
	if !IsKnownModule("Billing") {
		t.Error("billing harus dikenal (case-insensitive)")
	}
	if IsKnownModule("tidak-ada") {
		t.Error("modul asing tidak boleh dikenal")
	}
}
