// file: internals/modules/registry.go
package modules

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// ModuleConfig: deklarasi satu modul fitur.
type ModuleConfig struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	DependsOn []string `json:"depends_on,omitempty"`
	// Core: selalu aktif, tidak bisa dimatikan lewat flag
	Core bool `json:"core"`
}

// ModuleStatus: status runtime sebuah modul.
type ModuleStatus struct {
	Config  ModuleConfig `json:"config"`
	Enabled bool         `json:"enabled"`
}

// FlagLookup menentukan nilai feature flag sebuah modul.
// Default implementasi membaca ENV FEATURE_<NAME> (default: aktif).
type FlagLookup func(name string) bool

// Registry: katalog modul in-memory. Registrasi terjadi sekali saat boot;
// dependents disimpan sebagai adjacency list.
type Registry struct {
	mu         sync.RWMutex
	modules    map[string]*ModuleStatus
	dependents map[string][]string // name -> daftar modul yang bergantung padanya
	lookup     FlagLookup
}

func NewRegistry(lookup FlagLookup) *Registry {
	return &Registry{
		modules:    make(map[string]*ModuleStatus),
		dependents: make(map[string][]string),
		lookup:     lookup,
	}
}

// Register mendaftarkan modul; enabled dihitung SEKALI di sini dari flag.
// Dependency harus sudah terdaftar (katalog diurutkan topologis secara manual).
func (r *Registry) Register(cfg ModuleConfig) error {
	name := normalize(cfg.Name)
	if name == "" {
		return fmt.Errorf("modules: nama modul kosong")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("modules: %q sudah terdaftar", name)
	}

	enabled := cfg.Core || r.lookup == nil || r.lookup(name)
	for _, dep := range cfg.DependsOn {
		dep = normalize(dep)
		st, ok := r.modules[dep]
		if !ok {
			return fmt.Errorf("modules: %q bergantung pada %q yang belum terdaftar", name, dep)
		}
		// modul tidak bisa aktif kalau dependency-nya mati
		if !st.Enabled {
			enabled = false
		}
		r.dependents[dep] = append(r.dependents[dep], name)
	}

	r.modules[name] = &ModuleStatus{Config: cfg, Enabled: enabled}
	return nil
}

// Get mengembalikan status modul.
func (r *Registry) Get(name string) (ModuleStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.modules[normalize(name)]
	if !ok {
		return ModuleStatus{}, false
	}
	return *st, true
}

// IsEnabled: modul terdaftar dan aktif.
func (r *Registry) IsEnabled(name string) bool {
	st, ok := r.Get(name)
	return ok && st.Enabled
}

// List mengembalikan semua modul, urut nama (stabil untuk response API).
func (r *Registry) List() []ModuleStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ModuleStatus, 0, len(r.modules))
	for _, st := range r.modules {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Config.Name < out[j].Config.Name })
	return out
}

// GetDependents: modul lain yang mencantumkan name sebagai dependency.
func (r *Registry) GetDependents(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deps := r.dependents[normalize(name)]
	out := make([]string, len(deps))
	copy(out, deps)
	sort.Strings(out)
	return out
}

// CanDisable: false jika modul core, atau masih ada modul AKTIF yang
// bergantung padanya.
func (r *Registry) CanDisable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.modules[normalize(name)]
	if !ok || st.Config.Core {
		return false
	}
	for _, dep := range r.dependents[normalize(name)] {
		if d, ok := r.modules[dep]; ok && d.Enabled {
			return false
		}
	}
	return true
}

// Disable mematikan modul (menghormati CanDisable).
func (r *Registry) Disable(name string) error {
	if !r.CanDisable(name) {
		if deps := r.GetDependents(name); len(deps) > 0 {
			return fmt.Errorf("modules: %q masih dipakai oleh %s", name, strings.Join(deps, ", "))
		}
		return fmt.Errorf("modules: %q tidak bisa dimatikan", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.modules[normalize(name)]
	if !ok {
		return fmt.Errorf("modules: %q tidak terdaftar", name)
	}
	st.Enabled = false
	return nil
}

// Enable menyalakan modul; gagal jika ada dependency yang mati.
func (r *Registry) Enable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.modules[normalize(name)]
	if !ok {
		return fmt.Errorf("modules: %q tidak terdaftar", name)
	}
	for _, dep := range st.Config.DependsOn {
		if d, ok := r.modules[normalize(dep)]; !ok || !d.Enabled {
			return fmt.Errorf("modules: dependency %q belum aktif", dep)
		}
	}
	st.Enabled = true
	return nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

/* ==========================
   Default registry (dipakai route setup & API owner)
========================== */

var defaultRegistry *Registry

// Boot membangun default registry dari katalog + flag ENV. Dipanggil sekali
// dari main setelah config dimuat.
func Boot() {
	reg := NewRegistry(EnvFlagLookup)
	for _, cfg := range Catalog {
		if err := reg.Register(cfg); err != nil {
			log.Fatalf("❌ Registrasi modul gagal: %v", err)
		}
	}
	defaultRegistry = reg

	for _, st := range reg.List() {
		state := "ON"
		if !st.Enabled {
			state = "OFF"
		}
		log.Printf("[MODULE] %-14s %s", st.Config.Name, state)
	}
}

// Default mengembalikan registry global (Boot dipanggil lebih dulu;
// fallback untuk test/tool yang tidak memanggil Boot).
func Default() *Registry {
	if defaultRegistry == nil {
		Boot()
	}
	return defaultRegistry
}
