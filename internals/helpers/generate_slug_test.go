// file: internals/helpers/generate_slug_test.go
package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sederhana", "Sekolah Harapan", "sekolah-harapan"},
		{"simbol dibuang", "SD Negeri 01 (Pagi)!", "sd-negeri-01-pagi"},
		{"spasi ganda collapse", "a   b", "a-b"},
		{"trim strip ujung", "--Halo--", "halo"},
		{"kosong", "   ", ""},
		{"angka bertahan", "Kelas 7A", "kelas-7a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
