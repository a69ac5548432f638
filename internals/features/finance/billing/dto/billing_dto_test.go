// file: internals/features/finance/billing/dto/billing_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestComputeAllocationAmounts(t *testing.T) {
	tests := []struct {
		name         string
		gross        int64
		percent      int16
		wantDiscount int64
		wantNet      int64
	}{
		{"tanpa diskon", 500_000, 0, 0, 500_000},
		{"sepuluh persen", 500_000, 10, 50_000, 450_000},
		{"pembulatan ke bawah", 333_333, 10, 33_333, 300_000},
		{"diskon penuh", 500_000, 100, 500_000, 0},
		{"persen lewat batas dipangkas", 500_000, 120, 500_000, 0},
		{"persen negatif jadi nol", 500_000, -5, 0, 500_000},
		{"gross nol", 0, 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, net := ComputeAllocationAmounts(tt.gross, tt.percent)
			if discount != tt.wantDiscount {
				t.Errorf("discount = %d, want %d", discount, tt.wantDiscount)
			}
			if net != tt.wantNet {
				t.Errorf("net = %d, want %d", net, tt.wantNet)
			}
			// invariant CHECK di DB harus selalu terpenuhi
			if net != tt.gross-discount && tt.gross >= 0 {
				t.Errorf("net %d != gross %d - discount %d", net, tt.gross, discount)
			}
		})
	}
}

func TestGenerateBillingRequestToModel(t *testing.T) {
	instituteID := uuid.New()

	// tanpa judul: pakai default Tagihan MM/YYYY
	r := GenerateBillingRequest{BillingMonth: 3, BillingYear: 2026}
	m := r.ToModel(instituteID)
	if m.BillingTitle != "Tagihan 03/2026" {
		t.Errorf("judul default = %q, want Tagihan 03/2026", m.BillingTitle)
	}
	if m.BillingInstituteID != instituteID {
		t.Errorf("institute id tidak terbawa")
	}
	if m.BillingMonth != 3 || m.BillingYear != 2026 {
		t.Errorf("periode tidak terbawa: %+v", m)
	}

	// judul eksplisit dipertahankan
	r.BillingTitle = "SPP Maret"
	if got := r.ToModel(instituteID).BillingTitle; got != "SPP Maret" {
		t.Errorf("judul = %q, want SPP Maret", got)
	}
}
