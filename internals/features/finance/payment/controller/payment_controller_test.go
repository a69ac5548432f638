// file: internals/features/finance/payment/controller/payment_controller_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"

	billModel "institutku_backend/internals/features/finance/billing/model"
)

func allocWithPayment(paymentID *uuid.UUID, net int64) billModel.FeeAllocationModel {
	return billModel.FeeAllocationModel{
		FeeAllocationID:        uuid.New(),
		FeeAllocationNetIDR:    net,
		FeeAllocationPaymentID: paymentID,
	}
}

func TestPriorPaymentIDs(t *testing.T) {
	sesiA := uuid.New()
	sesiB := uuid.New()

	tests := []struct {
		name        string
		allocations []billModel.FeeAllocationModel
		want        []uuid.UUID
	}{
		{
			"semua belum pernah checkout",
			[]billModel.FeeAllocationModel{
				allocWithPayment(nil, 100_000),
				allocWithPayment(nil, 50_000),
			},
			nil,
		},
		{
			// checkout ulang: alokasi masih menempel ke sesi pending lama
			"sesi lama terkumpul unik",
			[]billModel.FeeAllocationModel{
				allocWithPayment(&sesiA, 100_000),
				allocWithPayment(&sesiA, 50_000),
				allocWithPayment(nil, 25_000),
				allocWithPayment(&sesiB, 75_000),
			},
			[]uuid.UUID{sesiA, sesiB},
		},
		{"kosong", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := priorPaymentIDs(tt.allocations)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ids[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSumNet(t *testing.T) {
	allocations := []billModel.FeeAllocationModel{
		allocWithPayment(nil, 150_000),
		allocWithPayment(nil, 75_000),
		allocWithPayment(nil, 0),
	}
	if got := sumNet(allocations); got != 225_000 {
		t.Errorf("sumNet = %d, want 225000", got)
	}
	if got := sumNet(nil); got != 0 {
		t.Errorf("sumNet(nil) = %d, want 0", got)
	}
}

func TestAllocationIDs(t *testing.T) {
	a := allocWithPayment(nil, 10)
	b := allocWithPayment(nil, 20)
	got := allocationIDs([]billModel.FeeAllocationModel{a, b})
	if len(got) != 2 || got[0] != a.FeeAllocationID || got[1] != b.FeeAllocationID {
		t.Errorf("allocationIDs = %v, want [%s %s]", got, a.FeeAllocationID, b.FeeAllocationID)
	}
}
