// file: internals/features/academics/subscription/dto/subscription_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	subModel "institutku_backend/internals/features/academics/subscription/model"
)

func TestValidateTarget(t *testing.T) {
	courseID := uuid.New()
	serviceID := uuid.New()

	tests := []struct {
		name    string
		course  *uuid.UUID
		service *uuid.UUID
		wantErr bool
	}{
		{"hanya course", &courseID, nil, false},
		{"hanya service", nil, &serviceID, false},
		{"dua-duanya ditolak", &courseID, &serviceID, true},
		{"kosong ditolak", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CreateSubscriptionRequest{
				SubscriptionStudentID: uuid.New(),
				SubscriptionCourseID:  tt.course,
				SubscriptionServiceID: tt.service,
			}
			err := r.ValidateTarget()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTarget() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSubscriptionToModelDefaults(t *testing.T) {
	courseID := uuid.New()
	r := CreateSubscriptionRequest{
		SubscriptionStudentID: uuid.New(),
		SubscriptionCourseID:  &courseID,
	}
	m := r.ToModel(uuid.New())

	if m.SubscriptionStatus != subModel.StatusActive {
		t.Errorf("status default = %q, want active", m.SubscriptionStatus)
	}
	if m.SubscriptionStartedAt.IsZero() {
		t.Error("SubscriptionStartedAt tidak diisi default")
	}

	// started_at eksplisit dipakai apa adanya
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	r.SubscriptionStartedAt = &start
	m2 := r.ToModel(uuid.New())
	if !m2.SubscriptionStartedAt.Equal(start) {
		t.Errorf("SubscriptionStartedAt = %v, want %v", m2.SubscriptionStartedAt, start)
	}
}
