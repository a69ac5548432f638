// file: internals/features/students/student/dto/student_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	sModel "institutku_backend/internals/features/students/student/model"
)

func strPtr(s string) *string { return &s }

func TestCreateStudentRequestToModel(t *testing.T) {
	instituteID := uuid.New()
	familyID := uuid.New()
	gender := "female"

	req := CreateStudentRequest{
		StudentFamilyID: familyID,
		StudentCode:     "S-001",
		StudentFullName: "Siti Aminah",
		StudentGender:   &gender,
	}
	m := req.ToModel(instituteID)

	if m.StudentInstituteID != instituteID {
		t.Errorf("StudentInstituteID = %v, want %v", m.StudentInstituteID, instituteID)
	}
	if m.StudentFamilyID != familyID {
		t.Errorf("StudentFamilyID = %v, want %v", m.StudentFamilyID, familyID)
	}
	if m.StudentCode != "S-001" || m.StudentFullName != "Siti Aminah" {
		t.Errorf("identitas tidak terbawa: %+v", m)
	}
	if m.StudentGender == nil || *m.StudentGender != "female" {
		t.Errorf("StudentGender = %v, want female", m.StudentGender)
	}
	if m.StudentUserID != nil {
		t.Errorf("StudentUserID = %v, want nil", m.StudentUserID)
	}
}

func TestUpdateStudentRequestApplyToModelPartial(t *testing.T) {
	origFamily := uuid.New()
	m := sModel.StudentModel{
		StudentFamilyID: origFamily,
		StudentCode:     "S-001",
		StudentFullName: "Siti Aminah",
		StudentIsActive: true,
	}

	// hanya nama yang dikirim; field lain tidak boleh berubah
	req := UpdateStudentRequest{
		StudentFullName: strPtr("Siti A. Rahma"),
	}
	req.ApplyToModel(&m)

	if m.StudentFullName != "Siti A. Rahma" {
		t.Errorf("StudentFullName = %q, want Siti A. Rahma", m.StudentFullName)
	}
	if m.StudentCode != "S-001" {
		t.Errorf("StudentCode berubah jadi %q", m.StudentCode)
	}
	if m.StudentFamilyID != origFamily {
		t.Errorf("StudentFamilyID berubah jadi %v", m.StudentFamilyID)
	}
	if !m.StudentIsActive {
		t.Error("StudentIsActive ikut berubah")
	}

	// nonaktifkan eksplisit
	inactive := false
	req2 := UpdateStudentRequest{StudentIsActive: &inactive}
	req2.ApplyToModel(&m)
	if m.StudentIsActive {
		t.Error("StudentIsActive masih true setelah di-set false")
	}
}
