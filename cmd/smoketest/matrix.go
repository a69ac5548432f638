// file: cmd/smoketest/matrix.go
package main

import "fmt"

/* ===================== MATRIX ===================== */

// Check: satu request yang diuji untuk satu role.
type Check struct {
	Role         string
	Method       string
	Path         string // {iid} diganti institute id
	ExpectStatus int
}

// DefaultMatrix: siapa boleh apa. Admin penuh di /api/a, guru hanya
// endpoint baca non-finansial, wali & siswa hanya portal /api/u.
func DefaultMatrix() []Check {
	return []Check{
		{Role: "admin", Method: "GET", Path: "/api/a/{iid}/students", ExpectStatus: 200},
		{Role: "admin", Method: "GET", Path: "/api/a/{iid}/billings", ExpectStatus: 200},
		{Role: "admin", Method: "GET", Path: "/api/a/{iid}/reports/dashboard", ExpectStatus: 200},

		{Role: "teacher", Method: "GET", Path: "/api/a/{iid}/students", ExpectStatus: 200},
		{Role: "teacher", Method: "GET", Path: "/api/a/{iid}/billings", ExpectStatus: 403},
		{Role: "teacher", Method: "DELETE", Path: "/api/a/{iid}/students/00000000-0000-0000-0000-000000000000", ExpectStatus: 403},

		{Role: "parent", Method: "GET", Path: "/api/u/{iid}/my-children", ExpectStatus: 200},
		{Role: "parent", Method: "GET", Path: "/api/u/{iid}/my-allocations", ExpectStatus: 200},
		{Role: "parent", Method: "GET", Path: "/api/a/{iid}/students", ExpectStatus: 403},

		{Role: "student", Method: "GET", Path: "/api/u/{iid}/my-profile", ExpectStatus: 200},
		{Role: "student", Method: "GET", Path: "/api/a/{iid}/billings", ExpectStatus: 403},
	}
}

/* ===================== EVALUATION ===================== */

// CheckResult: hasil aktual satu check.
type CheckResult struct {
	Check      Check
	GotStatus  int
	Err        error
	SkipReason string
}

// Summary: rekap lulus/gagal.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
	Reports []string
}

func (s Summary) OK() bool { return s.Failed == 0 }

// Evaluate membandingkan hasil aktual dengan ekspektasi matrix.
func Evaluate(results []CheckResult) Summary {
	var s Summary
	for _, r := range results {
		label := fmt.Sprintf("%-8s %-4s %s", r.Check.Role, r.Check.Method, r.Check.Path)
		switch {
		case r.SkipReason != "":
			s.Skipped++
			s.Reports = append(s.Reports, fmt.Sprintf("SKIP %s (%s)", label, r.SkipReason))
		case r.Err != nil:
			s.Failed++
			s.Reports = append(s.Reports, fmt.Sprintf("FAIL %s error: %v", label, r.Err))
		case r.GotStatus != r.Check.ExpectStatus:
			s.Failed++
			s.Reports = append(s.Reports, fmt.Sprintf("FAIL %s expect %d got %d",
				label, r.Check.ExpectStatus, r.GotStatus))
		default:
			s.Passed++
			s.Reports = append(s.Reports, fmt.Sprintf("PASS %s (%d)", label, r.GotStatus))
		}
	}
	return s
}
