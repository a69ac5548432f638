// file: cmd/smoketest/matrix_test.go
package main

import (
	"errors"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	check := Check{Role: "admin", Method: "GET", Path: "/api/a/x/students", ExpectStatus: 200}

	results := []CheckResult{
		{Check: check, GotStatus: 200},
		{Check: check, GotStatus: 403},
		{Check: check, Err: errors.New("connection refused")},
		{Check: check, SkipReason: "tanpa kredensial"},
	}
	s := Evaluate(results)

	if s.Passed != 1 {
		t.Errorf("Passed = %d, want 1", s.Passed)
	}
	if s.Failed != 2 {
		t.Errorf("Failed = %d, want 2", s.Failed)
	}
	if s.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", s.Skipped)
	}
	if s.OK() {
		t.Error("OK() = true padahal ada kegagalan")
	}
	if len(s.Reports) != 4 {
		t.Fatalf("Reports = %d baris, want 4", len(s.Reports))
	}
	if !strings.HasPrefix(s.Reports[0], "PASS") {
		t.Errorf("report[0] = %q, want PASS", s.Reports[0])
	}
	if !strings.Contains(s.Reports[1], "expect 200 got 403") {
		t.Errorf("report[1] = %q", s.Reports[1])
	}
}

func TestEvaluateAllPass(t *testing.T) {
	var results []CheckResult
	for _, check := range DefaultMatrix() {
		results = append(results, CheckResult{Check: check, GotStatus: check.ExpectStatus})
	}
	s := Evaluate(results)
	if !s.OK() {
		t.Errorf("semua sesuai ekspektasi tapi OK() = false: %+v", s)
	}
	if s.Passed != len(DefaultMatrix()) {
		t.Errorf("Passed = %d, want %d", s.Passed, len(DefaultMatrix()))
	}
}

func TestDefaultMatrixRoles(t *testing.T) {
	seen := map[string]bool{}
	for _, check := range DefaultMatrix() {
		seen[check.Role] = true
		if check.ExpectStatus == 0 {
			t.Errorf("check %s %s tanpa ekspektasi status", check.Method, check.Path)
		}
		if !strings.Contains(check.Path, "{iid}") {
			t.Errorf("path %s tidak memakai placeholder {iid}", check.Path)
		}
	}
	for _, role := range []string{"admin", "teacher", "parent", "student"} {
		if !seen[role] {
			t.Errorf("matrix tidak mencakup role %s", role)
		}
	}
}
