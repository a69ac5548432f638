// file: cmd/loadgen/config_test.go
package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestBuildArtilleryDoc(t *testing.T) {
	doc := BuildArtilleryDoc("http://localhost:3000", 25, 60, "")

	if doc.Config.Target != "http://localhost:3000" {
		t.Errorf("target = %q", doc.Config.Target)
	}
	if len(doc.Config.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(doc.Config.Phases))
	}
	if doc.Config.Phases[0].ArrivalRate != 25 || doc.Config.Phases[0].Duration != 60 {
		t.Errorf("phase = %+v", doc.Config.Phases[0])
	}
	if len(doc.Scenarios) != len(hotEndpoints) {
		t.Errorf("scenarios = %d, want %d", len(doc.Scenarios), len(hotEndpoints))
	}
	if doc.Config.Defaults.Headers != nil {
		t.Errorf("tanpa token seharusnya tanpa default headers: %v", doc.Config.Defaults.Headers)
	}

	withToken := BuildArtilleryDoc("http://x", 1, 1, "abc")
	if got := withToken.Config.Defaults.Headers["Authorization"]; got != "Bearer abc" {
		t.Errorf("Authorization = %q, want Bearer abc", got)
	}
}

func TestMarshalArtilleryYAMLShape(t *testing.T) {
	doc := BuildArtilleryDoc("http://localhost:3000", 10, 30, "tok")
	data, err := MarshalArtilleryYAML(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(data)
	for _, want := range []string{"target:", "phases:", "arrivalRate: 10", "scenarios:", "/health"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML tidak memuat %q:\n%s", want, out)
		}
	}

	// harus bisa dibaca balik sebagai dokumen valid
	var round artilleryDoc
	if err := yaml.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal balik: %v", err)
	}
	if round.Config.Target != doc.Config.Target {
		t.Errorf("round-trip target = %q", round.Config.Target)
	}
}
