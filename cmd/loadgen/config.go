// file: cmd/loadgen/config.go
package main

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

/* ===================== ARTILLERY CONFIG ===================== */

type artilleryPhase struct {
	Duration    int    `yaml:"duration"`
	ArrivalRate int    `yaml:"arrivalRate"`
	Name        string `yaml:"name,omitempty"`
}

type artilleryDefaults struct {
	Headers map[string]string `yaml:"headers,omitempty"`
}

type artilleryConfig struct {
	Target   string            `yaml:"target"`
	Phases   []artilleryPhase  `yaml:"phases"`
	Defaults artilleryDefaults `yaml:"defaults,omitempty"`
}

type flowStep struct {
	Get  *flowRequest `yaml:"get,omitempty"`
	Post *flowRequest `yaml:"post,omitempty"`
}

type flowRequest struct {
	URL  string         `yaml:"url"`
	JSON map[string]any `yaml:"json,omitempty"`
}

type artilleryScenario struct {
	Name string     `yaml:"name"`
	Flow []flowStep `yaml:"flow"`
}

type artilleryDoc struct {
	Config    artilleryConfig     `yaml:"config"`
	Scenarios []artilleryScenario `yaml:"scenarios"`
}

// hotEndpoints: jalur yang paling sering dipukul di produksi.
var hotEndpoints = []string{
	"/health",
	"/api/public/institutes/demo",
}

// BuildArtilleryDoc menyusun dokumen Artillery untuk endpoint panas.
// Token opsional dipasang sebagai Authorization default.
func BuildArtilleryDoc(target string, rate, durationSec int, token string) artilleryDoc {
	doc := artilleryDoc{
		Config: artilleryConfig{
			Target: target,
			Phases: []artilleryPhase{
				{Duration: durationSec, ArrivalRate: rate, Name: "steady"},
			},
		},
	}
	if token != "" {
		doc.Config.Defaults.Headers = map[string]string{
			"Authorization": "Bearer " + token,
		}
	}
	for _, ep := range hotEndpoints {
		doc.Scenarios = append(doc.Scenarios, artilleryScenario{
			Name: fmt.Sprintf("GET %s", ep),
			Flow: []flowStep{{Get: &flowRequest{URL: ep}}},
		})
	}
	return doc
}

func MarshalArtilleryYAML(doc artilleryDoc) ([]byte, error) {
	return yaml.Marshal(doc)
}
