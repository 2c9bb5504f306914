package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/bft-labs/nernst/internal/domain"
)

func results() []domain.Result {
	return []domain.Result{
		{
			Record: domain.Record{Line: 2, Name: "K+", Sample: domain.Sample{TemperatureKelvin: 310.15, Valence: 1, InnerConcentration: 140, OuterConcentration: 5}},
			Volts:  -0.089054,
		},
		{
			Record: domain.Record{Line: 3, Name: "X", Sample: domain.Sample{TemperatureKelvin: 310.15, InnerConcentration: math.NaN(), OuterConcentration: 1}},
			Err:    &domain.DomainError{Field: "valence", Reason: "must be nonzero"},
		},
		{
			Record: domain.Record{Line: 4, Name: "Cl-", Sample: domain.Sample{TemperatureKelvin: 310.15, Valence: -1, InnerConcentration: 7, OuterConcentration: 7}},
			Volts:  math.Copysign(0, -1),
		},
	}
}

func TestText_Render(t *testing.T) {
	var buf bytes.Buffer
	r := Text{Options{Unit: Millivolts, Precision: 2}}
	if err := r.Render(&buf, results()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "POTENTIAL (mV)") {
		t.Errorf("header = %q", lines[0])
	}
	for _, want := range []string{"K+", "+1", "310.15", "140", "-89.05"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row %q missing %q", lines[1], want)
		}
	}
	if !strings.Contains(lines[2], "error: nernst: valence") {
		t.Errorf("error row = %q", lines[2])
	}
	if !strings.HasSuffix(strings.TrimSpace(lines[3]), " 0.00") || strings.Contains(lines[3], "-0.00") {
		t.Errorf("zero row = %q", lines[3])
	}
}

func TestText_Volts(t *testing.T) {
	var buf bytes.Buffer
	r := Text{Options{Unit: Volts, Precision: 4}}
	if err := r.Render(&buf, results()[:1]); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "POTENTIAL (V)") || !strings.Contains(buf.String(), "-0.0891") {
		t.Errorf("Render() = %q", buf.String())
	}
}

func TestJSON_Render(t *testing.T) {
	var buf bytes.Buffer
	r := JSON{Options{Unit: Millivolts, Precision: 1}}
	if err := r.Render(&buf, results()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}

	if got[0]["name"] != "K+" || got[0]["potential"] != -89.1 || got[0]["unit"] != "mV" {
		t.Errorf("entry 0 = %v", got[0])
	}
	if _, ok := got[1]["potential"]; ok {
		t.Errorf("entry 1 has potential: %v", got[1])
	}
	if _, ok := got[1]["inner"]; ok {
		t.Errorf("entry 1 has NaN inner: %v", got[1])
	}
	if !strings.Contains(got[1]["error"].(string), "valence") {
		t.Errorf("entry 1 error = %v", got[1]["error"])
	}
	if got[2]["potential"] != 0.0 {
		t.Errorf("entry 2 potential = %v", got[2]["potential"])
	}
}

func TestJSON_NonFinitePotential(t *testing.T) {
	in := []domain.Result{
		{
			Record: domain.Record{Line: 2, Name: "K+", Sample: domain.Sample{TemperatureKelvin: 310.15, Valence: 1, InnerConcentration: 140, OuterConcentration: 5}},
			Volts:  -0.089054,
		},
		{
			Record: domain.Record{Line: 3, Name: "X", Sample: domain.Sample{TemperatureKelvin: 310.15, Valence: 1, InnerConcentration: 1, OuterConcentration: 2}},
			Volts:  math.Inf(-1),
		},
	}

	var buf bytes.Buffer
	if err := (JSON{Options{Unit: Millivolts, Precision: 2}}).Render(&buf, in); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0]["potential"] != -89.05 {
		t.Errorf("entry 0 potential = %v, want -89.05", got[0]["potential"])
	}
	if _, ok := got[1]["potential"]; ok {
		t.Errorf("entry 1 has potential: %v", got[1])
	}
	if msg, _ := got[1]["error"].(string); !strings.Contains(msg, "not finite") {
		t.Errorf("entry 1 error = %v", got[1]["error"])
	}
}
