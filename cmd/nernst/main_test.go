package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/nernst/internal/domain"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "potassium in millivolts",
			args: []string{"compute", "--name", "K+", "-z", "1", "--inner", "140", "--outer", "5"},
			want: []string{"K+", "POTENTIAL (mV)", "-89.05"},
		},
		{
			name: "sodium in volts",
			args: []string{"compute", "-z", "1", "--inner", "12", "--outer", "145", "--unit", "V", "--precision", "4"},
			want: []string{"POTENTIAL (V)", "0.0666"},
		},
		{
			name: "calcium at 37 celsius",
			args: []string{"compute", "-z", "2", "--inner", "0.0001", "--outer", "2", "--celsius", "37"},
			want: []string{"+2", "132.34"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCompute_DomainError(t *testing.T) {
	_, err := execute(t, "", "compute", "-z", "0", "--inner", "140", "--outer", "5")
	if !errors.Is(err, domain.ErrDomain) {
		t.Errorf("Execute() error = %v, want ErrDomain", err)
	}
}

func TestCompute_InvalidConfig(t *testing.T) {
	_, err := execute(t, "", "compute", "-z", "1", "--inner", "1", "--outer", "2", "--unit", "kV")
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("Execute() error = %v, want ErrInvalidConfig", err)
	}
}

func TestPrompt(t *testing.T) {
	out, err := execute(t, "37\n1\n140\n5\n", "prompt", "--name", "K+")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Temperature (°C): ", "Valence: ", "-89.05"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ions.csv")
	data := "name,charge,temperature,inner,outer\nK+,1,,140,5\nbogus,0,,1,2\nNa+,1,310.15,12,145\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	out, err := execute(t, "", "batch", path, "--format", "json", "--precision", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got[0]["potential"] != -89.1 || got[2]["potential"] != 66.6 {
		t.Errorf("potentials = %v, %v", got[0]["potential"], got[2]["potential"])
	}
	if got[1]["error"] == nil {
		t.Errorf("entry 1 = %v, want error", got[1])
	}
}

func TestBatch_MissingFile(t *testing.T) {
	if _, err := execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Execute() expected error for missing file")
	}
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("unit = \"V\"\nprecision = 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := execute(t, "", "--config", cfgPath, "compute", "-z", "1", "--inner", "140", "--outer", "5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "-0.089") || !strings.Contains(out, "POTENTIAL (V)") {
		t.Errorf("output = %s", out)
	}

	// Flags win over the file.
	out, err = execute(t, "", "--config", cfgPath, "compute", "-z", "1", "--inner", "140", "--outer", "5", "--unit", "mV")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "-89.054") {
		t.Errorf("output = %s", out)
	}

	if _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.toml"), "compute", "-z", "1", "--inner", "1", "--outer", "2"); err == nil {
		t.Error("Execute() expected error for missing explicit config")
	}
}

func TestBatch_ExtremeConcentrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ions.csv")
	data := "name,charge,temperature,inner,outer\nK+,1,,140,5\nX,1,,1e300,1e-300\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	out, err := execute(t, "", "batch", path, "--format", "json", "--unit", "V", "--precision", "3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0]["potential"] != -0.089 || got[1]["potential"] != -36.922 {
		t.Errorf("potentials = %v, %v", got[0]["potential"], got[1]["potential"])
	}
}
