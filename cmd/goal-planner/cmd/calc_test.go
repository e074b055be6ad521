package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/goal-planner/pkg/testutil"
)

// runRoot executes the command tree without reading any local config files.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	root := NewRootCmd("test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--log-level", "error",
	}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcJSON(t *testing.T) {
	stdout, _, err := runRoot(t, "calc",
		"--goal", "lump_sum", "--investment", "monthly",
		"--target-amount", "1000000", "--years", "20", "--annual-rate-accum", "0.07",
		"-o", "json",
	)
	if err != nil {
		t.Fatalf("calc unexpected error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("failed to decode output %q: %v", stdout, err)
	}
	if got["goal_type"] != "lump_sum" || got["investment_type"] != "monthly" {
		t.Errorf("unexpected result tags: %v", got)
	}
	testutil.AssertWithin(t, "monthly_investment", got["monthly_investment"].(float64), 1970.3021225221244, 1e-6)
}

func TestCalcPretty(t *testing.T) {
	stdout, stderr, err := runRoot(t, "calc",
		"--goal", "renta", "--investment", "combined",
		"--monthly-rent", "30000", "--years-rent", "30", "--annual-rate-rent", "0.05",
		"--years-saving", "18", "--annual-rate-accum", "-0.01",
		"--one-time-investment", "100000", "--currency", "EUR",
	)
	if err != nil {
		t.Fatalf("calc unexpected error = %v", err)
	}
	if !strings.Contains(stdout, "Required capital at pension start: 5 659 788 EUR") {
		t.Errorf("unexpected pretty output:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Warning: annual_rate_accum is negative") {
		t.Errorf("expected a warning for the negative rate, got %q", stderr)
	}
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{
			name:    "Missing field",
			args:    []string{"--goal", "lump_sum", "--investment", "monthly", "--target-amount", "1000", "--annual-rate-accum", "0.05"},
			errText: "years",
		},
		{
			name:    "Unknown goal",
			args:    []string{"--goal", "house", "--investment", "monthly"},
			errText: "goal_type",
		},
		{
			name:    "Unknown output format",
			args:    []string{"--goal", "lump_sum", "--investment", "monthly", "-o", "csv"},
			errText: "csv",
		},
		{
			name:    "Required flag",
			args:    []string{"--investment", "monthly"},
			errText: "goal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRoot(t, append([]string{"calc"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected error to mention %q, got %q", tt.errText, err.Error())
			}
		})
	}
}

func TestExamplesCommand(t *testing.T) {
	stdout, _, err := runRoot(t, "examples")
	if err != nil {
		t.Fatalf("examples unexpected error = %v", err)
	}
	if strings.Count(stdout, "[OK]") != 4 {
		t.Errorf("expected four matching examples, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1 970 Kč") {
		t.Errorf("expected the default currency label, got:\n%s", stdout)
	}
}

func TestInteractiveCommand(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCmd("test")
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("2\n1\n5 000 000\n18\n7\n2\n"))
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--log-level", "error",
		"interactive", "--currency", "USD",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("interactive unexpected error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Required monthly investment: 11 879 USD") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestInteractiveCommandInputClosed(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCmd("test")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("2\n"))
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--log-level", "error",
		"interactive",
	})

	if err := root.Execute(); err != nil {
		t.Errorf("expected a closed input to end the session cleanly, got %v", err)
	}
}
