package console

import (
	"errors"
	"strings"
	"testing"
)

func TestRunFlows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:  "Lump sum monthly",
			input: "2\n1\n1 000 000\n20\n7\n2\n",
			contains: []string{
				"Target amount: 1 000 000 Kč in 20.0 years.",
				"Expected annual return while saving: 7.00 %.",
				"Required monthly investment: 1 970 Kč",
			},
		},
		{
			name:  "Lump sum combined",
			input: "2\n1\n1000000\n20\n7\n3\n200 000\n",
			contains: []string{
				"One-time investment today: 200 000 Kč",
				"Estimated future value of the one-time investment: 773 937 Kč",
				"Remaining target for monthly investments: 226 063 Kč",
				"Required monthly investment: 445 Kč",
			},
		},
		{
			name:  "Renta one-time",
			input: "2\n2\n30 000\n30\n5\n18\n7\n1\n",
			contains: []string{
				"Desired monthly pension: 30 000 Kč for 30.0 years.",
				"Return while saving (18.0 years): 7.00 % p.a.",
				"Required capital at pension start: 5 659 788 Kč",
				"Required one-time investment today: 1 674 527 Kč",
			},
		},
		{
			name:  "Sample scenarios",
			input: "1\n",
			contains: []string{
				"=== EXAMPLE 1:",
				"=== EXAMPLE 4:",
				"Calculated: 11 879 Kč [OK]",
			},
		},
		{
			name:  "Negative amount is accepted with a warning",
			input: "2\n1\n-1000\n10\n5\n1\n",
			contains: []string{
				"Warning: ",
				"Required one-time investment today: -614 Kč",
			},
		},
		{
			name:  "Zero horizon monthly plan cannot be computed",
			input: "2\n1\n1000\n0\n7\n2\n",
			contains: []string{
				"The plan cannot be computed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			if err := c.Run(); err != nil {
				t.Fatalf("Run() unexpected error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunInputClosedMidFlow(t *testing.T) {
	c, _ := newTestConsole("2\n2\n30000\n")
	if err := c.Run(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Run() error = %v, want ErrInputClosed", err)
	}
}

func TestRunExamplesAllMatch(t *testing.T) {
	var out strings.Builder
	if err := RunExamples(&out, ""); err != nil {
		t.Fatalf("RunExamples() unexpected error = %v", err)
	}
	if strings.Contains(out.String(), "MISMATCH") {
		t.Errorf("expected every example to match, got:\n%s", out.String())
	}
	if n := strings.Count(out.String(), "[OK]"); n != len(Scenarios()) {
		t.Errorf("expected %d matching examples, got %d", len(Scenarios()), n)
	}
	if !strings.Contains(out.String(), "Calculated: 1 970 [OK]") {
		t.Errorf("expected amounts without a currency label, got:\n%s", out.String())
	}
}
