package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// coachBinary locates the compiled CLI for exec-style tests. The
// COACH_AGENT_BIN variable points at an out-of-tree build; otherwise the
// default bin/ location is tried, and the test skips when neither exists.
func coachBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := os.Getenv("COACH_AGENT_BIN")
	if binaryPath == "" {
		binaryPath = filepath.Join("..", "..", "bin", "coach_agent")
	}
	if _, err := os.Stat(binaryPath); err != nil {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

func TestMatchCommands_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "match-skill missing --skill flag",
			args:        []string{"match-skill", "--profile", "profile.json"},
			errorString: "required",
		},
		{
			name:        "find-similar missing --query flag",
			args:        []string{"find-similar", "--profile", "profile.json"},
			errorString: "required",
		},
		{
			name:        "story-candidates missing --theme flag",
			args:        []string{"story-candidates", "--profile", "profile.json"},
			errorString: "required",
		},
		{
			name:        "delete-profile missing --profile-id flag",
			args:        []string{"delete-profile"},
			errorString: "required",
		},
		{
			name:        "cluster without profile source",
			args:        []string{"cluster"},
			errorString: "must provide either --profile or --profile-id",
		},
		{
			name:        "cluster with both profile sources",
			args:        []string{"cluster", "--profile", "profile.json", "--profile-id", "00000000-0000-0000-0000-000000000000"},
			errorString: "cannot use --profile with --profile-id",
		},
	}

	binaryPath := coachBinary(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
