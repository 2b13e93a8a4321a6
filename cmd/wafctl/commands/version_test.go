package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/wafctl/cmd"
)

func TestVersionCommand_OutputFormat(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)
	output := buf.String()

	tests := []struct {
		name     string
		contains string
	}{
		{name: "contains version header", contains: "wafctl version " + cmd.Version},
		{name: "contains commit field", contains: "commit: " + cmd.Commit},
		{name: "contains built field", contains: "built:  " + cmd.Date},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(output, tt.contains) {
				t.Errorf("version output missing %q\nGot:\n%s", tt.contains, output)
			}
		})
	}
}

func TestVersionCommand_Metadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}
