package commands

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelInfo},
		{"verbose (1)", 1, slog.LevelDebug},
		{"very verbose (2)", 2, slog.LevelDebug - 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if logger.Enabled(context.Background(), tt.wantLevel-4) {
				t.Errorf("expected level %v to be disabled", tt.wantLevel-4)
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"WAFCTL_DEBUG=1", "1", slog.LevelDebug - 4},
		{"WAFCTL_DEBUG=true", "true", slog.LevelDebug - 4},
		{"WAFCTL_DEBUG=0", "0", slog.LevelInfo},
		{"WAFCTL_DEBUG=unknown", "foo", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("WAFCTL_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			if !slog.Default().Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet := quiet
	origVerbosity := verbosity
	defer func() {
		quiet = origQuiet
		verbosity = origVerbosity
	}()

	quiet = true
	verbosity = 0

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected Warn level to be disabled")
	}
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	origVerbosity := verbosity
	origQuiet := quiet
	defer func() {
		verbosity = origVerbosity
		quiet = origQuiet
	}()

	verbosity = 1
	quiet = true

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error when both quiet and verbose are set")
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	if rootCmd.Use != "wafctl" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "wafctl")
	}
	if !rootCmd.SilenceErrors || !rootCmd.SilenceUsage {
		t.Error("root command should silence cobra's own error and usage output")
	}

	for _, name := range []string{"docs-dir", "dry-run", "verbose", "quiet", "log-format", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be defined", name)
		}
	}
}
