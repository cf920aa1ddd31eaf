package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// parse is a shorthand that parses args with a discarded error writer.
func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("fibseq", args, &buf)
}

// TestParseConfig_Defaults verifies the no-argument configuration matches
// the documented demonstration run.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.N != DefaultN {
		t.Errorf("N = %d, want %d", cfg.N, DefaultN)
	}
	if cfg.Quiet || cfg.Verbose || cfg.Details || cfg.TUI {
		t.Errorf("boolean modes should default to false, got %+v", cfg)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.OutputFile != "" || cfg.ServeAddr != "" {
		t.Errorf("file and serve options should default empty, got %+v", cfg)
	}
}

// TestParseConfig_Flags verifies flag parsing including aliases.
func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "term count",
			args: []string{"-n", "25"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.N != 25 {
					t.Errorf("N = %d, want 25", cfg.N)
				}
			},
		},
		{
			name: "negative term count is accepted",
			args: []string{"-n", "-3"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.N != -3 {
					t.Errorf("N = %d, want -3", cfg.N)
				}
			},
		},
		{
			name: "quiet short and long",
			args: []string{"-q"},
			check: func(t *testing.T, cfg AppConfig) {
				if !cfg.Quiet {
					t.Error("Quiet should be set by -q")
				}
			},
		},
		{
			name: "verbose long form",
			args: []string{"--verbose"},
			check: func(t *testing.T, cfg AppConfig) {
				if !cfg.Verbose {
					t.Error("Verbose should be set by --verbose")
				}
			},
		},
		{
			name: "output alias",
			args: []string{"--output", "seq.txt"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.OutputFile != "seq.txt" {
					t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, "seq.txt")
				}
			},
		},
		{
			name: "timeout",
			args: []string{"--timeout", "30s"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Timeout != 30*time.Second {
					t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
				}
			},
		},
		{
			name: "serve address",
			args: []string{"--serve", "localhost:9090"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.ServeAddr != "localhost:9090" {
					t.Errorf("ServeAddr = %q, want localhost:9090", cfg.ServeAddr)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("ParseConfig(%v) returned error: %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

// TestParseConfig_InvalidTermCount verifies a non-integer count surfaces
// as the InvalidArgument error class.
func TestParseConfig_InvalidTermCount(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig("fibseq", []string{"-n", "ten"}, &buf)
	if err == nil {
		t.Fatal("ParseConfig accepted a non-integer term count")
	}
	if !strings.Contains(err.Error(), "not an integer term count") {
		t.Errorf("error = %v, should describe the invalid argument", err)
	}
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %T, want ConfigError so the exit code mapping can recover it", err)
	}
}

// TestParseConfig_ParseErrorClass verifies every parse failure surfaces
// as a ConfigError, not a bare flag-package error.
func TestParseConfig_ParseErrorClass(t *testing.T) {
	for _, args := range [][]string{
		{"--bogus"},
		{"-n", "ten"},
		{"--timeout", "fast"},
	} {
		_, err := parse(t, args...)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ParseConfig(%v) error = %T, want ConfigError", args, err)
		}
	}
}

// TestParseConfig_Errors verifies rejected configurations.
func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"unexpected positional", []string{"10"}},
		{"unknown theme", []string{"--theme", "solarized"}},
		{"non-positive timeout", []string{"--timeout", "0s"}},
		{"tui with quiet", []string{"--tui", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(t, tt.args...); err == nil {
				t.Errorf("ParseConfig(%v) should fail", tt.args)
			}
		})
	}
}

// TestParseConfig_Help verifies --help returns flag.ErrHelp for a clean
// exit.
func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}

// TestParseConfig_EnvOverrides verifies environment values apply when the
// corresponding flag is absent.
func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Run("env applies without flag", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "42")
		t.Setenv(EnvPrefix+"QUIET", "yes")
		t.Setenv(EnvPrefix+"TIMEOUT", "5s")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.N != 42 {
			t.Errorf("N = %d, want 42 from env", cfg.N)
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("Timeout = %s, want 5s from env", cfg.Timeout)
		}
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "42")

		cfg, err := parse(t, "-n", "7")
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.N != 7 {
			t.Errorf("N = %d, want 7 (flag has priority)", cfg.N)
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "not-a-number")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if cfg.N != DefaultN {
			t.Errorf("N = %d, want default %d", cfg.N, DefaultN)
		}
	})

	t.Run("debug has no flag", func(t *testing.T) {
		t.Setenv(EnvPrefix+"DEBUG", "1")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig returned error: %v", err)
		}
		if !cfg.Debug {
			t.Error("Debug should be set from env")
		}
	})
}

// TestTermCountValue verifies the flag.Value implementation directly.
func TestTermCountValue(t *testing.T) {
	var v termCountValue

	if err := v.Set("15"); err != nil {
		t.Fatalf("Set(15) returned error: %v", err)
	}
	if v != 15 {
		t.Errorf("value = %d, want 15", v)
	}
	if v.String() != "15" {
		t.Errorf("String() = %q, want %q", v.String(), "15")
	}

	err := v.Set("x")
	var valErr apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Set(x) error = %T, want ValidationError", err)
	}
	if valErr.Field != "n" {
		t.Errorf("Field = %q, want %q", valErr.Field, "n")
	}
}
