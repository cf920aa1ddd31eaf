// Package config defines the application configuration and its resolution
// chain. Values are resolved with the priority: CLI flags > environment
// variables (FIBSEQ_ prefix) > built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by the
// application.
const EnvPrefix = "FIBSEQ_"

// Default configuration values. DefaultN matches the documented
// demonstration run: with no arguments the program prints the first 10
// terms and their sum.
const (
	DefaultN       = 10
	DefaultTimeout = 1 * time.Minute
	DefaultTheme   = "auto"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// N is the number of sequence terms to generate.
	N int
	// Quiet suppresses labels and prints one term per line for scripting.
	Quiet bool
	// Verbose prints the execution configuration before generating.
	Verbose bool
	// Details prints runtime memory and system statistics after generating.
	Details bool
	// OutputFile is the path to export the sequence to (empty for none).
	OutputFile string
	// Timeout bounds the generation run.
	Timeout time.Duration
	// Theme selects the color theme: auto, dark, light or none.
	Theme string
	// TUI launches the interactive dashboard instead of a one-shot run.
	TUI bool
	// ServeAddr exposes a Prometheus /metrics endpoint on this address for
	// the duration of the run (empty disables the endpoint).
	ServeAddr string
	// Debug enables debug-level logging.
	Debug bool
}

// termCountValue is a flag.Value for the term count. It exists so that a
// non-integer value surfaces as the application's InvalidArgument error
// rather than a bare strconv message.
type termCountValue int

// String returns the current value for flag's default rendering.
func (v *termCountValue) String() string { return strconv.Itoa(int(*v)) }

// Set parses s as an integer term count.
func (v *termCountValue) Set(s string) error {
	parsed, err := strconv.Atoi(s)
	if err != nil {
		return apperrors.NewValidationError("n", "%q is not an integer term count", s)
	}
	*v = termCountValue(parsed)
	return nil
}

// ParseConfig resolves the application configuration from command-line
// arguments and environment variables.
//
// Parameters:
//   - programName: The binary name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and parse error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, a parse or validation
//     error otherwise, nil on success.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		N:       DefaultN,
		Timeout: DefaultTimeout,
		Theme:   DefaultTheme,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	n := termCountValue(cfg.N)
	fs.Var(&n, "n", "number of Fibonacci terms to generate")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet mode: one term per line, no labels")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet mode (alias of -q)")
	fs.BoolVar(&cfg.Verbose, "v", false, "print the execution configuration")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose mode (alias of -v)")
	fs.BoolVar(&cfg.Details, "d", false, "print memory and system statistics")
	fs.BoolVar(&cfg.Details, "details", false, "details mode (alias of -d)")
	fs.StringVar(&cfg.OutputFile, "o", "", "export the sequence to a file")
	fs.StringVar(&cfg.OutputFile, "output", "", "output file (alias of -o)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "generation deadline")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: auto, dark, light or none")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.StringVar(&cfg.ServeAddr, "serve", "", "expose Prometheus metrics on this address during the run")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Generates the first N terms of the Fibonacci sequence.\n")
		fmt.Fprintf(errWriter, "With no options, prints the first %d terms and their sum.\n\nOptions:\n", DefaultN)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		// The flag package flattens flag.Value errors into plain strings,
		// so retag parse failures here to keep the configuration error
		// class recoverable with errors.As.
		return AppConfig{}, apperrors.ConfigError{Message: err.Error()}
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}
	cfg.N = int(n)

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		fmt.Fprintf(errWriter, "%v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configuration combinations outside the documented
// contract.
func validate(cfg AppConfig) error {
	switch cfg.Theme {
	case "auto", "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q (expected auto, dark, light or none)", cfg.Theme)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("--tui and --quiet are mutually exclusive")
	}
	return nil
}
