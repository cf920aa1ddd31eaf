// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySequence], [DisplayQuietSequence], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatSequence], [FormatSequenceTruncated].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteSequenceToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/metrics"
	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/sysmon"
	"github.com/agbru/fibseq/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the sequence (empty for no file output).
	OutputFile string
	// Quiet mode suppresses labels and prints one term per line.
	Quiet bool
	// Verbose disables truncation of long sequences.
	Verbose bool
}

// FormatSequence renders a sequence as a bracketed, comma-separated list:
// [0, 1, 1, 2, 3]. An empty sequence renders as [].
//
// Parameters:
//   - seq: The sequence to render.
//
// Returns:
//   - string: The rendered sequence.
func FormatSequence(seq []uint64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, term := range seq {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(term, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatSequenceTruncated renders a sequence like [FormatSequence], but
// elides the middle of sequences longer than [TruncationLimit], keeping
// [DisplayEdges] terms at each end:
//
//	[0, 1, ..., 1298777728820984005, 2101667378991579731] (200 terms)
//
// Parameters:
//   - seq: The sequence to render.
//
// Returns:
//   - string: The rendered, possibly elided sequence.
func FormatSequenceTruncated(seq []uint64) string {
	if len(seq) <= TruncationLimit {
		return FormatSequence(seq)
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < DisplayEdges; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(seq[i], 10))
	}
	b.WriteString(", ..., ")
	for i := len(seq) - DisplayEdges; i < len(seq); i++ {
		b.WriteString(strconv.FormatUint(seq[i], 10))
		if i < len(seq)-1 {
			b.WriteString(", ")
		}
	}
	fmt.Fprintf(&b, "] (%d terms)", len(seq))
	return b.String()
}

// DisplaySequence outputs the labeled sequence line. This is the first line
// of the documented demonstration output; it carries no color codes.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
//   - verbose: When true, long sequences are printed in full.
func DisplaySequence(out io.Writer, seq []uint64, verbose bool) {
	rendered := FormatSequenceTruncated(seq)
	if verbose {
		rendered = FormatSequence(seq)
	}
	fmt.Fprintf(out, "First %d Fibonacci numbers: %s\n", len(seq), rendered)
}

// DisplaySum outputs the labeled sum line, the second line of the
// documented demonstration output.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
func DisplaySum(out io.Writer, seq []uint64) {
	fmt.Fprintf(out, "Sum of first %d Fibonacci numbers: %d\n", len(seq), sequence.Sum(seq))
}

// DisplayQuietSequence outputs one term per line with no labels, suitable
// for piping into other tools.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
func DisplayQuietSequence(out io.Writer, seq []uint64) {
	for _, term := range seq {
		fmt.Fprintln(out, term)
	}
}

// DisplayGenerationStats shows timing, memory and system statistics after a
// generation in --details mode.
//
// Parameters:
//   - out: The output writer.
//   - n: The requested term count.
//   - elapsed: The generation duration.
//   - allocated: Heap growth during the generation, in bytes.
//   - after: The memory snapshot taken after the generation.
//   - sys: The system-wide usage snapshot.
func DisplayGenerationStats(out io.Writer, n int, elapsed time.Duration, allocated uint64, after metrics.MemorySnapshot, sys sysmon.Stats) {
	fmt.Fprintf(out, "\n%sGeneration Stats:%s\n", ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(out, "  Duration:        %s\n", format.FormatExecutionDuration(elapsed))
	fmt.Fprintf(out, "  Terms:           %s\n", format.FormatTermCount(n))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(allocated))
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", after.NumGC)
	fmt.Fprintf(out, "  System:          %s\n", sys)
	if n > sequence.MaxExactTerm+1 {
		fmt.Fprintf(out, "  %sNote: terms beyond index %d wrap modulo 2^64.%s\n",
			ui.ColorYellow(), sequence.MaxExactTerm, ui.ColorReset())
	}
}

// WriteSequenceToFile writes a generated sequence to a file with a metadata
// header and one term per line.
//
// Parameters:
//   - seq: The generated sequence.
//   - duration: The generation duration.
//   - config: Output configuration; its OutputFile must be non-empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteSequenceToFile(seq []uint64, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Fibonacci Sequence\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Terms: %d\n", len(seq))
	fmt.Fprintf(file, "# Sum: %d\n", sequence.Sum(seq))
	fmt.Fprintf(file, "\n")

	// One term per line
	for _, term := range seq {
		fmt.Fprintf(file, "%d\n", term)
	}

	return nil
}
