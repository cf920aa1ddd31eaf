package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibseq/internal/config"
	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the requested term count, timeout and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Generating the first %s%s%s Fibonacci terms with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), format.FormatTermCount(cfg.N), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}
