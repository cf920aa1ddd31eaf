package sequence

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxExactTerm is the largest index whose Fibonacci value fits in a
	// uint64. F(93) = 12200160415121876738 is the last exact term; from
	// index 94 onward the values wrap modulo 2^64, following ordinary
	// native-integer semantics. Callers requesting more terms get wrapped
	// values, not an error.
	MaxExactTerm = 93

	// checkpointInterval is the number of terms generated between context
	// checks and progress reports in [Generator.Generate]. Checking on every
	// term would dominate the loop body for large counts; 64Ki terms keeps
	// cancellation latency well under a millisecond on current hardware.
	checkpointInterval = 1 << 16
)
