package sequence

import (
	"context"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/progress"
)

// Generate returns the first n terms of the Fibonacci sequence.
//
// The returned slice has length exactly max(n, 0): an empty slice for
// n <= 0, [0] for n == 1, [0, 1] for n == 2, and for n >= 3 the seeded
// sequence extended iteratively so that each term is the sum of the two
// preceding terms. Terms are uint64 and wrap past [MaxExactTerm]; the
// caller is responsible for keeping n within a meaningful range.
//
// The function is pure: it reads and mutates no external state, and every
// call with the same n yields an equal slice.
//
// Parameters:
//   - n: The number of terms to produce.
//
// Returns:
//   - []uint64: The ordered sequence of Fibonacci terms, never nil.
func Generate(n int) []uint64 {
	switch {
	case n <= 0:
		return []uint64{}
	case n == 1:
		return []uint64{0}
	case n == 2:
		return []uint64{0, 1}
	}

	seq := make([]uint64, n)
	seq[0], seq[1] = 0, 1
	for i := 2; i < n; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq
}

// Sum returns the arithmetic sum of all terms in seq. The sum of an empty
// sequence is 0. Like the terms themselves, the sum uses native uint64
// arithmetic and wraps on overflow.
func Sum(seq []uint64) uint64 {
	var total uint64
	for _, term := range seq {
		total += term
	}
	return total
}

// Generator produces Fibonacci sequences with cancellation and progress
// reporting. The zero value is not usable; obtain instances from
// [NewGenerator]. A Generator holds no mutable state of its own and is safe
// for concurrent use.
type Generator struct {
	subject *progress.Subject
}

// NewGenerator creates a Generator that reports progress to the given
// subject. A nil subject disables reporting.
func NewGenerator(subject *progress.Subject) *Generator {
	return &Generator{subject: subject}
}

// Generate produces the first n terms of the Fibonacci sequence, checking
// ctx and reporting progress every checkpointInterval terms. The result is
// identical to [Generate](n) when the context is never canceled.
//
// Parameters:
//   - ctx: Controls cancellation of long generations.
//   - n: The number of terms to produce.
//
// Returns:
//   - []uint64: The ordered sequence, never nil on success.
//   - error: ctx.Err() wrapped in a GenerationError if the context was
//     canceled or its deadline expired before completion; nil otherwise.
func (g *Generator) Generate(ctx context.Context, n int) ([]uint64, error) {
	if n <= checkpointInterval {
		g.report(1.0, n)
		return Generate(n), nil
	}

	seq := make([]uint64, n)
	seq[0], seq[1] = 0, 1
	for i := 2; i < n; i++ {
		seq[i] = seq[i-1] + seq[i-2]

		if i%checkpointInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.GenerationError{Cause: err}
			}
			g.report(float64(i)/float64(n), i)
		}
	}
	g.report(1.0, n)
	return seq, nil
}

// report notifies the progress subject, if any.
func (g *Generator) report(value float64, terms int) {
	if g.subject == nil {
		return
	}
	g.subject.NotifyAll(progress.Update{Value: value, Terms: terms})
}
