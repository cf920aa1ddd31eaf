//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/progress"
)

const (
	// TruncationLimit is the term-count threshold from which a sequence is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of terms to display at the beginning
	// and end of a truncated sequence.
	DisplayEdges = 2
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the decoupling of [DisplayProgress] from a specific spinner
// implementation, facilitating easier testing and maintenance. It defines
// the essential controls for a spinner: starting, stopping, and updating its
// status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the spinner used by DisplayProgress. Tests replace
// this variable to observe spinner interactions.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress drives a spinner and progress bar from generation
// progress updates until progressChan is closed. It is intended to run in
// its own goroutine and signals completion through wg.
//
// Parameters:
//   - wg: A WaitGroup to signal when display is complete.
//   - progressChan: Channel receiving progress updates from the generator.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(formatProgressSuffix(progress.Update{}))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last progress.Update
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			last = update
		case <-ticker.C:
			s.UpdateSuffix(formatProgressSuffix(last))
		}
	}
}

// formatProgressSuffix renders the spinner suffix for a progress update.
func formatProgressSuffix(u progress.Update) string {
	return fmt.Sprintf(" %s %5.1f%% (%s terms)",
		progressBar(u.Value, ProgressBarWidth), u.Value*100, format.FormatTermCount(u.Terms))
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
