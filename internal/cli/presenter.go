package cli

import (
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active
// terminal theme, so error presentation follows the same color scheme as
// the rest of the CLI output.
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

// ColorRed returns the theme's error color.
func (CLIColorProvider) ColorRed() string { return ui.ColorRed() }

// ColorYellow returns the theme's warning color.
func (CLIColorProvider) ColorYellow() string { return ui.ColorYellow() }

// ColorReset returns the theme's reset code.
func (CLIColorProvider) ColorReset() string { return ui.ColorReset() }
