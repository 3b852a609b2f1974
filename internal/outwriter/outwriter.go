// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the fleet audit report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.AuditReport, cfg *contract.Config, duration time.Duration) error {
	return WriteAuditReport(report, cfg, duration)
}

// WriteServices prints the service cost table using the configured output format.
func (ow *OutWriter) WriteServices(cfg *contract.Config) error {
	return WriteServiceCosts(cfg)
}

// GetMaxTableNameWidth calculates the maximum width for repo names in table
// output based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting:
	// Tier + Action + Age + Burn + Disk + CI columns plus borders/padding
	baseWidth := 62

	// Calculate available space for the repo name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 50 {
		// Maximum name width to prevent overly wide tables
		return 50
	}
	return available
}
