package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bluefalconink/chad/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	coreColor   = color.New(color.FgGreen, color.Bold)   // core products
	activeColor = color.New(color.FgCyan)                // healthy activity
	warnColor   = color.New(color.FgYellow)              // needs review
	dangerColor = color.New(color.FgRed, color.Bold)     // delete candidates
	mutedColor  = color.New(color.FgHiBlack)             // archived / none
	degColor    = color.New(color.FgMagenta, color.Bold) // degraded CI
)

// GetColorTier returns a colored tier label for table output.
func GetColorTier(tier schema.Tier) string {
	switch tier {
	case schema.CoreTier:
		return coreColor.Sprint(string(tier))
	case schema.ActiveTier:
		return activeColor.Sprint(string(tier))
	case schema.DormantTier, schema.StaleTier, schema.ForkTier:
		return warnColor.Sprint(string(tier))
	case schema.DeadTier, schema.LegacyForkTier:
		return dangerColor.Sprint(string(tier))
	default: // ARCHIVED
		return mutedColor.Sprint(string(tier))
	}
}

// GetColorAction returns a colored action label for table output.
func GetColorAction(action schema.Action) string {
	switch action {
	case schema.MaintainAction:
		return activeColor.Sprint(string(action))
	case schema.ReviewAction, schema.ArchiveAction:
		return warnColor.Sprint(string(action))
	case schema.DeleteAction, schema.ArchiveOrDeleteAction:
		return dangerColor.Sprint(string(action))
	default: // NONE
		return mutedColor.Sprint(string(action))
	}
}

// GetColorHealth returns a colored workflow health label for table output.
func GetColorHealth(health schema.WorkflowHealth) string {
	switch health {
	case schema.HealthyWorkflows:
		return activeColor.Sprint(string(health))
	case schema.DegradedWorkflows:
		return degColor.Sprint(string(health))
	case schema.FailingWorkflows:
		return dangerColor.Sprint(string(health))
	default:
		return mutedColor.Sprint(string(health))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName shortens a repo name to maxLen, keeping the tail visible.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 3 || len(name) <= maxLen {
		return name
	}
	return "..." + name[len(name)-(maxLen-3):]
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for audit
// history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chad_history.db"
	}
	return filepath.Join(homeDir, ".chad_history.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning without aborting.
func LogWarn(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}
