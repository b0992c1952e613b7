package engine

import (
	"time"

	"github.com/danieljhkim/namexif/internal/planner"
)

// RunRequest carries the parameters of one rename run.
type RunRequest struct {
	// Source is the file or directory to rename.
	Source string

	// Location is the timezone capture dates are interpreted in.
	Location *time.Location

	// NameFormat is the strftime template for target file stems.
	NameFormat string

	// DryRun plans and displays without applying.
	DryRun bool

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
}

// RunResult summarizes one rename run.
type RunResult struct {
	// Plan is the full ordered plan, including skips and errors.
	Plan *planner.Plan

	// Renamed is the number of files successfully renamed on disk.
	Renamed int

	// Errors is the number of per-file failures: image errors during planning
	// plus rename failures during application.
	Errors int
}
