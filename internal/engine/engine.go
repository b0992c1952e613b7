// Package engine runs a batch rename end to end.
//
// The engine orchestrates planning, conflict checking, confirmation and
// application. It never writes to the terminal itself: planned renames are
// emitted through the injected Reporter, skips and failures through the
// injected logger, and the go/no-go decision is requested from the injected
// Confirmer.
//
// Key components:
//   - Run: plan, report, scan for conflicts, confirm, apply
//   - Apply: execute resolved renames with per-item failure accounting
package engine

import (
	"go.uber.org/zap"

	"github.com/danieljhkim/namexif/internal/fsops"
	"github.com/danieljhkim/namexif/internal/planner"
)

// Confirmer asks the user whether to proceed with the planned renames.
type Confirmer interface {
	// Confirm returns the user's decision for the given question.
	Confirm(message string) (bool, error)
}

// Reporter receives the display events of a run.
type Reporter interface {
	// PlannedRename is called once per successfully planned rename, in plan
	// order, before any filesystem mutation.
	PlannedRename(source, target string)
}

// Engine coordinates one rename run.
type Engine struct {
	fs       fsops.FS
	planner  *planner.Planner
	confirm  Confirmer
	reporter Reporter
	log      *zap.Logger
}

// New creates an Engine with the given dependencies.
func New(fs fsops.FS, pl *planner.Planner, confirm Confirmer, reporter Reporter, log *zap.Logger) *Engine {
	return &Engine{
		fs:       fs,
		planner:  pl,
		confirm:  confirm,
		reporter: reporter,
		log:      log,
	}
}
