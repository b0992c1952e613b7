package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/namexif/internal/planner"
)

// Run executes one batch rename.
//
// Algorithm steps:
//  1. Build the ordered plan (fatal on source enumeration failure)
//  2. Log every skip (info) and image failure (error)
//  3. Report each planned rename in plan order
//  4. Scan for conflicts; any conflict aborts the whole batch un-applied
//  5. Unless dry-run, confirm with the caller-supplied decision function
//  6. Apply the renames, counting per-item failures
func (e *Engine) Run(req *RunRequest) (*RunResult, error) {
	plan, err := e.planner.BuildPlan(req.Source, req.Location, req.NameFormat)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Plan:   plan,
		Errors: plan.ErrorCount(),
	}

	for _, item := range plan.Items {
		switch {
		case item.Err == nil:
		case planner.IsSkip(item.Err):
			e.log.Info("skipping file",
				zap.String("path", item.SourcePath),
				zap.String("reason", item.Err.Error()))
		default:
			e.log.Error("skipping file",
				zap.String("path", item.SourcePath),
				zap.Error(item.Err))
		}
	}

	renames := plan.Renames()
	for _, item := range renames {
		e.reporter.PlannedRename(item.SourcePath, item.TargetPath)
	}

	conflicts := plan.Conflicts()
	for _, conflict := range conflicts {
		e.log.Error(conflict.String())
	}
	if len(conflicts) > 0 {
		return result, &ConflictsError{Count: len(conflicts)}
	}

	if len(renames) == 0 || req.DryRun {
		return result, nil
	}

	if !req.AssumeYes {
		proceed, err := e.confirm.Confirm("Proceed?")
		if err != nil {
			return result, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !proceed {
			return result, nil
		}
	}

	renamed, failed := e.Apply(renames)
	result.Renamed = renamed
	result.Errors += failed
	return result, nil
}
