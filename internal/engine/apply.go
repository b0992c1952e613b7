package engine

import (
	"go.uber.org/zap"

	"github.com/danieljhkim/namexif/internal/planner"
)

// Apply renames every resolved item in order and returns the success and
// failure counts. A failed rename leaves that one file untouched and does not
// abort the remaining items; the caller decides what the counts mean for the
// process exit status.
//
// Callers must only pass items that resolved to a target path, and must not
// call Apply at all when the plan has conflicts.
func (e *Engine) Apply(items []planner.Item) (renamed, failed int) {
	for _, item := range items {
		if err := e.fs.Rename(item.SourcePath, item.TargetPath); err != nil {
			e.log.Error("failed to rename file",
				zap.String("source", item.SourcePath),
				zap.String("target", item.TargetPath),
				zap.Error(err))
			failed++
			continue
		}
		renamed++
	}
	return renamed, failed
}
