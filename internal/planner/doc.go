// Package planner builds the batch rename plan.
//
// The planner enumerates candidate files, derives a target name for each one
// from its EXIF capture date, and scans the whole batch for naming conflicts.
// Plans are deterministic: candidates are sorted by source path before
// classification, so identical input always yields an identical plan and an
// identical conflict set regardless of goroutine scheduling.
//
// Key responsibilities:
//   - Derive target paths (extension family, zone resolution, strftime stem)
//   - Classify per-file failures as benign skips or real image errors
//   - Detect batch-level conflicts with a single ordered forward scan
package planner
