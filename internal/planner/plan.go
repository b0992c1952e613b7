package planner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/namexif/internal/fsops"
)

// Planner builds rename plans for a source file or directory.
type Planner struct {
	fs    fsops.FS
	dates DateSource
	log   *zap.Logger
}

// New creates a Planner with the given dependencies.
func New(fs fsops.FS, dates DateSource, log *zap.Logger) *Planner {
	return &Planner{
		fs:    fs,
		dates: dates,
		log:   log,
	}
}

// BuildPlan enumerates candidates under sourceRoot, classifies each one in
// parallel, and returns the ordered plan. Only a failure to list the source
// itself is returned as an error; everything else is recorded per item.
func (p *Planner) BuildPlan(sourceRoot string, loc *time.Location, nameFormat string) (*Plan, error) {
	paths, enumErrors, err := p.sourcePaths(sourceRoot)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Items:             p.classify(paths, loc, nameFormat),
		EnumerationErrors: enumErrors,
	}
	return plan, nil
}

// sourcePaths returns the candidate files in lexicographic order. A single
// file is its own candidate set; a directory contributes its immediate
// entries, non-recursively.
func (p *Planner) sourcePaths(sourceRoot string) ([]string, int, error) {
	info, err := p.fs.Stat(sourceRoot)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read source %s: %w", sourceRoot, err)
	}
	if !info.IsDir() {
		return []string{sourceRoot}, 0, nil
	}

	entries, err := p.fs.ReadDir(sourceRoot)
	if err != nil {
		if len(entries) == 0 {
			return nil, 0, fmt.Errorf("failed to list directory %s: %w", sourceRoot, err)
		}
		// Partial listing: keep what was read, count the failure.
		p.log.Error("failed to read some directory entries",
			zap.String("dir", sourceRoot),
			zap.Error(err))
		return pathsOf(sourceRoot, entries), 1, nil
	}
	return pathsOf(sourceRoot, entries), 0, nil
}

func pathsOf(dir string, entries []fs.DirEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths
}

// classify maps every candidate through the target namer using a fixed worker
// pool. Results land in the slot matching the candidate's index, so the
// returned slice keeps the sorted order no matter how workers are scheduled.
func (p *Planner) classify(paths []string, loc *time.Location, nameFormat string) []Item {
	items := make([]Item, len(paths))

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				target, err := p.targetPath(paths[i], loc, nameFormat)
				items[i] = Item{
					SourcePath: paths[i],
					TargetPath: target,
					Err:        err,
				}
			}
		}()
	}
	for i := range paths {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return items
}
