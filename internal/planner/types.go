package planner

import "fmt"

// Item is the decision for one source file: either a target path or a typed
// failure. Exactly one of TargetPath and Err is set. Items are read-only once
// the plan is built.
type Item struct {
	SourcePath string
	TargetPath string
	Err        error // *SkipError or *ImageError
}

// Plan is the full ordered set of per-file rename decisions, sorted
// lexicographically by source path.
type Plan struct {
	Items []Item

	// EnumerationErrors counts directory entries that could not be read during
	// listing. They raise the exit status but do not abort the run.
	EnumerationErrors int
}

// Renames returns the items that resolved to a target path, in plan order.
func (p *Plan) Renames() []Item {
	var renames []Item
	for _, item := range p.Items {
		if item.Err == nil {
			renames = append(renames, item)
		}
	}
	return renames
}

// ErrorCount returns the number of items that failed with an image error.
func (p *Plan) ErrorCount() int {
	count := p.EnumerationErrors
	for _, item := range p.Items {
		if item.Err != nil && !IsSkip(item.Err) {
			count++
		}
	}
	return count
}

// ConflictSide identifies which side of a planned rename collides.
type ConflictSide int

const (
	// SourceOverwritten: the source of one rename is the target of another,
	// so applying the batch would clobber a file before it is renamed.
	SourceOverwritten ConflictSide = iota

	// TargetOverwritten: two renames share the same target path.
	TargetOverwritten
)

// Conflict identifies one path the batch would overwrite. Conflicts are a
// view computed over the ordered plan, never stored independently.
type Conflict struct {
	Path string
	Side ConflictSide
}

func (c Conflict) String() string {
	switch c.Side {
	case SourceOverwritten:
		return fmt.Sprintf("source file %s is overwritten", c.Path)
	default:
		return fmt.Sprintf("target file %s is overwritten", c.Path)
	}
}
