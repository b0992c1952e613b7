package engine

import "fmt"

// ConflictsError reports that the batch contains naming conflicts and was
// aborted before any rename was applied.
type ConflictsError struct {
	Count int
}

func (e *ConflictsError) Error() string {
	return fmt.Sprintf("%d conflicting file%s", e.Count, plural(e.Count))
}

func plural(n int) string {
	if n >= 2 {
		return "s"
	}
	return ""
}
