package planner

// Conflicts scans the ordered plan and reports every path the batch would
// overwrite. The scan is a single forward pass over the resolved items,
// maintaining the set of target paths claimed so far: a source that matches
// an earlier target would be clobbered before its own rename runs, and a
// target that matches an earlier target would be written twice. Skips and
// errors are excluded entirely.
//
// The pass depends on the plan's lexicographic ordering; a different order
// could attribute an equally valid conflict to a different item. Any
// non-empty result invalidates the whole batch.
func (p *Plan) Conflicts() []Conflict {
	seen := make(map[string]struct{}, len(p.Items))
	var conflicts []Conflict
	for _, item := range p.Items {
		if item.Err != nil {
			continue
		}
		if _, ok := seen[item.SourcePath]; ok {
			conflicts = append(conflicts, Conflict{Path: item.SourcePath, Side: SourceOverwritten})
		} else if _, ok := seen[item.TargetPath]; ok {
			conflicts = append(conflicts, Conflict{Path: item.TargetPath, Side: TargetOverwritten})
		} else {
			seen[item.TargetPath] = struct{}{}
		}
	}
	return conflicts
}
