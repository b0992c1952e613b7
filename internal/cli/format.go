package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed, color.Bold)

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// FormatRename renders "source => target" with the shared-ancestor elision
// convention: the common directory prefix is hoisted and only the differing
// suffixes are braced, e.g. /path/to/{old.jpg => new.jpg}. A leading "./" is
// dropped.
func FormatRename(source, target string) string {
	sep := string(filepath.Separator)

	sourceAbs, sourceParts := splitPath(filepath.Clean(source))
	targetAbs, targetParts := splitPath(filepath.Clean(target))
	if sourceAbs != targetAbs {
		return source + " => " + target
	}

	common := 0
	for common < len(sourceParts)-1 && common < len(targetParts)-1 &&
		sourceParts[common] == targetParts[common] {
		common++
	}

	left := strings.Join(sourceParts[common:], sep)
	right := strings.Join(targetParts[common:], sep)

	switch {
	case common == 0 && !sourceAbs:
		return left + " => " + right
	case common == 0:
		return sep + "{" + left + " => " + right + "}"
	default:
		prefix := strings.Join(sourceParts[:common], sep)
		if sourceAbs {
			prefix = sep + prefix
		}
		return prefix + sep + "{" + left + " => " + right + "}"
	}
}

// splitPath splits a cleaned path into components, separating out whether it
// is absolute.
func splitPath(path string) (abs bool, parts []string) {
	sep := string(filepath.Separator)
	if strings.HasPrefix(path, sep) {
		abs = true
		path = strings.TrimPrefix(path, sep)
	}
	if path == "" {
		return abs, nil
	}
	return abs, strings.Split(path, sep)
}
