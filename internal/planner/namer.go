package planner

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/danieljhkim/namexif/internal/imagefile"
)

// extensionFamilies maps every recognized extension, lowercased, to the
// canonical extension of its format family.
var extensionFamilies = map[string]string{
	"jpg":  "jpg",
	"jpeg": "jpg",
	"tif":  "tiff",
	"tiff": "tiff",
}

// DateSource reads the naive capture datetime embedded in an image file.
// *imagefile.Extractor is the production implementation.
type DateSource interface {
	NaiveDatetime(path string) (imagefile.NaiveDatetime, error)
}

// targetExtension returns the canonical extension for the source file, or a
// skip when the extension is missing or outside the recognized families.
func targetExtension(sourcePath string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(sourcePath), ".")
	if ext == "" {
		return "", &SkipError{Reason: SkipExtension}
	}
	canonical, ok := extensionFamilies[strings.ToLower(ext)]
	if !ok {
		return "", &SkipError{Reason: SkipExtension}
	}
	return canonical, nil
}

// targetPath derives the rename target for one source file: a sibling named
// after the capture date formatted with nameFormat, carrying the canonical
// extension.
func (p *Planner) targetPath(sourcePath string, loc *time.Location, nameFormat string) (string, error) {
	ext, err := targetExtension(sourcePath)
	if err != nil {
		return "", err
	}

	info, err := p.fs.Stat(sourcePath)
	if err != nil {
		return "", &ImageError{Err: fmt.Errorf("failed to stat file: %w", err)}
	}
	if info.IsDir() {
		return "", &SkipError{Reason: SkipDirectory}
	}

	naive, err := p.dates.NaiveDatetime(sourcePath)
	if err != nil {
		return "", &ImageError{Err: err}
	}

	resolved, err := naive.In(loc)
	if err != nil {
		return "", &ImageError{Err: err}
	}

	stem := strftime.Format(nameFormat, resolved)
	target := filepath.Join(filepath.Dir(sourcePath), stem+"."+ext)
	if target == filepath.Clean(sourcePath) {
		return "", &SkipError{Reason: SkipWellNamed}
	}
	return target, nil
}
