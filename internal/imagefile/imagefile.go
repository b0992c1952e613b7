// Package imagefile reads the capture datetime embedded in an image file.
//
// The capture time recorded by cameras (EXIF DateTimeOriginal) is a naive
// wall-clock value with no zone attached. This package extracts that value
// and, separately, resolves it to an absolute instant in a chosen zone,
// rejecting wall-clock times that a DST transition makes invalid or
// ambiguous.
package imagefile

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

var (
	// ErrMissingDateTag indicates the image carries no DateTimeOriginal tag.
	ErrMissingDateTag = errors.New("missing EXIF datetime tag")

	// ErrInvalidDateTag indicates the DateTimeOriginal tag exists but does not
	// hold a parseable "YYYY:MM:DD hh:mm:ss" value.
	ErrInvalidDateTag = errors.New("invalid EXIF datetime tag")
)

// exifDatetimeLayout is the datetime encoding EXIF mandates for date tags.
const exifDatetimeLayout = "2006:01:02 15:04:05"

// NaiveDatetime is a zone-less wall-clock datetime.
type NaiveDatetime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

func (n NaiveDatetime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second)
}

// Extractor reads capture datetimes from image files on disk.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// NaiveDatetime returns the capture datetime embedded in the image at path.
func (e *Extractor) NaiveDatetime(path string) (NaiveDatetime, error) {
	f, err := os.Open(path)
	if err != nil {
		return NaiveDatetime{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	x, err := exif.Decode(f)
	if err != nil {
		return NaiveDatetime{}, fmt.Errorf("failed to decode EXIF data: %w", err)
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		var notPresent exif.TagNotPresentError
		if errors.As(err, &notPresent) {
			return NaiveDatetime{}, fmt.Errorf("%w: %s", ErrMissingDateTag, exif.DateTimeOriginal)
		}
		return NaiveDatetime{}, fmt.Errorf("failed to read tag %s: %w", exif.DateTimeOriginal, err)
	}

	raw, err := tag.StringVal()
	if err != nil {
		return NaiveDatetime{}, fmt.Errorf("%w: %s is not ASCII", ErrInvalidDateTag, exif.DateTimeOriginal)
	}

	return parseExifDatetime(raw)
}

// parseExifDatetime parses the raw DateTimeOriginal string. Trailing NULs and
// whitespace are tolerated; some writers pad the fixed-width field.
func parseExifDatetime(raw string) (NaiveDatetime, error) {
	cleaned := strings.TrimRight(strings.TrimSpace(raw), "\x00")
	t, err := time.Parse(exifDatetimeLayout, cleaned)
	if err != nil {
		return NaiveDatetime{}, fmt.Errorf("%w: %q", ErrInvalidDateTag, raw)
	}
	return NaiveDatetime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}, nil
}
