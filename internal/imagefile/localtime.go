package imagefile

import (
	"errors"
	"time"
)

var (
	// ErrInvalidLocalDatetime indicates the wall-clock time falls in a zone
	// transition gap (spring forward) and never occurs in absolute time.
	ErrInvalidLocalDatetime = errors.New("invalid local datetime")

	// ErrAmbiguousLocalDatetime indicates the wall-clock time falls in a zone
	// transition fold (fall back) and occurs twice in absolute time.
	ErrAmbiguousLocalDatetime = errors.New("ambiguous local datetime")
)

// offsetProbe is how far around the nominal instant zone offsets are sampled.
// It exceeds the widest real UTC offset (UTC±14) plus the largest transition
// shift, so both sides of any transition adjacent to the nominal time are
// observed.
const offsetProbe = 30 * time.Hour

// In resolves the naive datetime to a unique absolute instant in loc.
//
// A wall-clock value is only accepted when exactly one instant displays it in
// loc. Gap times yield ErrInvalidLocalDatetime, fold times
// ErrAmbiguousLocalDatetime; the ambiguity is never resolved by picking the
// earlier or later instant.
func (n NaiveDatetime) In(loc *time.Location) (time.Time, error) {
	nominal := time.Date(n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second, 0, time.UTC)

	// Distinct UTC offsets in effect around the nominal instant. Each offset
	// proposes one candidate instant for the wall-clock value.
	offsets := make(map[int]struct{}, 3)
	for _, d := range []time.Duration{-offsetProbe, 0, offsetProbe} {
		_, off := nominal.Add(d).In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var (
		resolved time.Time
		matches  int
	)
	for off := range offsets {
		candidate := nominal.Add(-time.Duration(off) * time.Second).In(loc)
		if n.displayedBy(candidate) {
			resolved = candidate
			matches++
		}
	}

	switch matches {
	case 0:
		return time.Time{}, ErrInvalidLocalDatetime
	case 1:
		return resolved, nil
	default:
		return time.Time{}, ErrAmbiguousLocalDatetime
	}
}

// displayedBy reports whether t shows this wall-clock value.
func (n NaiveDatetime) displayedBy(t time.Time) bool {
	return t.Year() == n.Year &&
		t.Month() == n.Month &&
		t.Day() == n.Day &&
		t.Hour() == n.Hour &&
		t.Minute() == n.Minute &&
		t.Second() == n.Second
}
