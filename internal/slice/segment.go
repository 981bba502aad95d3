package slice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSegment is returned for a segment outside the fixed FSD set.
var ErrInvalidSegment = errors.New("invalid segment")

// Segment is a fixed-purpose subdirectory inside a slice.
type Segment string

const (
	UI     Segment = "ui"
	API    Segment = "api"
	Lib    Segment = "lib"
	Model  Segment = "model"
	Config Segment = "config"
)

// Segments lists every known segment in picker order.
var Segments = []Segment{UI, API, Lib, Model, Config}

// Valid reports whether s is one of the known segments.
func (s Segment) Valid() bool {
	for _, known := range Segments {
		if s == known {
			return true
		}
	}
	return false
}

// SegmentNames returns the known segment names as strings.
func SegmentNames() []string {
	return Names(Segments)
}

// Names converts segments to their string names.
func Names(segments []Segment) []string {
	names := make([]string, len(segments))
	for i, s := range segments {
		names[i] = string(s)
	}
	return names
}

// ParseSegments converts names to segments, keeping the given order and
// dropping repeats. Blank entries are skipped.
func ParseSegments(names []string) ([]Segment, error) {
	var out []Segment
	seen := make(map[Segment]bool)
	for _, n := range names {
		s := Segment(strings.TrimSpace(n))
		if s == "" {
			continue
		}
		if !s.Valid() {
			return nil, fmt.Errorf("%w %q (expected one of: %s)", ErrInvalidSegment, n, strings.Join(SegmentNames(), ", "))
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
