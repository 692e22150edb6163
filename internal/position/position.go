package position

import (
	"fmt"
	"sort"
	"strings"
)

// Position is a single point in a source file.
// Line and Column are 1-based, Offset is the 0-based byte offset from the
// start of the file. The zero value marks an unknown position.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

// Known reports whether p points at an actual source location.
func (p Position) Known() bool { return p.Line > 0 }

// Before reports whether p precedes q within the same file.
func (p Position) Before(q Position) bool { return p.Offset < q.Offset }

func (p Position) String() string {
	if !p.Known() {
		return "<unknown>"
	}
	if p.File == "" {
		return fmt.Sprintf("%d,%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d,%d", p.File, p.Line, p.Column)
}

// Interval is a half-open [Start, End) slice of a single file.
type Interval struct {
	Start Position
	End   Position
}

// Empty reports whether the interval covers no bytes.
func (i Interval) Empty() bool { return i.Start.Offset >= i.End.Offset }

func (i Interval) String() string {
	switch {
	case !i.Start.Known():
		return "<unknown>"
	case i.Start.Line == i.End.Line:
		return fmt.Sprintf("%d,%d-%d", i.Start.Line, i.Start.Column, i.End.Column)
	default:
		return fmt.Sprintf("%d,%d-%d,%d", i.Start.Line, i.Start.Column, i.End.Line, i.End.Column)
	}
}

// GetRange returns the interval as a range.
func (i Interval) GetRange() Range { return IntervalRange(i) }

// Range is where a piece of syntax came from: an ordered sequence of
// disjoint, non-adjacent intervals within one file. The zero value is the
// empty range, carried by syntax with no source attachment.
type Range struct {
	intervals []Interval
}

// NoRange is the range of generated syntax.
var NoRange = Range{}

// IntervalRange covers a single interval. An empty interval yields the
// empty range.
func IntervalRange(i Interval) Range {
	if i.Empty() {
		return Range{}
	}
	return Range{intervals: []Interval{i}}
}

// RangeBetween covers [start, end). Inverted or equal endpoints yield the
// empty range.
func RangeBetween(start, end Position) Range {
	return IntervalRange(Interval{Start: start, End: end})
}

// PointRange covers the single byte at p.
func PointRange(p Position) Range {
	if !p.Known() {
		return Range{}
	}
	end := p
	end.Column++
	end.Offset++
	return Range{intervals: []Interval{{Start: p, End: end}}}
}

// Empty reports whether r covers nothing.
func (r Range) Empty() bool { return len(r.intervals) == 0 }

// Intervals returns a copy of the covered intervals in order.
func (r Range) Intervals() []Interval {
	if len(r.intervals) == 0 {
		return nil
	}
	out := make([]Interval, len(r.intervals))
	copy(out, r.intervals)
	return out
}

// Start returns the first covered position, or the zero Position when r is
// empty.
func (r Range) Start() Position {
	if r.Empty() {
		return Position{}
	}
	return r.intervals[0].Start
}

// End returns the position just past the last covered byte, or the zero
// Position when r is empty.
func (r Range) End() Position {
	if r.Empty() {
		return Position{}
	}
	return r.intervals[len(r.intervals)-1].End
}

// File returns the file the range lies in, "" when empty.
func (r Range) File() string {
	if r.Empty() {
		return ""
	}
	return r.intervals[0].Start.File
}

// Continuous collapses r to its convex hull, a single interval from the
// first covered position to the last.
func (r Range) Continuous() Range {
	if len(r.intervals) <= 1 {
		return r
	}
	return Range{intervals: []Interval{{Start: r.Start(), End: r.End()}}}
}

// GetRange returns r itself.
func (r Range) GetRange() Range { return r }

// KillRange drops the source attachment.
func (r Range) KillRange() Range { return Range{} }

func (r Range) String() string {
	if r.Empty() {
		return ""
	}
	parts := make([]string, len(r.intervals))
	for k, iv := range r.intervals {
		parts[k] = iv.String()
	}
	body := strings.Join(parts, ";")
	if f := r.File(); f != "" {
		return f + ":" + body
	}
	return body
}

// Fuse merges two ranges into one covering both, coalescing overlap and
// adjacency. The empty range is the identity.
func Fuse(a, b Range) Range {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	merged := make([]Interval, 0, len(a.intervals)+len(b.intervals))
	merged = append(merged, a.intervals...)
	merged = append(merged, b.intervals...)
	return Range{intervals: normalize(merged)}
}

// normalize sorts intervals by start offset and coalesces any that overlap
// or touch. The input slice is reused.
func normalize(ivs []Interval) []Interval {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start.Offset != ivs[j].Start.Offset {
			return ivs[i].Start.Offset < ivs[j].Start.Offset
		}
		return ivs[i].End.Offset < ivs[j].End.Offset
	})
	out := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.Start.Offset <= last.End.Offset {
			if iv.End.Offset > last.End.Offset {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}
