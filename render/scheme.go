// Package render implements the render-scheme algebra: a string plus a
// set of non-overlapping styled byte ranges, with substring and
// truncation operations that remap those ranges.
package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Range is a half-open byte range [Start, End).
type Range struct {
	Start, End int
}

func (r Range) len() int { return r.End - r.Start }

// overlaps reports non-inclusive overlap: a.start < b.end && b.start < a.end.
func (r Range) overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Range) intersect(o Range) (Range, bool) {
	start := max(r.Start, o.Start)
	end := min(r.End, o.End)
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Scheme is a styled byte range attached to a line.
type Scheme struct {
	Range Range
	Style lipgloss.Style
}

// Line is a string plus an ordered set of pairwise non-overlapping
// (at render time) styled byte ranges.
type Line struct {
	Content string
	Schemes []Scheme
}

// New creates a Line with no schemes attached.
func New(content string) Line {
	return Line{Content: content}
}

// AddSchemeIfNotOverlap appends (r, style) unless r overlaps any scheme
// already present, in which case it is silently rejected rather than
// split — the caller (Finder) relies on this to implement priority:
// higher-priority schemes are added first and win ties.
func (l *Line) AddSchemeIfNotOverlap(r Range, style lipgloss.Style) bool {
	for _, s := range l.Schemes {
		if s.Range.overlaps(r) {
			return false
		}
	}
	l.Schemes = append(l.Schemes, Scheme{Range: r, Style: style})
	return true
}

// Clear empties content and schemes.
func (l *Line) Clear() {
	l.Content = ""
	l.Schemes = nil
}

// Substr returns a new Line whose content is Content[r.Start:r.End]
// (clamped to len(Content)) and whose schemes are the intersections of
// existing ranges with r, rebased to zero.
func (l Line) Substr(r Range) Line {
	end := r.End
	if end > len(l.Content) {
		end = len(l.Content)
	}
	start := r.Start
	if start > end {
		start = end
	}
	out := Line{Content: l.Content[start:end]}
	clipped := Range{Start: start, End: end}
	for _, s := range l.Schemes {
		if inter, ok := s.Range.intersect(clipped); ok {
			out.Schemes = append(out.Schemes, Scheme{
				Range: Range{Start: inter.Start - start, End: inter.End - start},
				Style: s.Style,
			})
		}
	}
	return out
}

// Truncate truncates content to w bytes. Schemes beyond w are dropped;
// schemes straddling w keep their [start, w) portion.
func (l Line) Truncate(w int) Line {
	if w >= len(l.Content) {
		return l
	}
	out := Line{Content: l.Content[:w]}
	for _, s := range l.Schemes {
		if s.Range.Start >= w {
			continue
		}
		end := s.Range.End
		if end > w {
			end = w
		}
		out.Schemes = append(out.Schemes, Scheme{Range: Range{Start: s.Range.Start, End: end}, Style: s.Style})
	}
	return out
}

// TruncateRuneSafe behaves like Truncate but never splits a multi-byte
// UTF-8 rune: if byte w would land mid-rune, it backs up to the
// previous rune boundary. Substr stays strictly byte-level per the
// spec's substr-compositionality law; the controller's body rendering
// cuts lines with Substr and does not call TruncateRuneSafe.
func (l Line) TruncateRuneSafe(w int) Line {
	if w >= len(l.Content) {
		return l
	}
	for w > 0 && isUTF8Continuation(l.Content[w]) {
		w--
	}
	return l.Truncate(w)
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Render produces a display string by wrapping each styled range in its
// style's escape sequences. Schemes are sorted by start; ranges are
// asserted non-overlapping (a contract enforced at composition time by
// AddSchemeIfNotOverlap, re-checked here as a guard against misuse) and
// replaced in reverse order so earlier replacements don't shift later
// byte offsets.
func (l Line) Render() string {
	if len(l.Schemes) == 0 {
		return l.Content
	}
	sorted := make([]Scheme, len(l.Schemes))
	copy(sorted, l.Schemes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Range.Start < sorted[j].Range.Start })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Range.Start < sorted[i-1].Range.End {
			panic("render: overlapping schemes at render time")
		}
	}

	out := l.Content
	for i := len(sorted) - 1; i >= 0; i-- {
		s := sorted[i]
		end := s.Range.End
		if end > len(out) {
			end = len(out)
		}
		if s.Range.Start > end {
			continue
		}
		styled := s.Style.Render(out[s.Range.Start:end])
		out = out[:s.Range.Start] + styled + out[end:]
	}
	return out
}
