package template

import "strings"

// Segment is a run of display text with uniform emphasis.
type Segment struct {
	Text string
	Bold bool
}

// Segments splits a substituted string into plain and emphasized runs. The
// raster renderer consumes these; markers never nest because Replace only
// wraps substituted values.
func Segments(s string) []Segment {
	const openTag, closeTag = "<strong>", "</strong>"

	var segs []Segment
	for s != "" {
		start := strings.Index(s, openTag)
		if start < 0 {
			segs = append(segs, Segment{Text: s})
			break
		}
		if start > 0 {
			segs = append(segs, Segment{Text: s[:start]})
		}
		rest := s[start+len(openTag):]
		end := strings.Index(rest, closeTag)
		if end < 0 {
			// Unterminated marker: treat the remainder as emphasized.
			segs = append(segs, Segment{Text: rest, Bold: true})
			break
		}
		segs = append(segs, Segment{Text: rest[:end], Bold: true})
		s = rest[end+len(closeTag):]
	}
	return segs
}

// Plain strips emphasis markers, keeping the text.
func Plain(s string) string {
	var b strings.Builder
	for _, seg := range Segments(s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
