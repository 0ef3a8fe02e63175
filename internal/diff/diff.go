// Package diff renders side-by-side differences between a model output and
// its reference text.
//
// The default mode is positional: lines (and words or characters within a
// line) are compared by index after padding the shorter side with empty
// strings. An inserted or deleted line therefore shifts every following pair
// and marks it as different. Aligned mode uses a sequence matcher instead and
// only marks the lines that actually changed.
package diff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

type Mode string

const (
	ModePositional Mode = "positional"
	ModeAligned    Mode = "aligned"
)

type Granularity string

const (
	GranularityLine Granularity = "line"
	GranularityWord Granularity = "word"
	GranularityChar Granularity = "char"
)

// LineDiff is one row of a side-by-side view. LeftLine and RightLine are the
// 1-based source line numbers, 0 when the side is padding.
type LineDiff struct {
	Row         int       `json:"row"`
	LeftLine    int       `json:"left_line"`
	RightLine   int       `json:"right_line"`
	Left        string    `json:"left"`
	Right       string    `json:"right"`
	IsDifferent bool      `json:"is_different"`
	LeftParts   []Segment `json:"left_parts,omitempty"`
	RightParts  []Segment `json:"right_parts,omitempty"`
}

// Segment is a run of text inside a line, flagged when it differs from the
// token at the same position on the other side.
type Segment struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// Lines compares a and b line by line at equal positions.
func Lines(a, b string) []LineDiff {
	left := strings.Split(a, "\n")
	right := strings.Split(b, "\n")
	n := max(len(left), len(right))

	out := make([]LineDiff, n)
	for i := 0; i < n; i++ {
		d := LineDiff{Row: i + 1}
		if i < len(left) {
			d.Left = left[i]
			d.LeftLine = i + 1
		}
		if i < len(right) {
			d.Right = right[i]
			d.RightLine = i + 1
		}
		d.IsDifferent = d.Left != d.Right
		out[i] = d
	}
	return out
}

// Aligned compares a and b after aligning equal lines.
func Aligned(a, b string) []LineDiff {
	left := strings.Split(a, "\n")
	right := strings.Split(b, "\n")

	m := difflib.NewMatcher(left, right)
	var out []LineDiff
	add := func(i, j int) {
		d := LineDiff{Row: len(out) + 1}
		if i >= 0 {
			d.Left = left[i]
			d.LeftLine = i + 1
		}
		if j >= 0 {
			d.Right = right[j]
			d.RightLine = j + 1
		}
		d.IsDifferent = i < 0 || j < 0 || d.Left != d.Right
		out = append(out, d)
	}

	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				add(op.I1+k, op.J1+k)
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				add(i, -1)
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				add(-1, j)
			}
		case 'r':
			n := max(op.I2-op.I1, op.J2-op.J1)
			for k := 0; k < n; k++ {
				i, j := op.I1+k, op.J1+k
				if i >= op.I2 {
					i = -1
				}
				if j >= op.J2 {
					j = -1
				}
				add(i, j)
			}
		}
	}
	return out
}

// Words marks whitespace-separated tokens that differ at the same position.
// Whitespace runs are kept as their own tokens so the segments join back to
// the original text.
func Words(a, b string) (left, right []Segment) {
	return pairSegments(tokenize(a), tokenize(b))
}

// Chars marks runes that differ at the same position.
func Chars(a, b string) (left, right []Segment) {
	return pairSegments(runes(a), runes(b))
}

func pairSegments(l, r []string) (left, right []Segment) {
	n := max(len(l), len(r))
	left = make([]Segment, 0, len(l))
	right = make([]Segment, 0, len(r))
	for i := 0; i < n; i++ {
		var lt, rt string
		if i < len(l) {
			lt = l[i]
		}
		if i < len(r) {
			rt = r[i]
		}
		changed := lt != rt
		if i < len(l) {
			left = appendSegment(left, lt, changed)
		}
		if i < len(r) {
			right = appendSegment(right, rt, changed)
		}
	}
	return left, right
}

// appendSegment merges consecutive tokens with the same flag.
func appendSegment(segs []Segment, text string, changed bool) []Segment {
	if n := len(segs); n > 0 && segs[n-1].Changed == changed {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, Segment{Text: text, Changed: changed})
}

func tokenize(s string) []string {
	var tokens []string
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i > 0 && space != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

func runes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
