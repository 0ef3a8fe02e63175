package diff

// Options selects how a Comparison is built. Zero values mean positional
// line comparison.
type Options struct {
	Mode        Mode
	Granularity Granularity
}

// Comparison is a rendered diff plus its summary counts.
type Comparison struct {
	Mode           Mode        `json:"mode"`
	Granularity    Granularity `json:"granularity"`
	Lines          []LineDiff  `json:"lines"`
	TotalLines     int         `json:"total_lines"`
	DifferentLines int         `json:"different_lines"`
}

// SimilarityPercent is the share of identical rows.
func (c Comparison) SimilarityPercent() float64 {
	if c.TotalLines == 0 {
		return 100
	}
	return float64(c.TotalLines-c.DifferentLines) / float64(c.TotalLines) * 100
}

// Compare diffs a against b and, for word or char granularity, fills the
// segments of every differing row.
func Compare(a, b string, opts Options) Comparison {
	if opts.Mode == "" {
		opts.Mode = ModePositional
	}
	if opts.Granularity == "" {
		opts.Granularity = GranularityLine
	}

	var lines []LineDiff
	if opts.Mode == ModeAligned {
		lines = Aligned(a, b)
	} else {
		lines = Lines(a, b)
	}

	c := Comparison{
		Mode:        opts.Mode,
		Granularity: opts.Granularity,
		Lines:       lines,
		TotalLines:  len(lines),
	}
	for i := range lines {
		if !lines[i].IsDifferent {
			continue
		}
		c.DifferentLines++
		switch opts.Granularity {
		case GranularityWord:
			lines[i].LeftParts, lines[i].RightParts = Words(lines[i].Left, lines[i].Right)
		case GranularityChar:
			lines[i].LeftParts, lines[i].RightParts = Chars(lines[i].Left, lines[i].Right)
		}
	}
	return c
}

// ParseMode falls back to positional for unknown values.
func ParseMode(s string) Mode {
	if Mode(s) == ModeAligned {
		return ModeAligned
	}
	return ModePositional
}

// ParseGranularity falls back to line for unknown values.
func ParseGranularity(s string) Granularity {
	switch g := Granularity(s); g {
	case GranularityWord, GranularityChar:
		return g
	}
	return GranularityLine
}
