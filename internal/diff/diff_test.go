package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func differentRows(lines []LineDiff) []int {
	var rows []int
	for _, l := range lines {
		if l.IsDifferent {
			rows = append(rows, l.Row)
		}
	}
	return rows
}

func TestLines_SingleChangedLine(t *testing.T) {
	lines := Lines("a\nb", "a\nc")

	require.Len(t, lines, 2)
	assert.False(t, lines[0].IsDifferent)
	assert.True(t, lines[1].IsDifferent)
	assert.Equal(t, "b", lines[1].Left)
	assert.Equal(t, "c", lines[1].Right)
}

func TestLines_InsertionShiftsEveryFollowingLine(t *testing.T) {
	lines := Lines("a\nb\nc", "x\na\nb\nc")

	require.Len(t, lines, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, differentRows(lines))

	// the shorter side is padded
	assert.Equal(t, 0, lines[3].LeftLine)
	assert.Equal(t, "", lines[3].Left)
	assert.Equal(t, 4, lines[3].RightLine)
}

func TestLines_PaddingEqualsEmptyLine(t *testing.T) {
	lines := Lines("a\n", "a")

	require.Len(t, lines, 2)
	assert.Empty(t, differentRows(lines))
}

func TestLines_Identical(t *testing.T) {
	assert.Empty(t, differentRows(Lines("x\ny\nz", "x\ny\nz")))
	assert.Len(t, Lines("", ""), 1)
}

func TestAligned_InsertionMarksOnlyInsertedLine(t *testing.T) {
	lines := Aligned("a\nb\nc", "x\na\nb\nc")

	require.Len(t, lines, 4)
	assert.Equal(t, []int{1}, differentRows(lines))
	assert.Equal(t, 0, lines[0].LeftLine)
	assert.Equal(t, 1, lines[0].RightLine)
	assert.Equal(t, 1, lines[1].LeftLine)
	assert.Equal(t, 2, lines[1].RightLine)
}

func TestAligned_ReplaceAndDelete(t *testing.T) {
	lines := Aligned("a\nb\nc\nd", "a\nB\nd")

	assert.Equal(t, "a", lines[0].Left)
	assert.False(t, lines[0].IsDifferent)
	assert.Equal(t, "d", lines[len(lines)-1].Left)
	assert.False(t, lines[len(lines)-1].IsDifferent)
	assert.Len(t, differentRows(lines), 2)
}

func TestWords(t *testing.T) {
	left, right := Words("the cat sat", "the dog sat")

	assert.Equal(t, []Segment{
		{Text: "the ", Changed: false},
		{Text: "cat", Changed: true},
		{Text: " sat", Changed: false},
	}, left)
	assert.Equal(t, []Segment{
		{Text: "the ", Changed: false},
		{Text: "dog", Changed: true},
		{Text: " sat", Changed: false},
	}, right)
}

func TestWords_PositionalShift(t *testing.T) {
	left, right := Words("a b", "x a b")

	assert.Equal(t, "a b", joinSegments(left))
	assert.Equal(t, "x a b", joinSegments(right))
	assert.True(t, left[0].Changed)
	assert.Equal(t, Segment{Text: "a b", Changed: true}, right[len(right)-1])
}

func TestChars(t *testing.T) {
	left, right := Chars("kitten", "sitten")
	assert.Equal(t, []Segment{{Text: "k", Changed: true}, {Text: "itten"}}, left)
	assert.Equal(t, []Segment{{Text: "s", Changed: true}, {Text: "itten"}}, right)

	left, _ = Chars("héllo", "hallo")
	assert.Equal(t, []Segment{{Text: "h"}, {Text: "é", Changed: true}, {Text: "llo"}}, left)
}

func TestChars_UnequalLength(t *testing.T) {
	left, right := Chars("ab", "abcd")
	assert.Equal(t, []Segment{{Text: "ab"}}, left)
	assert.Equal(t, []Segment{{Text: "ab"}, {Text: "cd", Changed: true}}, right)
}

func TestCompare(t *testing.T) {
	c := Compare("hello world\nsame", "hello there\nsame", Options{Granularity: GranularityWord})

	assert.Equal(t, ModePositional, c.Mode)
	assert.Equal(t, 2, c.TotalLines)
	assert.Equal(t, 1, c.DifferentLines)
	assert.InDelta(t, 50.0, c.SimilarityPercent(), 1e-9)
	assert.NotEmpty(t, c.Lines[0].LeftParts)
	assert.Nil(t, c.Lines[1].LeftParts)
}

func TestCompare_AlignedLineGranularity(t *testing.T) {
	c := Compare("a\nb\nc", "x\na\nb\nc", Options{Mode: ModeAligned})

	assert.Equal(t, 1, c.DifferentLines)
	assert.Nil(t, c.Lines[0].RightParts)
}

func TestParseOptions(t *testing.T) {
	assert.Equal(t, ModeAligned, ParseMode("aligned"))
	assert.Equal(t, ModePositional, ParseMode("lcs"))
	assert.Equal(t, GranularityChar, ParseGranularity("char"))
	assert.Equal(t, GranularityLine, ParseGranularity(""))
}

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
