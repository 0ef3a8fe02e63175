package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"release-management-service/internal/core/domain"
	"release-management-service/internal/diff"
)

func (a *app) json() bool { return a.format == formatJSON }

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render writes v as JSON or hands the writer to the text renderer.
func (a *app) render(v any, textFn func(w io.Writer)) error {
	if a.json() {
		return a.printJSON(v)
	}
	textFn(a.out)
	return nil
}

func newTable(w io.Writer, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatDelta(d float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%+.2f", d)
}

func formatOptional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func renderJobs(w io.Writer, jobs []domain.EvaluationJob) {
	t := newTable(w, "Job", "Version", "Testset", "Status", "Progress", "BLEU", "COMET", "Requested")
	for _, j := range jobs {
		t.AppendRow(table.Row{
			j.ID, j.VersionID, j.TestsetID, j.Status,
			fmt.Sprintf("%d%%", j.Progress),
			formatScore(j.FinetunedBLEU), formatScore(j.FinetunedCOMET),
			j.RequestedAt.Format(time.DateTime),
		})
	}
	t.Render()
}

// renderComparison prints a side-by-side table. Changed rows are marked with
// "!" and changed segments are highlighted.
func renderComparison(w io.Writer, title string, c diff.Comparison) {
	fmt.Fprintf(w, "%s: %d/%d lines differ (%.1f%% similar, %s, %s)\n",
		title, c.DifferentLines, c.TotalLines, c.SimilarityPercent(), c.Mode, c.Granularity)

	t := newTable(w, "", "#", "Output", "Reference")
	for _, l := range c.Lines {
		marker := ""
		left, right := l.Left, l.Right
		if l.IsDifferent {
			marker = "!"
			if len(l.LeftParts) > 0 || len(l.RightParts) > 0 {
				left = highlight(l.LeftParts, text.FgRed)
				right = highlight(l.RightParts, text.FgGreen)
			} else {
				left = text.FgRed.Sprint(left)
				right = text.FgGreen.Sprint(right)
			}
		}
		t.AppendRow(table.Row{marker, l.Row, left, right})
	}
	t.Render()
}

func highlight(segs []diff.Segment, color text.Color) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Changed {
			b.WriteString(color.Sprint(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
