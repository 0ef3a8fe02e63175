package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"release-management-service/internal/core/domain"
)

func newSQECommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqe",
		Short: "Manage SQE (manual quality evaluation) results",
	}
	cmd.AddCommand(newSQEListCommand(a), newSQECreateCommand(a), newSQEAnalyticsCommand(a))
	return cmd
}

func newSQEListCommand(a *app) *cobra.Command {
	var filter domain.SQEFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SQE results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.sqe.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return a.render(page, func(w io.Writer) {
				t := newTable(w, "ID", "Pair", "Version", "Score", "Cases", "Changed %", "Critical", "Tested by", "Date")
				for _, r := range page.Items {
					t.AppendRow(table.Row{
						r.ID, r.LangPairName, r.Version, fmt.Sprintf("%.2f", r.AverageScore), r.TotalTestCases,
						fmt.Sprintf("%.1f", r.TestCaseChangesPercent), r.HasCriticalIssue, r.TestedBy, formatDate(r.TestDate),
					})
				}
				t.Render()
				fmt.Fprintf(w, "%d of %d results\n", len(page.Items), page.Total)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&filter.LangPairID, "lang-pair", 0, "only results of this language pair")
	f.IntVar(&filter.Skip, "skip", 0, "results to skip")
	f.IntVar(&filter.Limit, "limit", domain.DefaultPageSize, "page size")
	return cmd
}

func newSQECreateCommand(a *app) *cobra.Command {
	var (
		in       domain.SQEResultInput
		testDate string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record an SQE result for a model version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if testDate != "" {
				d, err := time.Parse("2006-01-02", testDate)
				if err != nil {
					return fmt.Errorf("--test-date must be YYYY-MM-DD")
				}
				in.TestDate = &d
			}
			res, err := a.sqe.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(res, func(w io.Writer) {
				fmt.Fprintf(w, "created SQE result %d for version %d\n", res.ID, res.VersionID)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&in.VersionID, "version", 0, "model version id")
	f.Float64Var(&in.AverageScore, "score", 0, "average score (1.0-3.0)")
	f.IntVar(&in.TotalTestCases, "cases", 0, "total test cases")
	f.Float64Var(&in.TestCaseChangesPercent, "changed", 0, "share of test cases that changed, in percent")
	f.BoolVar(&in.HasCriticalIssue, "critical", false, "at least one case scored 1 point")
	f.StringVar(&in.Notes, "notes", "", "notes")
	f.StringVar(&in.TestedBy, "tested-by", "", "tester name")
	f.StringVar(&testDate, "test-date", "", "test date (YYYY-MM-DD)")
	return cmd
}

func newSQEAnalyticsCommand(a *app) *cobra.Command {
	var langPairID int64
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show SQE score distribution and trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			an, err := a.sqe.Analytics(cmd.Context(), langPairID)
			if err != nil {
				return err
			}
			return a.render(an, func(w io.Writer) {
				fmt.Fprintf(w, "%d results, average %.2f, %d with critical issues\n",
					an.TotalResults, an.AverageScore, an.CriticalIssues)

				dist := newTable(w, "Range", "Count")
				for _, b := range an.ScoreDistribution {
					dist.AppendRow(table.Row{b.Range, b.Count})
				}
				dist.Render()

				trend := newTable(w, "Version", "Score", "Created")
				for _, p := range an.Trend {
					trend.AppendRow(table.Row{p.Version, fmt.Sprintf("%.2f", p.AverageScore), p.CreatedAt.Format("2006-01-02")})
				}
				trend.Render()
			})
		},
	}
	cmd.Flags().Int64Var(&langPairID, "lang-pair", 0, "only results of this language pair")
	return cmd
}
