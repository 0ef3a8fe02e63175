package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"release-management-service/internal/core/domain"
	"release-management-service/internal/diff"
)

func newEvalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eval",
		Aliases: []string{"evaluations"},
		Short:   "Run and manage evaluation jobs",
	}
	cmd.AddCommand(
		newEvalRunCommand(a),
		newEvalStatusCommand(a),
		newEvalWatchCommand(a),
		newEvalListCommand(a),
		newEvalDeleteCommand(a),
		newEvalPurgeCommand(a),
		newEvalDiffCommand(a),
		newEvalDownloadCommand(a),
		newEvalModesCommand(a),
	)
	return cmd
}

// printProgress is the text-mode update callback for --wait and watch.
func (a *app) printProgress(job *domain.EvaluationJob) {
	if a.json() {
		return
	}
	line := fmt.Sprintf("job %d: %s (stage %d/6, %d%%)", job.ID, job.Status, job.Status.Stage(), job.Progress)
	if job.ErrorMessage != "" {
		line += ": " + job.ErrorMessage
	}
	fmt.Fprintln(a.out, line)
}

func (a *app) renderJob(job *domain.EvaluationJob) error {
	return a.render(job, func(w io.Writer) {
		renderJobs(w, []domain.EvaluationJob{*job})
		if job.Status == domain.EvaluationStatusCompleted {
			fmt.Fprintf(w, "finetuned BLEU %s COMET %s, base BLEU %s COMET %s\n",
				formatScore(job.FinetunedBLEU), formatScore(job.FinetunedCOMET),
				formatScore(job.BaseBLEU), formatScore(job.BaseCOMET))
		}
	})
}

func newEvalRunCommand(a *app) *cobra.Command {
	var (
		req  domain.EvaluationRunRequest
		wait bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an evaluation job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := a.evals.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			if !wait {
				return a.renderJob(job)
			}
			final, err := a.evals.Watch(cmd.Context(), job.ID, a.printProgress)
			if err != nil {
				return err
			}
			return a.renderJob(final)
		},
	}
	f := cmd.Flags()
	f.Int64Var(&req.VersionID, "version", 0, "model version id")
	f.Int64Var(&req.TestsetID, "testset", 0, "testset id")
	f.StringVar(&req.ModeType, "mode", "", "evaluation mode (see 'eval modes')")
	f.StringVar(&req.SubModeType, "sub-mode", "", "evaluation sub mode")
	f.BoolVar(&req.EvaluateBaseModel, "base", false, "also translate with the base model")
	f.BoolVar(&req.AutoAddToDetails, "auto-add", false, "store scores as a training result when the job completes")
	f.BoolVarP(&wait, "wait", "w", false, "poll until the job completes or fails")
	return cmd
}

func newEvalStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <job-id>",
		Short: "Show the current state of an evaluation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			job, err := a.evals.Status(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.renderJob(job)
		},
	}
}

func newEvalWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <job-id>",
		Short: "Poll an evaluation job until it completes or fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			job, err := a.evals.Watch(cmd.Context(), id, a.printProgress)
			if err != nil {
				return err
			}
			return a.renderJob(job)
		},
	}
}

func newEvalListCommand(a *app) *cobra.Command {
	var (
		filter domain.EvaluationFilter
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List evaluation jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Status = domain.EvaluationStatus(status)
			page, err := a.evals.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return a.render(page, func(w io.Writer) {
				renderJobs(w, page.Items)
				fmt.Fprintf(w, "%d of %d jobs\n", len(page.Items), page.Total)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&filter.VersionID, "version", 0, "only jobs of this model version")
	f.StringVar(&status, "status", "", "only jobs in this status (e.g. COMPLETED)")
	f.IntVar(&filter.Skip, "skip", 0, "jobs to skip")
	f.IntVar(&filter.Limit, "limit", domain.DefaultPageSize, "page size")
	return cmd
}

func newEvalDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <job-id>...",
		Short: "Delete evaluation jobs in one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := domain.NewJobSelection()
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				sel.Select(id)
			}
			deleted, err := a.evals.DeleteSelected(cmd.Context(), sel)
			if err != nil {
				return err
			}
			return a.render(map[string]int{"deleted_count": deleted}, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %d evaluation jobs\n", deleted)
			})
		},
	}
}

func newEvalPurgeCommand(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every evaluation job requested within a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r domain.DateRange
			var err error
			if from != "" {
				if r.Start, err = time.Parse("2006-01-02", from); err != nil {
					return fmt.Errorf("--from must be YYYY-MM-DD")
				}
			}
			if to != "" {
				if r.End, err = time.Parse("2006-01-02", to); err != nil {
					return fmt.Errorf("--to must be YYYY-MM-DD")
				}
			}
			deleted, err := a.evals.DeleteByDateRange(cmd.Context(), r)
			if err != nil {
				return err
			}
			return a.render(map[string]int{"deleted_count": deleted}, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %d evaluation jobs\n", deleted)
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day, inclusive (YYYY-MM-DD)")
	return cmd
}

func newEvalDiffCommand(a *app) *cobra.Command {
	var mode, granularity string
	cmd := &cobra.Command{
		Use:   "diff <job-id>",
		Short: "Compare the translated outputs of a job against the reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cmp, err := a.evals.Compare(cmd.Context(), id, diff.Options{
				Mode:        diff.ParseMode(mode),
				Granularity: diff.ParseGranularity(granularity),
			})
			if err != nil {
				return err
			}
			return a.render(cmp, func(w io.Writer) {
				renderComparison(w, "finetuned vs reference", cmp.Finetuned)
				if cmp.Base != nil {
					fmt.Fprintln(w)
					renderComparison(w, "base vs reference", *cmp.Base)
				}
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(diff.ModePositional), "line matching (positional|aligned)")
	cmd.Flags().StringVar(&granularity, "granularity", string(diff.GranularityLine), "highlight unit (line|word|char)")
	return cmd
}

func newEvalDownloadCommand(a *app) *cobra.Command {
	var outputType, dir string
	cmd := &cobra.Command{
		Use:   "download <job-id>",
		Short: "Download a text produced or used by an evaluation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			dl, err := a.evals.DownloadOutput(cmd.Context(), id, outputType)
			if err != nil {
				return err
			}
			return a.save(dl, dir)
		},
	}
	cmd.Flags().StringVarP(&outputType, "output-type", "t", string(domain.OutputTypeFinetuned), "base|finetuned|reference")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to save into")
	return cmd
}

func newEvalModesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the evaluation modes offered by the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			modes, err := a.evals.ModeTypes(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(modes, func(w io.Writer) {
				t := newTable(w, "Value", "Label", "Sub modes", "Description")
				for _, m := range modes {
					t.AppendRow(table.Row{m.Value, m.Label, fmt.Sprint(m.SubModes), m.Description})
				}
				t.Render()
			})
		},
	}
}
