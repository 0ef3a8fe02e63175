package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show system statistics, storage usage and active evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ov, err := a.dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(ov, func(w io.Writer) {
				s := ov.Stats
				fmt.Fprintf(w, "System %s\n", ov.System.Status)
				fmt.Fprintf(w, "%d language pairs, %d model versions, %d testsets, %d evaluations (%d active)\n",
					s.TotalLanguagePairs, s.TotalModelVersions, s.TotalTestsets, s.TotalEvaluations, s.ActiveEvaluations)

				comp := newTable(w, "Component", "Status", "Message")
				for _, c := range ov.System.Components {
					comp.AppendRow(table.Row{c.Name, c.Status, c.Message})
				}
				comp.Render()

				fmt.Fprintf(w, "\nStorage %s of %s used (%.1f%%)\n",
					formatBytes(ov.Storage.UsedBytes), formatBytes(ov.Storage.TotalBytes), ov.Storage.UsedPercent())
				st := newTable(w, "Category", "Size", "Files")
				for _, c := range ov.Storage.Categories {
					st.AppendRow(table.Row{c.Name, formatBytes(c.Bytes), c.FileCount})
				}
				st.Render()

				if len(ov.ActiveEvaluations) > 0 {
					fmt.Fprintln(w, "\nActive evaluations")
					renderJobs(w, ov.ActiveEvaluations)
				}
			})
		},
	}
}
