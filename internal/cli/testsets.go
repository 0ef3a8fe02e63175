package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newTestsetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testsets",
		Short: "Manage evaluation testsets",
	}

	var langPairID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List testsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			testsets, err := a.testsets.List(cmd.Context(), langPairID)
			if err != nil {
				return err
			}
			return a.render(testsets, func(w io.Writer) {
				t := newTable(w, "ID", "Lang pair", "Name", "Source", "Target")
				for _, ts := range testsets {
					t.AppendRow(table.Row{ts.ID, ts.LangPairID, ts.TestsetName, ts.SourceFileName, ts.TargetFileName})
				}
				t.Render()
			})
		},
	}
	list.Flags().Int64Var(&langPairID, "lang-pair", 0, "only testsets of this language pair")

	cmd.AddCommand(list)
	return cmd
}
