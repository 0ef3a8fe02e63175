package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newLangPairsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lang-pairs",
		Aliases: []string{"lp"},
		Short:   "Manage language pairs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List language pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pairs, err := a.langPairs.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(pairs, func(w io.Writer) {
				t := newTable(w, "ID", "Pair", "Description")
				for _, lp := range pairs {
					t.AppendRow(table.Row{lp.ID, lp.Label(), lp.Description})
				}
				t.Render()
			})
		},
	})

	return cmd
}
