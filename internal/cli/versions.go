package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"release-management-service/internal/core/domain"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q: %w", s, domain.ErrInvalidID)
	}
	return id, nil
}

func newVersionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "versions",
		Aliases: []string{"mv"},
		Short:   "Manage model versions",
	}
	cmd.AddCommand(
		newVersionsListCommand(a),
		newVersionsShowCommand(a),
		newVersionsCreateCommand(a),
		newVersionsDeleteCommand(a),
		newVersionsDownloadCommand(a),
	)
	return cmd
}

func newVersionsListCommand(a *app) *cobra.Command {
	var langPairID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List model versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			versions, err := a.versions.List(cmd.Context(), langPairID)
			if err != nil {
				return err
			}
			return a.render(versions, func(w io.Writer) {
				t := newTable(w, "ID", "Lang pair", "Version", "Released", "Model", "Hparams", "Base model")
				for _, mv := range versions {
					t.AppendRow(table.Row{
						mv.ID, mv.LangPairID, mv.Version, formatDate(mv.ReleaseDate),
						formatOptional(mv.ModelFileName), formatOptional(mv.HparamsFileName), formatOptional(mv.BaseModelFileName),
					})
				}
				t.Render()
			})
		},
	}
	cmd.Flags().Int64Var(&langPairID, "lang-pair", 0, "only versions of this language pair")
	return cmd
}

func newVersionsShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <version-id>",
		Short: "Show a model version with its results, release note, SQE scores and evaluations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := a.versions.Detail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.render(d, func(w io.Writer) {
				mv := d.Version
				fmt.Fprintf(w, "Version %s (id %d, lang pair %d, released %s)\n",
					mv.Version, mv.ID, mv.LangPairID, formatDate(mv.ReleaseDate))
				if mv.Description != "" {
					fmt.Fprintln(w, mv.Description)
				}

				fmt.Fprintln(w, "\nTraining results")
				t := newTable(w, "ID", "Testset", "Base BLEU", "Tuned BLEU", "Δ BLEU", "Base COMET", "Tuned COMET", "Δ COMET")
				for _, tr := range d.TrainingResults {
					t.AppendRow(table.Row{
						tr.ID, tr.TestsetID,
						formatScore(tr.BaseModelBLEU), formatScore(tr.FinetunedModelBLEU), formatDelta(tr.BLEUImprovement()),
						formatScore(tr.BaseModelCOMET), formatScore(tr.FinetunedModelCOMET), formatDelta(tr.COMETImprovement()),
					})
				}
				t.Render()

				fmt.Fprintln(w, "\nRelease note")
				if d.ReleaseNote == nil {
					fmt.Fprintln(w, "(none)")
				} else {
					fmt.Fprintf(w, "%s\n%s\n", d.ReleaseNote.Title, d.ReleaseNote.Content)
				}

				fmt.Fprintln(w, "\nSQE results")
				st := newTable(w, "ID", "Score", "Cases", "Changed %", "Critical", "Tested by")
				for _, r := range d.SQEResults {
					st.AppendRow(table.Row{r.ID, fmt.Sprintf("%.2f", r.AverageScore), r.TotalTestCases,
						fmt.Sprintf("%.1f", r.TestCaseChangesPercent), r.HasCriticalIssue, r.TestedBy})
				}
				st.Render()

				fmt.Fprintln(w, "\nEvaluations")
				renderJobs(w, d.Evaluations)
			})
		},
	}
}

func newVersionsCreateCommand(a *app) *cobra.Command {
	var (
		in          domain.ModelVersionInput
		releaseDate string
		files       = map[domain.FileType]*string{}
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a model version and upload its files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if releaseDate != "" {
				d, err := time.Parse("2006-01-02", releaseDate)
				if err != nil {
					return fmt.Errorf("--release-date must be YYYY-MM-DD")
				}
				in.ReleaseDate = &d
			}

			for _, ft := range []domain.FileType{domain.FileTypeModel, domain.FileTypeHparams, domain.FileTypeBaseModel} {
				path := *files[ft]
				if path == "" {
					continue
				}
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in.Files = append(in.Files, domain.FileUpload{Field: ft.FormField(), FileName: filepath.Base(path), Content: f})
			}

			mv, err := a.versions.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(mv, func(w io.Writer) {
				fmt.Fprintf(w, "created model version %s (id %d)\n", mv.Version, mv.ID)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&in.LangPairID, "lang-pair", 0, "language pair id")
	f.StringVar(&in.Version, "version", "", "version name")
	f.StringVar(&releaseDate, "release-date", "", "release date (YYYY-MM-DD)")
	f.StringVar(&in.Description, "description", "", "description")
	files[domain.FileTypeModel] = f.String("model-file", "", "model file to upload")
	files[domain.FileTypeHparams] = f.String("hparams-file", "", "hyperparameter file to upload")
	files[domain.FileTypeBaseModel] = f.String("base-model-file", "", "base model file to upload")
	return cmd
}

func newVersionsDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <version-id>",
		Short: "Delete a model version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.versions.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted model version %d\n", id)
			return nil
		},
	}
}

func newVersionsDownloadCommand(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "download <version-id> <model|hparams|base_model>",
		Short: "Download a file attached to a model version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			dl, err := a.versions.DownloadFile(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return a.save(dl, dir)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to save into")
	return cmd
}

// save writes dl into dir under the name the backend chose.
func (a *app) save(dl *domain.Download, dir string) error {
	defer dl.Body.Close()

	path := filepath.Join(dir, filepath.Base(dl.FileName))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := io.Copy(f, dl.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "saved %s (%s)\n", path, formatBytes(n))
	return nil
}
