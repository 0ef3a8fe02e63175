// Package cli provides the rmsctl command-line client for the NMT backend.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"release-management-service/internal/adapters/secondary/nmtapi"
	"release-management-service/internal/config"
	"release-management-service/internal/core/services"
	"release-management-service/internal/poller"
)

// Version is set at build time.
var Version = "dev"

const (
	formatText = "text"
	formatJSON = "json"
)

// app carries what every subcommand needs; it is filled in by the root
// command before any RunE executes.
type app struct {
	v      *viper.Viper
	out    io.Writer
	format string

	langPairs *services.LanguagePairService
	versions  *services.ModelVersionService
	testsets  *services.TestsetService
	evals     *services.EvaluationService
	sqe       *services.SQEService
	dashboard *services.DashboardService
}

// NewRootCmd creates the rmsctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "rmsctl",
		Short: "rmsctl - NMT release management client",
		Long: `rmsctl manages language pairs, model versions, testsets, evaluation jobs
and SQE results on the NMT backend.

Settings come from flags, then BACKEND_URL, BACKEND_TOKEN, BACKEND_TIMEOUT
and POLL_INTERVAL in the environment.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("backend-url", "", "NMT backend base URL (env BACKEND_URL)")
	flags.String("token", "", "backend bearer token (env BACKEND_TOKEN)")
	flags.Duration("timeout", 60*time.Second, "backend request timeout")
	flags.Duration("poll-interval", poller.DefaultInterval, "status polling interval for --wait and watch")
	flags.StringP("output", "o", formatText, "output format (text|json)")
	flags.BoolP("verbose", "v", false, "log backend requests to stderr")

	_ = a.v.BindPFlag("BACKEND_URL", flags.Lookup("backend-url"))
	_ = a.v.BindPFlag("BACKEND_TOKEN", flags.Lookup("token"))
	_ = a.v.BindPFlag("BACKEND_TIMEOUT", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("POLL_INTERVAL", flags.Lookup("poll-interval"))
	a.v.SetDefault("BACKEND_URL", "http://localhost:8000/api")
	a.v.AutomaticEnv()

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{formatText, formatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newLangPairsCommand(a))
	rootCmd.AddCommand(newVersionsCommand(a))
	rootCmd.AddCommand(newTestsetsCommand(a))
	rootCmd.AddCommand(newEvalCommand(a))
	rootCmd.AddCommand(newSQECommand(a))
	rootCmd.AddCommand(newDashboardCommand(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	format, _ := cmd.Flags().GetString("output")
	switch format = strings.ToLower(format); format {
	case formatText, formatJSON:
		a.format = format
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(log.WarnLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}

	backendURL := a.v.GetString("BACKEND_URL")
	if backendURL == "" {
		return fmt.Errorf("backend URL is required (--backend-url or BACKEND_URL)")
	}
	client := nmtapi.NewClient(&config.BackendConfig{
		URL:     backendURL,
		Timeout: a.v.GetDuration("BACKEND_TIMEOUT"),
		Token:   a.v.GetString("BACKEND_TOKEN"),
	})

	p, err := poller.New(a.v.GetDuration("POLL_INTERVAL"))
	if err != nil {
		return err
	}

	a.langPairs = services.NewLanguagePairService(client)
	a.versions = services.NewModelVersionService(client, client, client, client, client)
	a.testsets = services.NewTestsetService(client)
	a.evals = services.NewEvaluationService(client, p)
	a.sqe = services.NewSQEService(client)
	a.dashboard = services.NewDashboardService(client, nil)
	return nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
