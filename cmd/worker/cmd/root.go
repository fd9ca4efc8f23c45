package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MarcDufresne/tangerine-account-checker/cmd/setup"
	helperFlag "github.com/MarcDufresne/tangerine-account-checker/internal/common/flag"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/graceful"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	"github.com/MarcDufresne/tangerine-account-checker/internal/deliveries/job"
	"github.com/MarcDufresne/tangerine-account-checker/internal/services"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "worker",
	Short:         "Copy Tangerine mutual fund holdings into a Google Sheet",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const defaultGracefulTimeout = 10 * time.Second

const (
	rootCmdConfig    = "config"
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
)

func init() {
	rootCmd.PersistentFlags().StringP(rootCmdConfig, "c", setup.DefaultConfigPath(), "config.json path, searched in /config, . and ./config when empty")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	_ = runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	_ = runJobCmd.MarkFlagRequired(runJobCmdVersion)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job name and version",
	Args:  cobra.NoArgs,
	Run:   list,
}

func list(ccmd *cobra.Command, args []string) {
	// routes do not depend on the wiring, no config is needed to list them
	j := job.New(&services.Services{}, nil, ccmd.OutOrStdout())
	for _, f := range j.List() {
		fmt.Fprintln(ccmd.OutOrStdout(), f)
	}
}

var runJobCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run execution job",
	Example: "worker run -n ReconcileHoldings -v v1 --config ./config.json",
	Args:    cobra.NoArgs,
	RunE:    runJob,
}

func runJob(ccmd *cobra.Command, args []string) (err error) {
	ctx, cancel := graceful.NotifyContext(context.Background())
	defer cancel()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	configPath, _ := ccmd.Flags().GetString(rootCmdConfig)
	route := helperFlag.Job{JobName: name, Version: version}

	// fail on a bad route before any config or credentials are read
	if err = job.New(&services.Services{}, nil, ccmd.OutOrStdout()).Validate(route); err != nil {
		return err
	}

	s, stopper, err := setup.Init(configPath)
	defer func() {
		timeout := defaultGracefulTimeout
		if s != nil && s.Config.App.GracefulTimeout > 0 {
			timeout = s.Config.App.GracefulTimeout
		}
		if stopErr := graceful.StopProcess(timeout, stopper...); stopErr != nil {
			xlog.Warn(ctx, "failed to stop process", xlog.Err(stopErr))
		}
	}()
	if err != nil {
		return fmt.Errorf("failed to setup app: %w", err)
	}

	j := job.New(s.Service, s.NewRelic, ccmd.OutOrStdout())
	if err = j.Start(ctx, route); err != nil {
		return err
	}

	xlog.Info(ctx, "job finished!")
	return nil
}
