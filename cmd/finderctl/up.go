package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/finderctl"
	"github.com/aretw0/finderctl/internal/config"
	"github.com/aretw0/finderctl/internal/logging"
	"github.com/aretw0/finderctl/internal/presentation/tui"
	"github.com/aretw0/finderctl/pkg/domain"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bootstrap the environment and launch the UI",
	Long: `Runs the full bootstrap sequence and then blocks on the UI process.
The process exit code equals the UI's exit code, or the first failing
setup step's status.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		profile, _ := cmd.Flags().GetString("profile")
		configFile, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		port, _ := cmd.Flags().GetInt("port")
		quiet, _ := cmd.Flags().GetBool("quiet")

		level := slog.LevelInfo
		settings, err := config.FromEnv()
		if err == nil && settings.Debug {
			verbose = true
		}
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		opts := []finderctl.Option{
			finderctl.WithProfile(profile),
			finderctl.WithConfigFile(configFile),
			finderctl.WithLogger(logger),
		}
		if !quiet {
			opts = append(opts, finderctl.WithLifecycleHooks(tui.StatusHooks(os.Stdout)))
		}
		if cmd.Flags().Changed("port") {
			opts = append(opts, finderctl.WithPort(port))
		}

		runner, err := finderctl.New(dir, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !quiet {
			tui.PrintBanner(os.Stdout, finderctl.Version)
			fmt.Printf("profile %s, port %d\n", runner.Profile().Name, runner.Port())
		}

		// Interrupt terminates the foreground UI process via context.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runner.Run(ctx); err != nil {
			logger.Error("run failed", "error", err)
			os.Exit(domain.ExitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(upCmd)

	upCmd.Flags().Int("port", 0, "UI port (overrides FINDER_UI_PORT and the profile default)")
	upCmd.Flags().Bool("quiet", false, "Suppress banner and step status output")

	// Make 'up' the default when no subcommand is provided.
	rootCmd.Run = upCmd.Run
	rootCmd.Flags().AddFlagSet(upCmd.Flags())
}
