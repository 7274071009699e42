package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fightcast/predictor-api/internal/app"
	"github.com/fightcast/predictor-api/internal/config"
	"github.com/fightcast/predictor-api/internal/logging"
)

var version = "dev"

// env is filled by the root PersistentPreRunE before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:   "predictctl",
		Short: "Fight prediction command line",
		Long: `predictctl predicts matchups and inspects the fight history.

Local commands load the model artifacts and history backend configured through the
same environment variables as the API server.`,
		Version:      version,
		SilenceUsage: true,
	}

	logLevel := cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := logging.New(*logLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		e.cfg, e.logger = cfg, logger
		return nil
	}

	cmd.AddCommand(newPredictCommand(e))
	cmd.AddCommand(newFightersCommand(e))
	cmd.AddCommand(newProfileCommand(e))
	cmd.AddCommand(newRemoteCommand())
	cmd.AddCommand(newImportCommand(e))
	return cmd
}

// open builds the in-process service for local subcommands.
func (e *env) open(cmd *cobra.Command) (*app.App, error) {
	return app.New(cmd.Context(), e.cfg, e.logger)
}
