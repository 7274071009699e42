package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fightcast/predictor-api/internal/app"
)

func newImportCommand(e *env) *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the fight history CSV into the configured database",
		Long: `import creates the fight_history table in the database selected by
HISTORY_BACKEND (postgres or clickhouse) and replaces its rows with the CSV contents.
Row order in the file is kept as chronological order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				csvPath = e.cfg.HistoryCSV
			}
			start := time.Now()
			n, err := app.Import(cmd.Context(), e.cfg, csvPath)
			if err != nil {
				return err
			}
			e.logger.Sugar().Infow("History imported", "rows", n, "backend", e.cfg.HistoryBackend, "duration", time.Since(start))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bouts into %s\n", n, e.cfg.HistoryBackend)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "History CSV to import (defaults to HISTORY_CSV)")
	return cmd
}
