package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/multitier-app/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			defer loggerService.Shutdown()

			if err := database.Migrate(cmd.Context(), log, cfg); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
			return nil
		},
	}
}
