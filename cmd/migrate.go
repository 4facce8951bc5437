package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/Mila-BookingService/migrations"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and seed data",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()
			defer db.Close()

			applied, err := migrations.Up(cmd.Context(), dbmetrics.Wrap(db, nil), log)
			if err != nil {
				log.Error("Migration failed after %d applied: %v", applied, err)
				return err
			}

			log.Info("Migrations complete: applied=%d", applied)
			return nil
		},
	}
}
