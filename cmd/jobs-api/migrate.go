package main

import (
	"github.com/jobvault/jobs-api/internal/config"
	"github.com/jobvault/jobs-api/internal/store"
	"github.com/jobvault/jobs-api/pkg/log"
	"github.com/jobvault/jobs-api/pkg/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Named("jobs_api").Info("Migrating the db")
		defer zap.S().Named("jobs_api").Info("Db migrated")

		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Named("jobs_api").Fatalf("initializing data store: %v", err)
		}

		s := store.NewStore(db)
		defer s.Close()

		if cfg.Service.MigrationFolder != "" {
			return migrations.MigrateStore(db, cfg.Service.MigrationFolder)
		}
		return s.InitialMigration()
	},
}
