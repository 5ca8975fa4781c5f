package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/tunjangan-pas/db"
	"github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	_ "gorm.io/driver/sqlite"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "sql migrations directory on disk (defaults to the embedded set)")
}

// gooseDriver maps the configured driver onto a registered database/sql driver.
func gooseDriver(driver string) (string, error) {
	switch driver {
	case internal.DriverPostgres:
		return "pgx", nil
	case internal.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("migrations need a sql driver, got %q", driver)
	}
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := setup()
	if err != nil {
		return err
	}

	driver, err := gooseDriver(cfg.Database.Driver)
	if err != nil {
		return err
	}
	sqlDB, err := goose.OpenDBWithDriver(driver, cfg.Database.Source)
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer sqlDB.Close()
	goose.SetTableName("schema_migrations")

	dir := migrateDir
	if dir == "" {
		goose.SetBaseFS(db.Migrations)
		dir = db.MigrationsDir
	}

	command := "up"
	if migrateRollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, sqlDB, dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	logger.L().Info("migrations applied", "command", command, "driver", cfg.Database.Driver)
	return nil
}
