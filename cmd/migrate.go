package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/YevhLyt95/next-dashboard/internal/config"
	"github.com/YevhLyt95/next-dashboard/internal/db"
	"github.com/YevhLyt95/next-dashboard/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the dashboard schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.Init(cfg.Log.Level)

		pg, err := db.NewPostgresConnection(cfg.Database.URL, db.PostgresOpts{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
			PingTimeout:     cfg.Database.PingTimeout,
		})
		if err != nil {
			return fmt.Errorf("postgres connect: %w", err)
		}
		defer pg.Close()

		sqlPath := filepath.Join("migrations", "001_init.sql")
		sqlBytes, err := os.ReadFile(sqlPath)
		if err != nil {
			return fmt.Errorf("read schema file %s: %w", sqlPath, err)
		}

		if _, err := pg.ExecContext(cmd.Context(), string(sqlBytes)); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}

		fmt.Println(">> Schema applied")
		return nil
	},
}
