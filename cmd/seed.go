package cmd

import (
	"fmt"
	"log"

	"github.com/YevhLyt95/next-dashboard/internal/config"
	"github.com/YevhLyt95/next-dashboard/internal/db"
	"github.com/YevhLyt95/next-dashboard/internal/logger"
	"github.com/YevhLyt95/next-dashboard/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the dashboard fixture data",
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

		log.Println(">> Seeding dashboard data...")

		report, err := seed.Run(cmd.Context(), pg, seed.Default())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		log.Printf(">> Seeded %d users, %d customers, %d invoices, %d revenue records",
			report.Users, report.Customers, report.Invoices, report.Revenue)
		return nil
	},
}
