package cmd

import (
	"log"

	"deepcheck_api/config"
	"deepcheck_api/pkg/db"
	"deepcheck_api/pkg/store"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Sync the database schema.",
	Long:  `Creates or updates all tables and indexes, then seeds the pricing plan catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		config.MustLoad(cfgFile)

		engine, err := db.NewEngine(config.Cfg.Database)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer engine.Close()

		if err := db.Sync(engine); err != nil {
			log.Fatalf("failed to sync schema: %v", err)
		}

		if err := store.New(engine).SeedPricingPlans(cmd.Context()); err != nil {
			log.Fatalf("failed to seed pricing plans: %v", err)
		}

		log.Println("migration complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
