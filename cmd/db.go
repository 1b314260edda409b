package cmd

import (
	"github.com/emrgen/glossary/internal/config"
	"github.com/emrgen/glossary/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Create the glossary tables and indexes",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfig()
			config.SetupLogger(cfg.Log)

			db := config.GetDb(cfg)
			if err := model.Migrate(db); err != nil {
				logrus.Fatalf("migration failed: %v", err)
			}

			logrus.Infof("%s database migrated", cfg.Database.Driver)
		},
	}

	return command
}
