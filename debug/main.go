package main

import (
	"github.com/emrgen/glossary/internal/config"
	"github.com/emrgen/glossary/internal/server"
	"github.com/sirupsen/logrus"
)

// debug runs the server straight from the environment, without the CLI.
func main() {
	cfg := config.LoadConfig()
	cfg.Log.Level = logrus.DebugLevel.String()

	if err := server.Start(cfg); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}
