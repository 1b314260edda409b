package cmd

import (
	"github.com/emrgen/glossary/internal/config"
	"github.com/emrgen/glossary/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var grpcPort string
	var httpPort string
	var workers int

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC server and the REST gateway",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfig()
			if cmd.Flag("grpc-port").Changed {
				cfg.Server.GrpcPort = grpcPort
			}
			if cmd.Flag("http-port").Changed {
				cfg.Server.HttpPort = httpPort
			}
			if cmd.Flag("workers").Changed {
				cfg.Server.Workers = workers
			}

			server.NewServer(cfg).Start()
		},
	}

	command.Flags().StringVarP(&grpcPort, "grpc-port", "g", "", "gRPC port (overrides GRPC_PORT)")
	command.Flags().StringVarP(&httpPort, "http-port", "p", "", "HTTP port (overrides HTTP_PORT)")
	command.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent gRPC handlers (overrides GRPC_WORKERS)")

	command.Flags().SortFlags = false

	return command
}
