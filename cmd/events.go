package cmd

import (
	"context"
	"os/signal"

	"github.com/emrgen/glossary/internal/config"
	"github.com/emrgen/glossary/internal/queue"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

func eventsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "events",
		Short: "follow the change events published on Redis",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfig()
			if cfg.Events.RedisAddr == "" {
				color.Red("missing: REDIS_ADDR")
				return
			}

			subscriber := queue.NewRedisPublisher(queue.RedisOptions{
				Addr:     cfg.Events.RedisAddr,
				Password: cfg.Events.RedisPassword,
				DB:       cfg.Events.RedisDB,
				Channel:  cfg.Events.Channel,
			})
			defer subscriber.Close()

			ctx, stop := signal.NotifyContext(context.Background(), unix.SIGTERM, unix.SIGINT)
			defer stop()

			events, err := subscriber.Subscribe(ctx)
			if err != nil {
				color.Red("error subscribing to %s: %v", cfg.Events.Channel, err)
				return
			}

			color.Green("listening on %s", cfg.Events.Channel)
			for event := range events {
				printJSON(event)
			}
		},
	}

	return command
}
