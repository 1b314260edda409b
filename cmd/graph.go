package cmd

import (
	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/spf13/cobra"
)

func graphCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "graph",
		Short: "print every term and relation as graph nodes and edges",
		Run: func(cmd *cobra.Command, args []string) {
			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.GetGraph(ctx, &v1.GetGraphRequest{})
			if err != nil {
				printError(err)
				return
			}

			printJSON(res.Graph)
		},
	}

	return command
}
