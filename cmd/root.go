package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glossary",
	Short: "glossary management tool",
	Example: `glossary serve
glossary term create -k API -d "Application Programming Interface"
glossary term get -k API
glossary term list --limit 10
glossary term update -k API --new-keyword APIv2
glossary term delete -k APIv2
glossary relation create -s REST -t HTTP -r part_of
glossary relation list -k REST
glossary relation delete -i 1
glossary graph`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(relationCmd)
	rootCmd.AddCommand(graphCmd())
	rootCmd.AddCommand(eventsCmd())
	rootCmd.AddCommand(contextCommand)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "glossary gRPC address (defaults to the saved context)")

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
