package cmd

import (
	"os"
	"strconv"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "term commands",
}

func init() {
	termCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	termCmd.AddCommand(createTermCmd())
	termCmd.AddCommand(getTermCmd())
	termCmd.AddCommand(listTermsCmd())
	termCmd.AddCommand(updateTermCmd())
	termCmd.AddCommand(deleteTermCmd())
}

func createTermCmd() *cobra.Command {
	var keyword string
	var description string
	var source string

	var required = []string{"keyword", "description"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a term",
		Example: `glossary term create -k API -d "Application Programming Interface" --source https://en.wikipedia.org/wiki/API`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.CreateTerm(ctx, &v1.CreateTermRequest{
				Keyword:     keyword,
				Description: description,
				Source:      optional(cmd, "source", source),
			})
			if err != nil {
				printError(err)
				return
			}

			printTerms(res.Term)
		},
	}

	command.Flags().StringVarP(&keyword, "keyword", "k", "", "term keyword (required)")
	command.Flags().StringVarP(&description, "description", "d", "", "term description (required)")
	command.Flags().StringVar(&source, "source", "", "where the definition comes from")

	command.Flags().SortFlags = false

	return command
}

func getTermCmd() *cobra.Command {
	var keyword string
	var asJSON bool

	command := &cobra.Command{
		Use:   "get",
		Short: "get a term",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, []string{"keyword"}) {
				return
			}

			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.GetTerm(ctx, &v1.GetTermRequest{Keyword: keyword})
			if err != nil {
				printError(err)
				return
			}

			if asJSON {
				printJSON(res.Term)
				return
			}
			printTerms(res.Term)
		},
	}

	command.Flags().StringVarP(&keyword, "keyword", "k", "", "term keyword (required)")
	command.Flags().BoolVar(&asJSON, "json", false, "print the term as JSON")

	return command
}

func listTermsCmd() *cobra.Command {
	var limit int32
	var offset int32
	var asJSON bool

	command := &cobra.Command{
		Use:   "list",
		Short: "list terms ordered by keyword",
		Run: func(cmd *cobra.Command, args []string) {
			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.ListTerms(ctx, &v1.ListTermsRequest{Limit: limit, Offset: offset})
			if err != nil {
				printError(err)
				return
			}

			if asJSON {
				printJSON(res)
				return
			}
			printTerms(res.Terms...)
			cmd.Printf("showing %d of %d terms\n", len(res.Terms), res.Total)
		},
	}

	command.Flags().Int32VarP(&limit, "limit", "l", 0, "maximum number of terms (0 lists all)")
	command.Flags().Int32VarP(&offset, "offset", "o", 0, "number of terms to skip")
	command.Flags().BoolVar(&asJSON, "json", false, "print the page as JSON")

	return command
}

func updateTermCmd() *cobra.Command {
	var keyword string
	var newKeyword string
	var description string
	var source string

	command := &cobra.Command{
		Use:     "update",
		Short:   "update a term",
		Long:    "update the supplied fields of a term; an empty --source clears the source",
		Example: `glossary term update -k API --new-keyword APIv2 -d "Application Programming Interface, v2"`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, []string{"keyword"}) {
				return
			}

			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.UpdateTerm(ctx, &v1.UpdateTermRequest{
				Keyword:     keyword,
				NewKeyword:  optional(cmd, "new-keyword", newKeyword),
				Description: optional(cmd, "description", description),
				Source:      optional(cmd, "source", source),
			})
			if err != nil {
				printError(err)
				return
			}

			printTerms(res.Term)
		},
	}

	command.Flags().StringVarP(&keyword, "keyword", "k", "", "keyword of the term to update (required)")
	command.Flags().StringVar(&newKeyword, "new-keyword", "", "rename the term")
	command.Flags().StringVarP(&description, "description", "d", "", "new description")
	command.Flags().StringVar(&source, "source", "", "new source")

	command.Flags().SortFlags = false

	return command
}

func deleteTermCmd() *cobra.Command {
	var keyword string

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a term and every relation touching it",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, []string{"keyword"}) {
				return
			}

			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.DeleteTerm(ctx, &v1.DeleteTermRequest{Keyword: keyword})
			if err != nil {
				printError(err)
				return
			}

			color.Green("%s", res.Message)
		},
	}

	command.Flags().StringVarP(&keyword, "keyword", "k", "", "term keyword (required)")

	return command
}

func printTerms(terms ...*v1.Term) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Keyword", "Description", "Source"})
	for _, term := range terms {
		table.Append([]string{strconv.FormatInt(term.Id, 10), term.Keyword, term.Description, deref(term.Source)})
	}
	table.Render()
}
