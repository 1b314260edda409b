package cmd

import (
	"os"
	"strconv"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var relationCmd = &cobra.Command{
	Use:   "relation",
	Short: "relation commands",
}

func init() {
	relationCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	relationCmd.AddCommand(createRelationCmd())
	relationCmd.AddCommand(listRelationsCmd())
	relationCmd.AddCommand(deleteRelationCmd())
}

func createRelationCmd() *cobra.Command {
	var source string
	var target string
	var relationType string
	var description string

	var required = []string{"source", "target"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "relate two terms",
		Example: "glossary relation create -s REST -t HTTP -r part_of",
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

			res, err := client.CreateRelation(ctx, &v1.CreateRelationRequest{
				SourceKeyword: source,
				TargetKeyword: target,
				RelationType:  relationType,
				Description:   optional(cmd, "description", description),
			})
			if err != nil {
				printError(err)
				return
			}

			printRelations(res.Relation)
		},
	}

	command.Flags().StringVarP(&source, "source", "s", "", "source term keyword (required)")
	command.Flags().StringVarP(&target, "target", "t", "", "target term keyword (required)")
	command.Flags().StringVarP(&relationType, "type", "r", "", "relation type (defaults to related)")
	command.Flags().StringVarP(&description, "description", "d", "", "relation description")

	command.Flags().SortFlags = false

	return command
}

func listRelationsCmd() *cobra.Command {
	var keyword string
	var asJSON bool

	command := &cobra.Command{
		Use:   "list",
		Short: "list relations, or those of one term with --keyword",
		Run: func(cmd *cobra.Command, args []string) {
			client, err := newClient()
			if err != nil {
				printError(err)
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			var relations []*v1.Relation
			if keyword != "" {
				res, err := client.ListTermRelations(ctx, &v1.ListTermRelationsRequest{Keyword: keyword})
				if err != nil {
					printError(err)
					return
				}
				relations = res.Relations
			} else {
				res, err := client.ListRelations(ctx, &v1.ListRelationsRequest{})
				if err != nil {
					printError(err)
					return
				}
				relations = res.Relations
			}

			if asJSON {
				printJSON(relations)
				return
			}
			printRelations(relations...)
		},
	}

	command.Flags().StringVarP(&keyword, "keyword", "k", "", "only relations leaving or reaching this term")
	command.Flags().BoolVar(&asJSON, "json", false, "print the relations as JSON")

	return command
}

func deleteRelationCmd() *cobra.Command {
	var id int64

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a relation",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, []string{"id"}) {
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

			res, err := client.DeleteRelation(ctx, &v1.DeleteRelationRequest{Id: id})
			if err != nil {
				printError(err)
				return
			}

			color.Green("%s", res.Message)
		},
	}

	command.Flags().Int64VarP(&id, "id", "i", 0, "relation id (required)")

	return command
}

func printRelations(relations ...*v1.Relation) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Source", "Type", "Target", "Description"})
	for _, relation := range relations {
		table.Append([]string{
			strconv.FormatInt(relation.Id, 10),
			relation.SourceKeyword,
			relation.RelationType,
			relation.TargetKeyword,
			deref(relation.Description),
		})
	}
	table.Render()
}
