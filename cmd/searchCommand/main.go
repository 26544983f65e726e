package searchCommand

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/service/exerciseFilter"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/util/output"
)

type SearchCommand struct {
	CobraCommand *cobra.Command
}

func NewSearchCommand(exerciseManageService *exerciseManage.ExerciseManageService) *SearchCommand {
	var category string
	var query string
	var format string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search exercises by one field",
		Long: `Search exercises by one field. The query is matched case-insensitively.
For days and type a comma separated list matches any of its values.
Categories: ` + strings.Join(exerciseFilter.Categories(), ", "),
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return output.ValidateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := exerciseFilter.Search(exerciseManageService.GetAll(), category, query)
			if err != nil {
				return err
			}
			return output.PrintExercises(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "field to search: "+strings.Join(exerciseFilter.Categories(), ", "))
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatTable, "output format: table, json or yaml")

	return &SearchCommand{
		CobraCommand: cmd,
	}
}
