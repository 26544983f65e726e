package todayCommand

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/service/exerciseFilter"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/domain/system/timer"
	"github.com/t-kuni/openfit/util/output"
)

var week = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

type TodayCommand struct {
	CobraCommand *cobra.Command
}

func NewTodayCommand(exerciseManageService *exerciseManage.ExerciseManageService, timer timer.ITimer) *TodayCommand {
	var all bool
	var weekView bool
	var day string
	var format string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the exercises scheduled for today",
		Long: `Show the exercises scheduled for the current weekday.
With --all every exercise is shown once, in stored order.
With --week a table per weekday is printed, Monday first.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if day != "" && !isWeekday(day) {
				return eris.Errorf("unknown weekday: %s", day)
			}
			if all && weekView {
				return eris.New("--all and --week cannot be combined")
			}
			if weekView && format != output.FormatTable {
				return eris.New("--week only supports table output")
			}
			return output.ValidateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises := exerciseManageService.GetAll()

			if all {
				return output.PrintExercises(cmd.OutOrStdout(), exercises, format)
			}

			if weekView {
				for i, d := range week {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", d)
					if err := output.PrintExercises(cmd.OutOrStdout(), exerciseFilter.FilterByDay(exercises, d.String()), format); err != nil {
						return err
					}
				}
				return nil
			}

			if day == "" {
				day = timer.Now().Weekday().String()
			}
			return output.PrintExercises(cmd.OutOrStdout(), exerciseFilter.FilterByDay(exercises, day), format)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show every exercise regardless of the day")
	cmd.Flags().BoolVar(&weekView, "week", false, "print one table per weekday")
	cmd.Flags().StringVar(&day, "day", "", "weekday to show instead of today, e.g. Monday")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatTable, "output format: table, json or yaml")

	return &TodayCommand{
		CobraCommand: cmd,
	}
}

func isWeekday(day string) bool {
	for _, d := range week {
		if d.String() == day {
			return true
		}
	}
	return false
}
