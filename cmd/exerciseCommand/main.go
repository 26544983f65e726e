package exerciseCommand

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/model/exercise"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/util/output"
)

type ExerciseCommand struct {
	CobraCommand *cobra.Command
}

func NewExerciseCommand(exerciseManageService *exerciseManage.ExerciseManageService) *ExerciseCommand {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Manage the exercises of the routine",
	}

	cmd.AddCommand(newAddCommand(exerciseManageService))
	cmd.AddCommand(newUpdateCommand(exerciseManageService))
	cmd.AddCommand(newRemoveCommand(exerciseManageService))
	cmd.AddCommand(newShowCommand(exerciseManageService))
	cmd.AddCommand(newListCommand(exerciseManageService))

	return &ExerciseCommand{
		CobraCommand: cmd,
	}
}

type exerciseFlags struct {
	name string
	typ  string
	reps int
	sets int
	days string
}

func (f *exerciseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "exercise name")
	cmd.Flags().StringVar(&f.typ, "type", "", "exercise type, e.g. Strength")
	cmd.Flags().IntVar(&f.reps, "reps", 0, "repetitions per set")
	cmd.Flags().IntVar(&f.sets, "sets", 0, "number of sets")
	cmd.Flags().StringVar(&f.days, "days", "", "comma separated weekdays, e.g. \"Monday, Thursday\"")
}

func newAddCommand(exerciseManageService *exerciseManage.ExerciseManageService) *cobra.Command {
	var flags exerciseFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := exercise.New(flags.name, flags.typ, flags.reps, flags.sets, exercise.ParseDays(flags.days))
			if err != nil {
				return err
			}

			if err := exerciseManageService.Add(ex); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", ex.Name)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newUpdateCommand(exerciseManageService *exerciseManage.ExerciseManageService) *cobra.Command {
	var flags exerciseFlags

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update the given fields of an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := findIndex(exerciseManageService, args[0])
			if err != nil {
				return err
			}

			before, err := exerciseManageService.At(index)
			if err != nil {
				return err
			}

			err = exerciseManageService.Update(index, exercise.Patch{
				Name: flags.name,
				Type: flags.typ,
				Reps: flags.reps,
				Sets: flags.sets,
				Days: exercise.ParseDays(flags.days),
			})
			if err != nil {
				return err
			}

			after, err := exerciseManageService.At(index)
			if err != nil {
				return err
			}

			return printDiff(cmd.OutOrStdout(), before, after)
		},
	}
	flags.register(cmd)

	return cmd
}

func newRemoveCommand(exerciseManageService *exerciseManage.ExerciseManageService) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := findIndex(exerciseManageService, args[0])
			if err != nil {
				return err
			}

			if err := exerciseManageService.Remove(index); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newShowCommand(exerciseManageService *exerciseManage.ExerciseManageService) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show one exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := findIndex(exerciseManageService, args[0])
			if err != nil {
				return err
			}

			ex, err := exerciseManageService.At(index)
			if err != nil {
				return err
			}

			content, err := output.ExerciseYAML(ex)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newListCommand(exerciseManageService *exerciseManage.ExerciseManageService) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all exercises",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return output.ValidateFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.PrintExercises(cmd.OutOrStdout(), exerciseManageService.GetAll(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatTable, "output format: table, json or yaml")

	return cmd
}

func findIndex(exerciseManageService *exerciseManage.ExerciseManageService, name string) (int, error) {
	index, ok := exerciseManageService.FindIndex(name)
	if !ok {
		return 0, eris.Errorf("exercise not found: %s", name)
	}
	return index, nil
}

// printDiff writes a line diff of the YAML renderings of before and after.
func printDiff(w io.Writer, before, after exercise.Exercise) error {
	oldContent, err := output.ExerciseYAML(before)
	if err != nil {
		return err
	}
	newContent, err := output.ExerciseYAML(after)
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(w, prefix+line)
		}
	}
	return nil
}
