package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/openfit/domain/model/exercise"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return eris.Errorf("unsupported output format: %s (table, json or yaml)", format)
}

func PrintExercises(w io.Writer, exercises []exercise.Exercise, format string) error {
	if exercises == nil {
		exercises = []exercise.Exercise{}
	}

	switch format {
	case FormatJSON:
		content, err := json.MarshalIndent(exercises, "", "    ")
		if err != nil {
			return eris.Wrap(err, "failed to marshal exercises")
		}
		_, err = fmt.Fprintln(w, string(content))
		return err
	case FormatYAML:
		content, err := yaml.Marshal(exercises)
		if err != nil {
			return eris.Wrap(err, "failed to marshal exercises")
		}
		_, err = w.Write(content)
		return err
	case FormatTable:
		return printTable(w, exercises)
	}
	return ValidateFormat(format)
}

func printTable(w io.Writer, exercises []exercise.Exercise) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tREPS\tSETS\tDAYS")
	for _, ex := range exercises {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", ex.Name, ex.Type, ex.Reps, ex.Sets, strings.Join(ex.Days, ", "))
	}
	return tw.Flush()
}

// ExerciseYAML renders one exercise the way it is shown in diffs.
func ExerciseYAML(ex exercise.Exercise) (string, error) {
	content, err := yaml.Marshal(ex)
	if err != nil {
		return "", eris.Wrap(err, "failed to marshal exercise")
	}
	return string(content), nil
}
