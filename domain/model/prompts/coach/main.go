package coach

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/t-kuni/openfit/domain/model/exercise"
)

//go:embed prompt.md.tmpl
var promptTmpl string

type PromptParam struct {
	Weekday   string
	Exercises []exercise.Exercise
}

func BuildPrompt(param PromptParam) (string, error) {
	tmpl, err := template.New("markdown").Parse(promptTmpl)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	err = tmpl.Execute(&output, param)
	if err != nil {
		return "", err
	}

	return output.String(), nil
}
