package document

import (
	"github.com/t-kuni/openfit/domain/model/exercise"
)

const DefaultAssistantModel = "gpt-3.5-turbo"

// Document is the whole persisted program data.
type Document struct {
	Exercises      []exercise.Exercise `json:"exercises"`
	PlaylistSource string              `json:"playlist_source"`
	Assistant      Assistant           `json:"assistant"`
}

type Assistant struct {
	Model string `json:"model"`
	Token string `json:"token"`
}

// NewDefault returns the document written on first run.
func NewDefault(musicDir string) *Document {
	return &Document{
		Exercises:      []exercise.Exercise{},
		PlaylistSource: musicDir,
		Assistant: Assistant{
			Model: DefaultAssistantModel,
			Token: "",
		},
	}
}

func (d *Document) Clone() *Document {
	c := *d
	c.Exercises = exercise.CloneAll(d.Exercises)
	return &c
}
