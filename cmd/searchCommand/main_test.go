package searchCommand

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/openfit/domain/service/documentStore"
	"github.com/t-kuni/openfit/domain/service/exerciseFilter"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	documentRepo "github.com/t-kuni/openfit/infrastructure/repository/document"
	"github.com/t-kuni/openfit/testUtil"
)

const seed = `{
    "exercises": [
        {"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday", "Thursday"]},
        {"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]},
        {"name": "Plank", "type": "Core", "reps": 1, "sets": 3, "days": ["Monday"]}
    ],
    "playlist_source": "/music",
    "assistant": {"model": "gpt-3.5-turbo", "token": ""}
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	space := testUtil.BeginTestSpace(t)
	defer space.CleanUp()

	space.WriteFile("config.json", []byte(seed))
	store := documentStore.NewDocumentStore(documentRepo.NewDocumentRepository(), testUtil.DiscardLogger(), "/music")
	require.NoError(t, store.Open(filepath.Join(space.Dir, "config.json")))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.AddCommand(NewSearchCommand(exerciseManage.NewExerciseManageService(store)).CobraCommand)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"search"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	t.Run("複数の曜日で検索できること", func(t *testing.T) {
		out, err := execute(t, "-c", "days", "-q", "tuesday, thursday", "-o", "json")
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]},
			{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday", "Thursday"]}
		]`, out)
	})

	t.Run("名前の部分一致で検索できること", func(t *testing.T) {
		out, err := execute(t, "-c", "Name", "-q", "an", "-o", "json")
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Plank", "type": "Core", "reps": 1, "sets": 3, "days": ["Monday"]}
		]`, out)
	})

	t.Run("クエリが空の場合は全件表示されること", func(t *testing.T) {
		out, err := execute(t, "-c", "type", "-o", "json")
		require.NoError(t, err)

		assert.Contains(t, out, "Squats")
		assert.Contains(t, out, "Running")
		assert.Contains(t, out, "Plank")
	})

	t.Run("不明なカテゴリはエラーになること", func(t *testing.T) {
		_, err := execute(t, "-c", "weight", "-q", "10")

		var categoryErr *exerciseFilter.UnknownCategoryError
		assert.ErrorAs(t, err, &categoryErr)
	})
}
