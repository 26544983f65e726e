package todayCommand

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/openfit/domain/service/documentStore"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/domain/system/timer"
	documentRepo "github.com/t-kuni/openfit/infrastructure/repository/document"
	"github.com/t-kuni/openfit/testUtil"
	"go.uber.org/mock/gomock"
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

func execute(t *testing.T, timerSys timer.ITimer, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, seed, timerSys, args...)
}

func executeWith(t *testing.T, content string, timerSys timer.ITimer, args ...string) (string, error) {
	t.Helper()

	space := testUtil.BeginTestSpace(t)
	defer space.CleanUp()

	space.WriteFile("config.json", []byte(content))
	store := documentStore.NewDocumentStore(documentRepo.NewDocumentRepository(), testUtil.DiscardLogger(), "/music")
	require.NoError(t, store.Open(filepath.Join(space.Dir, "config.json")))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.AddCommand(NewTodayCommand(exerciseManage.NewExerciseManageService(store), timerSys).CobraCommand)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"today"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestTodayCommand(t *testing.T) {
	t.Run("今日の曜日のエクササイズが表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)
		timerMock.EXPECT().Now().Return(testUtil.NewTime("2024-01-01T09:00:00Z"))

		out, err := execute(t, timerMock, "-o", "json")
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday", "Thursday"]},
			{"name": "Plank", "type": "Core", "reps": 1, "sets": 3, "days": ["Monday"]}
		]`, out)
	})

	t.Run("曜日を指定できること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)

		out, err := execute(t, timerMock, "--day", "Tuesday")
		require.NoError(t, err)

		assert.Equal(t, "NAME     TYPE    REPS  SETS  DAYS\nRunning  Cardio  1     1     Tuesday\n", out)
	})

	t.Run("予定がない曜日は空になること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)

		out, err := execute(t, timerMock, "--day", "Sunday", "-o", "json")
		require.NoError(t, err)

		assert.JSONEq(t, `[]`, out)
	})

	t.Run("--allで全件が保存順に一度ずつ表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)
		timerMock.EXPECT().Now().Return(testUtil.NewTime("2024-01-01T09:00:00Z")).AnyTimes()

		out, err := execute(t, timerMock, "--all", "-o", "json")
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday", "Thursday"]},
			{"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]},
			{"name": "Plank", "type": "Core", "reps": 1, "sets": 3, "days": ["Monday"]}
		]`, out)
	})

	t.Run("月曜日は当日分のみ、--allで両方が元の順序で表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)
		timerMock.EXPECT().Now().Return(testUtil.NewTime("2024-01-01T09:00:00Z")).AnyTimes()

		content := `{
    "exercises": [
        {"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday"]},
        {"name": "Curls", "type": "Strength", "reps": 12, "sets": 3, "days": ["Tuesday"]}
    ],
    "playlist_source": "/music",
    "assistant": {"model": "gpt-3.5-turbo", "token": ""}
}`

		out, err := executeWith(t, content, timerMock, "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday"]}
		]`, out)

		out, err = executeWith(t, content, timerMock, "--all", "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday"]},
			{"name": "Curls", "type": "Strength", "reps": 12, "sets": 3, "days": ["Tuesday"]}
		]`, out)
	})

	t.Run("--weekで曜日ごとの表が表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)

		out, err := execute(t, timerMock, "--week")
		require.NoError(t, err)

		assert.Contains(t, out, "# Monday\n")
		assert.Contains(t, out, "# Sunday\n")
		assert.Less(t, strings.Index(out, "# Monday"), strings.Index(out, "# Tuesday"))
	})

	t.Run("--weekは表形式以外ではエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)

		_, err := execute(t, timerMock, "--week", "-o", "json")
		assert.ErrorContains(t, err, "--week only supports table output")
	})

	t.Run("不明な曜日はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)

		_, err := execute(t, timerMock, "--day", "Someday")
		assert.ErrorContains(t, err, "unknown weekday: Someday")
	})
}
