package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/openfit/domain/model/exercise"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("今日の種目が含まれること", func(t *testing.T) {
		prompt, err := BuildPrompt(PromptParam{
			Weekday: "Monday",
			Exercises: []exercise.Exercise{
				{Name: "Squats", Type: "Strength", Reps: 8, Sets: 4, Days: []string{"Monday"}},
			},
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "You are the sports coach for newbies and amateurs.")
		assert.Contains(t, prompt, "scheduled for Monday:")
		assert.Contains(t, prompt, "- Squats (Strength): 4 sets of 8 reps")
	})

	t.Run("種目がない場合は予定の節が出力されないこと", func(t *testing.T) {
		prompt, err := BuildPrompt(PromptParam{Weekday: "Sunday"})
		require.NoError(t, err)

		assert.NotContains(t, prompt, "scheduled")
	})
}
