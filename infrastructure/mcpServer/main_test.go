package mcpServer

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
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
        {"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]}
    ],
    "playlist_source": "/music",
    "assistant": {"model": "gpt-3.5-turbo", "token": ""}
}`

func newServer(t *testing.T, timerSys timer.ITimer) *McpServer {
	t.Helper()

	space := testUtil.BeginTestSpace(t)
	t.Cleanup(space.CleanUp)

	space.WriteFile("config.json", []byte(seed))
	store := documentStore.NewDocumentStore(documentRepo.NewDocumentRepository(), testUtil.DiscardLogger(), "/music")
	require.NoError(t, store.Open(filepath.Join(space.Dir, "config.json")))

	return NewMcpServer(exerciseManage.NewExerciseManageService(store), timerSys, testUtil.DiscardLogger())
}

func request(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMcpServer_ListExercises(t *testing.T) {
	m := newServer(t, nil)

	result, err := m.listExercises(context.Background(), request("list_exercises", nil))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.JSONEq(t, `[
		{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday", "Thursday"]},
		{"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]}
	]`, resultText(t, result))
}

func TestMcpServer_TodaysExercises(t *testing.T) {
	t.Run("今日の曜日で絞り込まれること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		timerMock := timer.NewMockITimer(mockCtrl)
		timerMock.EXPECT().Now().Return(testUtil.NewTime("2024-01-02T09:00:00Z"))

		m := newServer(t, timerMock)

		result, err := m.todaysExercises(context.Background(), request("todays_exercises", nil))
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]}
		]`, resultText(t, result))
	})

	t.Run("曜日を指定できること", func(t *testing.T) {
		m := newServer(t, nil)

		result, err := m.todaysExercises(context.Background(), request("todays_exercises", map[string]any{"day": "Thursday"}))
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Squats", "type": "Strength", "reps": 8, "sets": 4, "days": ["Monday", "Thursday"]}
		]`, resultText(t, result))
	})
}

func TestMcpServer_SearchExercises(t *testing.T) {
	t.Run("種別で検索できること", func(t *testing.T) {
		m := newServer(t, nil)

		result, err := m.searchExercises(context.Background(), request("search_exercises", map[string]any{"category": "type", "query": "cardio"}))
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"name": "Running", "type": "Cardio", "reps": 1, "sets": 1, "days": ["Tuesday"]}
		]`, resultText(t, result))
	})

	t.Run("不明なカテゴリはツールエラーになること", func(t *testing.T) {
		m := newServer(t, nil)

		result, err := m.searchExercises(context.Background(), request("search_exercises", map[string]any{"category": "weight", "query": "10"}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})

	t.Run("引数が欠けている場合はツールエラーになること", func(t *testing.T) {
		m := newServer(t, nil)

		result, err := m.searchExercises(context.Background(), request("search_exercises", map[string]any{"category": "name"}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})
}

func TestMcpServer_Build(t *testing.T) {
	m := newServer(t, nil)
	s := m.Build("test")

	s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`))
	response := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))

	content, err := json.Marshal(response)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"list_exercises"`)
	assert.Contains(t, string(content), `"todays_exercises"`)
	assert.Contains(t, string(content), `"search_exercises"`)
}
