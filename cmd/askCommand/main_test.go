package askCommand

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t-kuni/openfit/domain/service/assistant"
	"github.com/t-kuni/openfit/domain/service/chatFactory"
	"github.com/t-kuni/openfit/domain/service/documentStore"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/domain/system/ksuid"
	"github.com/t-kuni/openfit/domain/system/timer"
	documentRepo "github.com/t-kuni/openfit/infrastructure/repository/document"
	fileRepo "github.com/t-kuni/openfit/infrastructure/repository/file"
	"github.com/t-kuni/openfit/testUtil"
	"go.uber.org/mock/gomock"
)

const seed = `{
    "exercises": [],
    "playlist_source": "/music",
    "assistant": {"model": "local", "token": ""}
}`

const answer = "Keep it simple: warm up for five minutes, do your scheduled exercises with good form, and rest at least one day between hard sessions of the same muscle group."

func newService(t *testing.T, space testUtil.Space, timerSys timer.ITimer, ksuidGen ksuid.IKsuid) *assistant.AssistantService {
	t.Helper()

	space.WriteFile("config.json", []byte(seed))
	store := documentStore.NewDocumentStore(documentRepo.NewDocumentRepository(), testUtil.DiscardLogger(), "/music")
	require.NoError(t, store.Open(filepath.Join(space.Dir, "config.json")))

	return assistant.NewAssistantService(
		store,
		exerciseManage.NewExerciseManageService(store),
		chatFactory.NewChatFactory(nil, nil),
		fileRepo.NewFileRepository(),
		timerSys,
		ksuidGen,
		testUtil.DiscardLogger(),
	)
}

func execute(srv *assistant.AssistantService, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.AddCommand(NewAskCommand(srv).CobraCommand)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"ask"}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAskCommand(t *testing.T) {
	t.Run("回答がストリーミングで表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		timerMock := timer.NewMockITimer(mockCtrl)
		timerMock.EXPECT().Now().Return(testUtil.NewTime("2024-01-01T09:00:00Z")).AnyTimes()

		srv := newService(t, space, timerMock, ksuid.NewMockIKsuid(mockCtrl))

		out, _, err := execute(srv, "How", "often", "should", "I", "train?")
		require.NoError(t, err)

		assert.Equal(t, answer+"\n", out)
		history := srv.History()
		require.Len(t, history, 2)
		assert.Equal(t, "How often should I train?", history[0].Content)
		space.AssertNotExistPath("history")
	})

	t.Run("--saveで会話がCSVに保存されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		timerMock := timer.NewMockITimer(mockCtrl)
		timerMock.EXPECT().Now().Return(testUtil.NewTime("2024-01-01T21:05:00Z")).AnyTimes()
		ksuidMock := ksuid.NewMockIKsuid(mockCtrl)
		ksuidMock.EXPECT().New().Return("session1")

		srv := newService(t, space, timerMock, ksuidMock)

		_, errOut, err := execute(srv, "--save", "Hello")
		require.NoError(t, err)

		path := filepath.Join(space.Dir, "history", "session1", "conversation.csv")
		assert.Equal(t, "Conversation saved to "+path+"\n", errOut)
		space.AssertFile(path, func(actual []byte) {
			lines := strings.Split(strings.TrimSpace(string(actual)), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, "author,timestamp,content", lines[0])
			assert.Equal(t, "user,01.01.2024 09:05 PM,Hello", lines[1])
			assert.True(t, strings.HasPrefix(lines[2], "assistant,01.01.2024 09:05 PM,"))
		})
	})
}
