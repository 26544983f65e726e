package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/cmd/askCommand"
	"github.com/t-kuni/openfit/cmd/assistantCommand"
	"github.com/t-kuni/openfit/cmd/exerciseCommand"
	"github.com/t-kuni/openfit/cmd/initCommand"
	"github.com/t-kuni/openfit/cmd/mcpCommand"
	"github.com/t-kuni/openfit/cmd/playlistCommand"
	"github.com/t-kuni/openfit/cmd/searchCommand"
	"github.com/t-kuni/openfit/cmd/todayCommand"
	"github.com/t-kuni/openfit/cmd/versionCommand"
	"github.com/t-kuni/openfit/config"
	"github.com/t-kuni/openfit/domain/service/assistant"
	"github.com/t-kuni/openfit/domain/service/audioName"
	"github.com/t-kuni/openfit/domain/service/chatFactory"
	"github.com/t-kuni/openfit/domain/service/documentStore"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/domain/service/playlistResolve"
	"github.com/t-kuni/openfit/infrastructure/external/audioTag"
	"github.com/t-kuni/openfit/infrastructure/external/claude"
	"github.com/t-kuni/openfit/infrastructure/external/openAi"
	"github.com/t-kuni/openfit/infrastructure/mcpServer"
	documentRepo "github.com/t-kuni/openfit/infrastructure/repository/document"
	fileRepo "github.com/t-kuni/openfit/infrastructure/repository/file"
	"github.com/t-kuni/openfit/infrastructure/system/ksuid"
	"github.com/t-kuni/openfit/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	var configPath string
	var verbose bool

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	documentRepository := documentRepo.NewDocumentRepository()
	fileRepository := fileRepo.NewFileRepository()
	claudeClient := claude.NewClaudeClient()
	openAiClient := openAi.NewOpenAIClient()
	tagReader := audioTag.NewTagReader()
	timerSys := timer.NewTimer()
	ksuidGen := ksuid.NewKsuidGenerator()

	store := documentStore.NewDocumentStore(documentRepository, logger, config.DefaultMusicDir())
	exerciseManageSrv := exerciseManage.NewExerciseManageService(store)
	playlistResolveSrv := playlistResolve.NewPlaylistResolveService(store, fileRepository, timerSys, logger)
	audioNameSrv := audioName.NewAudioNameService(tagReader)
	chatFactorySrv := chatFactory.NewChatFactory(openAiClient, claudeClient)
	assistantSrv := assistant.NewAssistantService(
		store,
		exerciseManageSrv,
		chatFactorySrv,
		fileRepository,
		timerSys,
		ksuidGen,
		logger,
	)

	cmd := &cobra.Command{
		Use:          "openfit",
		Short:        "Plan workouts, play music and ask a fitness coach",
		Long:         `OpenFit keeps a workout routine, builds a playlist from a music folder and answers training questions with an LLM coach.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				level.Set(slog.LevelDebug)
			}
			if cmd.Annotations[skipStoreAnnotation] == "true" {
				return nil
			}

			path, err := config.ResolveDocumentPath(configPath)
			if err != nil {
				return err
			}
			return store.Open(path)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path of the program data file (default ~/.config/OpenFit/config.json)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")

	versionCmd := versionCommand.NewVersionCommand().CobraCommand
	versionCmd.Annotations = map[string]string{skipStoreAnnotation: "true"}

	cmd.AddCommand(initCommand.NewInitCommand(store).CobraCommand)
	cmd.AddCommand(exerciseCommand.NewExerciseCommand(exerciseManageSrv).CobraCommand)
	cmd.AddCommand(todayCommand.NewTodayCommand(exerciseManageSrv, timerSys).CobraCommand)
	cmd.AddCommand(searchCommand.NewSearchCommand(exerciseManageSrv).CobraCommand)
	cmd.AddCommand(playlistCommand.NewPlaylistCommand(playlistResolveSrv, audioNameSrv, fileRepository).CobraCommand)
	cmd.AddCommand(assistantCommand.NewAssistantCommand(assistantSrv).CobraCommand)
	cmd.AddCommand(askCommand.NewAskCommand(assistantSrv).CobraCommand)
	cmd.AddCommand(mcpCommand.NewMcpCommand(mcpServer.NewMcpServer(exerciseManageSrv, timerSys, logger)).CobraCommand)
	cmd.AddCommand(versionCmd)

	return &RootCommand{
		CobraCommand: cmd,
	}
}

const skipStoreAnnotation = "openfit/skip-store"
