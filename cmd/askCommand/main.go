package askCommand

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/model/chat"
	"github.com/t-kuni/openfit/domain/service/assistant"
)

type AskCommand struct {
	CobraCommand *cobra.Command
}

func NewAskCommand(assistantService *assistant.AssistantService) *AskCommand {
	var save bool

	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask the fitness coach",
		Long:  `Ask the fitness coach a question. The answer is streamed while it is generated. The coach knows the exercises scheduled for today.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			assistantService.SaveTranscript(save)

			var askErr error
			for event := range assistantService.Ask(ctx, strings.Join(args, " ")) {
				switch event.Kind {
				case chat.EventDelta:
					fmt.Fprint(cmd.OutOrStdout(), event.Text)
				case chat.EventDone:
					fmt.Fprintln(cmd.OutOrStdout())
				case chat.EventError:
					askErr = event.Err
				}
			}
			if askErr != nil {
				return askErr
			}

			if save {
				fmt.Fprintf(cmd.ErrOrStderr(), "Conversation saved to %s\n", assistantService.TranscriptPath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "append the conversation to a CSV file in the history directory")

	return &AskCommand{
		CobraCommand: cmd,
	}
}
