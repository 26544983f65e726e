package assistantCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/external/claude"
	"github.com/t-kuni/openfit/domain/external/openAi"
	"github.com/t-kuni/openfit/domain/service/assistant"
	"github.com/t-kuni/openfit/domain/service/chatFactory"
)

type AssistantCommand struct {
	CobraCommand *cobra.Command
}

func NewAssistantCommand(assistantService *assistant.AssistantService) *AssistantCommand {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Configure the fitness coach",
	}

	cmd.AddCommand(newModelCommand(assistantService))
	cmd.AddCommand(newModelsCommand())

	return &AssistantCommand{
		CobraCommand: cmd,
	}
}

func newModelCommand(assistantService *assistant.AssistantService) *cobra.Command {
	return &cobra.Command{
		Use:   "model [MODEL]",
		Short: "Show or change the model answering questions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), assistantService.Model())
				return nil
			}

			model := args[0]
			if chatFactory.DriverOf(model) == chatFactory.DriverOpenAi && !openAi.ValidateModel(model) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is not a known OpenAI model\n", model)
			}

			if err := assistantService.SetModel(model); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assistant model set to %s\n", assistantService.Model())
			return nil
		},
	}
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the known models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range openAi.GetAvailableModels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, chatFactory.DriverOpenAi)
			}
			for _, m := range claude.GetAvailableModels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, chatFactory.DriverAnthropic)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", chatFactory.LocalModel, chatFactory.DriverLocal)
		},
	}
}
