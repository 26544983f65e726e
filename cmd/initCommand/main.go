package initCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/service/documentStore"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

// NewInitCommand reports where the program data lives. The document itself
// is created by the store when it cannot be read.
func NewInitCommand(store *documentStore.DocumentStore) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the program data file",
		Long:  `Create the program data file with the default settings unless it already exists.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if store.Created() {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized OpenFit. Created %s\n", store.Path())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OpenFit is already initialized: %s\n", store.Path())
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}
