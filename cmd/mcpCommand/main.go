package mcpCommand

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/cmd/versionCommand"
	"github.com/t-kuni/openfit/infrastructure/mcpServer"
)

type McpCommand struct {
	CobraCommand *cobra.Command
}

func NewMcpCommand(server *mcpServer.McpServer) *McpCommand {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the workout routine to MCP clients over stdio",
		Long:  `Run a Model Context Protocol server on stdin and stdout. AI clients can list today's exercises and search the routine. The server only reads the program data.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return server.Serve(ctx, versionCommand.Version, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return &McpCommand{
		CobraCommand: cmd,
	}
}
