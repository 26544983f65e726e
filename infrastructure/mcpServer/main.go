package mcpServer

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/t-kuni/openfit/domain/service/exerciseFilter"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/domain/system/timer"
)

const serverName = "OpenFit"

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List every exercise of the workout routine with its type, reps, sets and weekdays."),
)

var toolTodaysExercises = mcp.NewTool("todays_exercises",
	mcp.WithDescription("List the exercises scheduled for today, or for the given weekday."),
	mcp.WithString("day", mcp.Description("Weekday such as 'Monday'. Defaults to today.")),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search exercises by one field. Case-insensitive substring match. For days and type a comma separated query matches any of its values."),
	mcp.WithString("category", mcp.Required(), mcp.Description("Field to search"), mcp.Enum(exerciseFilter.Categories()...)),
	mcp.WithString("query", mcp.Required(), mcp.Description("Search text, e.g. 'monday, friday' for days")),
)

// McpServer exposes the exercise routine read-only to MCP clients.
type McpServer struct {
	exerciseManageService *exerciseManage.ExerciseManageService
	timer                 timer.ITimer
	log                   *slog.Logger
}

func NewMcpServer(exerciseManageService *exerciseManage.ExerciseManageService, timer timer.ITimer, log *slog.Logger) *McpServer {
	return &McpServer{
		exerciseManageService: exerciseManageService,
		timer:                 timer,
		log:                   log,
	}
}

// Build creates the MCP server with all tools registered.
func (m *McpServer) Build(version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithInstructions("OpenFit workout routine. Query the exercises of the user's weekly plan."),
	)

	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: m.listExercises},
		server.ServerTool{Tool: toolTodaysExercises, Handler: m.todaysExercises},
		server.ServerTool{Tool: toolSearchExercises, Handler: m.searchExercises},
	)

	return s
}

// Serve speaks MCP over in and out until ctx is cancelled or in is closed.
func (m *McpServer) Serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(m.Build(version))
	stdio.SetErrorLogger(slog.NewLogLogger(m.log.Handler(), slog.LevelError))

	m.log.Debug("mcp server listening on stdio")
	return stdio.Listen(ctx, in, out)
}

func (m *McpServer) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(m.log, "list_exercises", m.exerciseManageService.GetAll())
}

func (m *McpServer) todaysExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day := req.GetString("day", "")
	if day == "" {
		day = m.timer.Now().Weekday().String()
	}

	return jsonResult(m.log, "todays_exercises", exerciseFilter.FilterByDay(m.exerciseManageService.GetAll(), day))
}

func (m *McpServer) searchExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("category parameter is required"), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	result, err := exerciseFilter.Search(m.exerciseManageService.GetAll(), category, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(m.log, "search_exercises", result)
}

func jsonResult(log *slog.Logger, tool string, data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		log.Error("mcp "+tool, "error", err)
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
