package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mergington/activities/internal/domain/activity"
)

const serverInstructions = `Roster tools for Mergington High School's extracurricular activities.
Use list_activities to see offerings and current rosters, then signup_student
or unregister_student with the exact activity name (case-sensitive) and a
student email.`

// ActivityService defines roster operations needed by the MCP tools.
type ActivityService interface {
	List(ctx context.Context) ([]activity.Activity, error)
	Signup(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// Config contains server configuration.
type Config struct {
	Service ActivityService
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with the roster tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "mergington-activities",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Service)

	return server
}
