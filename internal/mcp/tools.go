package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListActivitiesInput is empty; the tool takes no arguments.
type ListActivitiesInput struct{}

// ActivityInfo is the public shape of one activity.
type ActivityInfo struct {
	Name            string   `json:"name" jsonschema:"activity name, used as the signup key"`
	Description     string   `json:"description" jsonschema:"what the activity offers"`
	Schedule        string   `json:"schedule" jsonschema:"meeting schedule"`
	MaxParticipants int      `json:"max_participants" jsonschema:"advisory capacity"`
	Participants    []string `json:"participants" jsonschema:"enrolled student emails in signup order"`
}

// ListActivitiesResult contains all activities in catalog order.
type ListActivitiesResult struct {
	Activities []ActivityInfo `json:"activities"`
}

// RosterInput identifies one student and one activity.
type RosterInput struct {
	Activity string `json:"activity" jsonschema:"exact activity name (case-sensitive)"`
	Email    string `json:"email" jsonschema:"student email address"`
}

// RosterResult confirms a roster change.
type RosterResult struct {
	Message string `json:"message" jsonschema:"confirmation message"`
}

func registerTools(server *sdkmcp.Server, svc ActivityService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List all extracurricular activities with their current rosters",
	}, listActivitiesHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "signup_student",
		Description: "Sign a student email up for an activity",
	}, signupHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "unregister_student",
		Description: "Remove a student email from an activity's roster",
	}, unregisterHandler(svc))
}

func listActivitiesHandler(svc ActivityService) sdkmcp.ToolHandlerFor[ListActivitiesInput, ListActivitiesResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesResult, error) {
		acts, err := svc.List(ctx)
		if err != nil {
			return nil, ListActivitiesResult{}, err
		}

		out := ListActivitiesResult{Activities: make([]ActivityInfo, 0, len(acts))}
		for _, act := range acts {
			participants := act.Participants
			if participants == nil {
				participants = []string{}
			}
			out.Activities = append(out.Activities, ActivityInfo{
				Name:            act.Name,
				Description:     act.Description,
				Schedule:        act.Schedule,
				MaxParticipants: act.MaxParticipants,
				Participants:    participants,
			})
		}
		return nil, out, nil
	}
}

func signupHandler(svc ActivityService) sdkmcp.ToolHandlerFor[RosterInput, RosterResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input RosterInput) (*sdkmcp.CallToolResult, RosterResult, error) {
		if err := svc.Signup(ctx, input.Activity, input.Email); err != nil {
			return nil, RosterResult{}, err
		}
		return nil, RosterResult{
			Message: fmt.Sprintf("Signed up %s for %s", input.Email, input.Activity),
		}, nil
	}
}

func unregisterHandler(svc ActivityService) sdkmcp.ToolHandlerFor[RosterInput, RosterResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input RosterInput) (*sdkmcp.CallToolResult, RosterResult, error) {
		if err := svc.Unregister(ctx, input.Activity, input.Email); err != nil {
			return nil, RosterResult{}, err
		}
		return nil, RosterResult{
			Message: fmt.Sprintf("Unregistered %s from %s", input.Email, input.Activity),
		}, nil
	}
}
