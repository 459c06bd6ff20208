package activity

import "context"

// Repository provides storage for activities and their rosters.
// Membership checks and roster mutations must be atomic per activity.
type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}
