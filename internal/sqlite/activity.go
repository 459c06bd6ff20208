package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/repository"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Seed inserts the catalog if the activities table is empty. Existing data
// wins so rosters survive restarts.
func (r *ActivityRepository) Seed(ctx context.Context, acts []activity.Activity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing activities: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i, act := range acts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants, position) VALUES (?, ?, ?, ?, ?)`,
			act.Name, act.Description, act.Schedule, act.MaxParticipants, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", act.Name, err)
		}
		for j, email := range act.Participants {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO participants (activity_name, email, position) VALUES (?, ?, ?)`,
				act.Name, email, j,
			)
			if err != nil {
				return fmt.Errorf("failed to seed roster for %q: %w", act.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// List returns all activities with rosters in stored order
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, description, schedule, max_participants
		FROM activities
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var acts []activity.Activity
	for rows.Next() {
		var act activity.Activity
		if err := rows.Scan(&act.Name, &act.Description, &act.Schedule, &act.MaxParticipants); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		acts = append(acts, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	for i := range acts {
		roster, err := r.roster(ctx, acts[i].Name)
		if err != nil {
			return nil, err
		}
		acts[i].Participants = roster
	}

	return acts, nil
}

// Get retrieves a single activity by exact name
func (r *ActivityRepository) Get(ctx context.Context, name string) (*activity.Activity, error) {
	var act activity.Activity
	err := r.db.QueryRowContext(ctx, `
		SELECT name, description, schedule, max_participants
		FROM activities
		WHERE name = ?
	`, name).Scan(&act.Name, &act.Description, &act.Schedule, &act.MaxParticipants)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	roster, err := r.roster(ctx, name)
	if err != nil {
		return nil, err
	}
	act.Participants = roster

	return &act, nil
}

// AddParticipant appends email to the roster inside a transaction so the
// duplicate check cannot interleave with another writer.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities WHERE name = ?`, name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check activity: %w", err)
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	var member int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE activity_name = ? AND email = ?`, name, email).Scan(&member); err != nil {
		return fmt.Errorf("failed to check roster: %w", err)
	}
	if member > 0 {
		return repository.ErrDuplicate
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO participants (activity_name, email, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM participants WHERE activity_name = ?))
	`, name, email, name)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to add participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit signup: %w", err)
	}
	return nil
}

// RemoveParticipant deletes email from the roster
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities WHERE name = ?`, name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check activity: %w", err)
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE activity_name = ? AND email = ?`, name, email)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotMember
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit unregister: %w", err)
	}
	return nil
}

func (r *ActivityRepository) roster(ctx context.Context, name string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT email FROM participants WHERE activity_name = ? ORDER BY position ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	defer rows.Close()

	roster := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster: %w", err)
	}
	return roster, nil
}
