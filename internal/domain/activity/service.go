package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mergington/activities/internal/repository"
)

// Service handles roster operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all activities in catalog order.
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	acts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return acts, nil
}

// Get fetches a single activity by exact name.
func (s *Service) Get(ctx context.Context, name string) (*Activity, error) {
	act, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return act, nil
}

// Signup appends email to the activity's roster. The activity name is
// matched exactly, case-sensitive. Capacity is advisory and not enforced.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	if err := s.repo.AddParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrActivityNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return ErrAlreadyRegistered
		}
		return fmt.Errorf("adding participant: %w", err)
	}

	s.logger.Info("participant signed up", "activity", name, "email", email)
	return nil
}

// Unregister removes email from the activity's roster, preserving the order
// of the remaining participants.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	if err := s.repo.RemoveParticipant(ctx, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrActivityNotFound
		case errors.Is(err, repository.ErrNotMember):
			return ErrNotRegistered
		}
		return fmt.Errorf("removing participant: %w", err)
	}

	s.logger.Info("participant unregistered", "activity", name, "email", email)
	return nil
}
