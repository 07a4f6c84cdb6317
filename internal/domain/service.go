// Package domain defines the business logic for the activity registry.
package domain

import (
	"context"
	"errors"
	"fmt"

	"example.com/activities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp indicates the email is not on the activity's roster.
	ErrNotSignedUp = errors.New("student is not signed up")
)

// Registry captures the operations of the activity store. Mutations return a
// copy of the activity as it stands after the change.
type Registry interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) (*Activity, error)
	Unregister(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates registry operations and owns the confirmation wording.
type Service struct {
	registry Registry
}

// NewService constructs a Service.
func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.List(ctx)
}

// GetActivity fetches one activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	return s.registry.Get(ctx, name)
}

// Signup registers email for the named activity and returns a confirmation
// message referencing both. Capacity is intentionally not checked against
// MaxParticipants; the registry only rejects unknown names and duplicates.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	activity, err := s.registry.Signup(ctx, name, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrActivityNotFound):
			observability.RecordSignupRejected("not_found")
		case errors.Is(err, ErrAlreadySignedUp):
			observability.RecordSignupRejected("duplicate")
		}
		return "", err
	}

	observability.RecordSignupAccepted(name)
	observability.SetParticipants(name, len(activity.Participants))
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	activity, err := s.registry.Unregister(ctx, name, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrActivityNotFound):
			observability.RecordUnregisterRejected("not_found")
		case errors.Is(err, ErrNotSignedUp):
			observability.RecordUnregisterRejected("not_signed_up")
		}
		return "", err
	}

	observability.RecordUnregistered(name)
	observability.SetParticipants(name, len(activity.Participants))
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}
