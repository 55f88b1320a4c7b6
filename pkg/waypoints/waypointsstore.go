// FILE: waypoints/store.go

package waypoints

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("waypoint not found")
	ErrDuplicateCode = errors.New("waypoint code already registered")
)

// Store is the interface for storing and retrieving waypoints.
type Store interface {
	Add(ctx context.Context, wp Waypoint) error
	GetByID(ctx context.Context, id uuid.UUID) (Waypoint, error)
	GetByCode(ctx context.Context, code string) (Waypoint, error)
	List(ctx context.Context) ([]Waypoint, error)
}
