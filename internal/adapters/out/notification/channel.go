// Package notification delivers client notifications over the channels
// configured for each notification category.
package notification

import (
	"context"

	"workshop/internal/core/ports"
)

// Channel sends one notification and returns the id it was sent under.
type Channel interface {
	Name() string
	Send(ctx context.Context, n ports.Notification) (string, error)
}
