package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"workshop/internal/core/ports"
)

var ErrChannelIsNotConfigured = errors.New("notification channel is not configured")

var _ ports.NotificationService = &Service{}

// Service fans a notification out to every channel routed for its category.
// Channels are tried in route order; one failing does not stop the rest.
type Service struct {
	channels map[string]Channel
	routes   Routes
	logger   *slog.Logger
}

func NewService(routes Routes, logger *slog.Logger, channels ...Channel) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	byName := make(map[string]Channel, len(channels))
	for _, ch := range channels {
		if ch != nil {
			byName[ch.Name()] = ch
		}
	}

	return &Service{
		channels: byName,
		routes:   routes,
		logger:   logger.With("component", "notification_service"),
	}
}

func (s *Service) Notify(ctx context.Context, n ports.Notification) []ports.ChannelResult {
	n.Subject = s.routes.Subject(n)

	names := s.routes.For(n.Category)
	results := make([]ports.ChannelResult, 0, len(names))
	for _, name := range names {
		ch, ok := s.channels[name]
		if !ok {
			results = append(results, ports.ChannelResult{
				Channel: name,
				Err:     fmt.Errorf("%w: %s", ErrChannelIsNotConfigured, name),
			})
			continue
		}

		id, err := ch.Send(ctx, n)
		if err != nil {
			s.logger.WarnContext(ctx, "notification delivery failed",
				slog.String("channel", name),
				slog.String("category", string(n.Category)),
				slog.Any("error", err),
			)
		}
		results = append(results, ports.ChannelResult{Channel: name, MessageID: id, Err: err})
	}
	return results
}
