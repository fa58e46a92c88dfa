package delivery

import (
	"context"

	"github.com/jobflix/jobflix-backend/internal/logger"
)

// LogPushSender stands in for the push delivery collaborator in environments
// without a configured push gateway.
type LogPushSender struct {
	log *logger.Logger
}

func NewLogPushSender(log *logger.Logger) *LogPushSender {
	return &LogPushSender{log: log.With("sender", "push")}
}

func (s *LogPushSender) Channel() string { return "push" }

func (s *LogPushSender) Send(ctx context.Context, p Payload) error {
	s.log.Debug("push notification", "title", p.Title, "url", p.URL)
	return nil
}
