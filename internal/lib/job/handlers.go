package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/devprojects/internal/config"
	"github.com/deppfellow/devprojects/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// welcomeSender delivers the welcome email; *email.Client in production.
type welcomeSender interface {
	SendWelcomeEmail(ctx context.Context, to, developerName string) error
}

// InitHandlers initializes dependencies required by job handlers.
//
// Without a Resend API key no email client is created and welcome tasks
// are acknowledged without sending anything.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if cfg.Integration.ResendAPIKey == "" {
		logger.Warn().Msg("Resend API key not provided, welcome emails are disabled")
		return
	}
	j.mailer = email.NewClient(cfg, logger)
}

// handleWelcomeEmailTask sends the welcome email of a new developer.
// Returning an error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	logger := j.logger.With().
		Str("type", "welcome").
		Int64("developer_id", p.DeveloperID).
		Str("to", p.To).
		Logger()

	if j.mailer == nil {
		logger.Info().Msg("Email client not configured, skipping welcome email")
		return nil
	}

	logger.Info().Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(ctx, p.To, p.Name); err != nil {
		logger.Error().Err(err).Msg("Failed to send welcome email")
		return err
	}

	logger.Info().Msg("Successfully sent welcome email")

	return nil
}
