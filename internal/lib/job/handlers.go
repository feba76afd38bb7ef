package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func decodeMemberPayload(t *asynq.Task) (MemberNotificationPayload, error) {
	var p MemberNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("failed to unmarshal %s payload: %w", t.Type(), err)
	}
	return p, nil
}

// handleMemberRemovedTask emails the removed member.
// A returned error makes Asynq retry the task.
func (j *JobService) handleMemberRemovedTask(ctx context.Context, t *asynq.Task) error {
	p, err := decodeMemberPayload(t)
	if err != nil {
		return err
	}

	log := j.logger.With().
		Str("type", t.Type()).
		Str("to", p.To).
		Int64("board_id", p.BoardID).
		Logger()

	log.Info().Msg("Processing member removed task")

	if err := j.mailer.SendMemberRemovedEmail(p.To, p.Name, p.BoardID); err != nil {
		log.Error().Err(err).Msg("Failed to send member removed email")
		return err
	}

	log.Info().Msg("Sent member removed email")
	return nil
}

// handleMemberRoleChangedTask emails the member whose role changed.
func (j *JobService) handleMemberRoleChangedTask(ctx context.Context, t *asynq.Task) error {
	p, err := decodeMemberPayload(t)
	if err != nil {
		return err
	}

	log := j.logger.With().
		Str("type", t.Type()).
		Str("to", p.To).
		Int64("board_id", p.BoardID).
		Str("role", p.Role).
		Logger()

	log.Info().Msg("Processing member role changed task")

	if err := j.mailer.SendRoleChangedEmail(p.To, p.Name, p.BoardID, p.Role); err != nil {
		log.Error().Err(err).Msg("Failed to send role changed email")
		return err
	}

	log.Info().Msg("Sent role changed email")
	return nil
}
