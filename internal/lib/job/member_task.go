package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskMemberRemoved is sent after a membership is deleted.
	TaskMemberRemoved = "member:removed"

	// TaskMemberRoleChanged is sent after a membership role is updated.
	TaskMemberRoleChanged = "member:role_changed"
)

// MemberNotificationPayload is the JSON payload shared by member tasks.
// Role is empty for removals.
type MemberNotificationPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	BoardID int64  `json:"board_id"`
	Role    string `json:"role,omitempty"`
}

func newMemberTask(taskType string, p MemberNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		taskType,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewMemberRemovedTask builds the removal notification task.
func NewMemberRemovedTask(to, name string, boardID int64) (*asynq.Task, error) {
	return newMemberTask(TaskMemberRemoved, MemberNotificationPayload{
		To:      to,
		Name:    name,
		BoardID: boardID,
	})
}

// NewMemberRoleChangedTask builds the role change notification task.
func NewMemberRoleChangedTask(to, name string, boardID int64, role string) (*asynq.Task, error) {
	return newMemberTask(TaskMemberRoleChanged, MemberNotificationPayload{
		To:      to,
		Name:    name,
		BoardID: boardID,
		Role:    role,
	})
}
