package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to      string
	name    string
	boardID int64
	role    string
}

type fakeMailer struct {
	removed []sentMail
	changed []sentMail
	err     error
}

func (f *fakeMailer) SendMemberRemovedEmail(to, userName string, boardID int64) error {
	f.removed = append(f.removed, sentMail{to: to, name: userName, boardID: boardID})
	return f.err
}

func (f *fakeMailer) SendRoleChangedEmail(to, userName string, boardID int64, role string) error {
	f.changed = append(f.changed, sentMail{to: to, name: userName, boardID: boardID, role: role})
	return f.err
}

func newTestJobService(m Mailer) *JobService {
	nop := zerolog.Nop()
	return &JobService{mailer: m, logger: &nop}
}

func TestNewMemberTasks(t *testing.T) {
	task, err := NewMemberRemovedTask("ada@example.com", "Ada", 7)
	require.NoError(t, err)
	assert.Equal(t, TaskMemberRemoved, task.Type())

	var p MemberNotificationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, MemberNotificationPayload{To: "ada@example.com", Name: "Ada", BoardID: 7}, p)
	assert.NotContains(t, string(task.Payload()), `"role"`)

	task, err = NewMemberRoleChangedTask("ada@example.com", "Ada", 7, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, TaskMemberRoleChanged, task.Type())
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "ADMIN", p.Role)
}

func TestHandleMemberRemovedTask(t *testing.T) {
	m := &fakeMailer{}
	j := newTestJobService(m)

	task, err := NewMemberRemovedTask("ada@example.com", "Ada", 7)
	require.NoError(t, err)

	require.NoError(t, j.handleMemberRemovedTask(context.Background(), task))
	require.Len(t, m.removed, 1)
	assert.Equal(t, sentMail{to: "ada@example.com", name: "Ada", boardID: 7}, m.removed[0])
	assert.Empty(t, m.changed)
}

func TestHandleMemberRoleChangedTask(t *testing.T) {
	m := &fakeMailer{}
	j := newTestJobService(m)

	task, err := NewMemberRoleChangedTask("ada@example.com", "Ada", 7, "ADMIN")
	require.NoError(t, err)

	require.NoError(t, j.handleMemberRoleChangedTask(context.Background(), task))
	require.Len(t, m.changed, 1)
	assert.Equal(t, "ADMIN", m.changed[0].role)
}

func TestHandlers_PropagateMailerError(t *testing.T) {
	m := &fakeMailer{err: errors.New("resend down")}
	j := newTestJobService(m)

	task, err := NewMemberRemovedTask("ada@example.com", "Ada", 7)
	require.NoError(t, err)

	assert.EqualError(t, j.handleMemberRemovedTask(context.Background(), task), "resend down")
}

func TestHandlers_RejectMalformedPayload(t *testing.T) {
	m := &fakeMailer{}
	j := newTestJobService(m)

	task := asynq.NewTask(TaskMemberRoleChanged, []byte("{not json"))
	err := j.handleMemberRoleChangedTask(context.Background(), task)

	require.Error(t, err)
	assert.Contains(t, err.Error(), TaskMemberRoleChanged)
	assert.Empty(t, m.changed)
}
