package service

import (
	"context"

	"github.com/deppfellow/boardhub/internal/errs"
	"github.com/deppfellow/boardhub/internal/lib/job"
	"github.com/deppfellow/boardhub/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const (
	MessageRoleUpdated  = "Member role updated successfully"
	MessageMemberDelete = "Member deleted successfully"
	MessageUnknownRole  = "Role does not exist"
	MessageNotRemovable = "Member not found or Member is superAdmin"

	CodeMemberNotRemovable = "MEMBER_NOT_REMOVABLE"
)

// MemberRepository is the persistence the member service needs.
type MemberRepository interface {
	ListMembers(ctx context.Context, boardID int64) ([]model.Member, error)
	UpdateRole(ctx context.Context, boardID int64, userID string, role model.Role) (*model.Member, error)
	RemoveMember(ctx context.Context, boardID int64, userID string) (*model.Member, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type MemberService struct {
	repo MemberRepository
	jobs TaskEnqueuer
}

// NewMemberService builds a MemberService. jobs may be nil, which turns
// notifications off.
func NewMemberService(repo MemberRepository, jobs TaskEnqueuer) *MemberService {
	return &MemberService{repo: repo, jobs: jobs}
}

// ListMembers returns the memberships of a board, or nil when the board
// does not exist.
func (s *MemberService) ListMembers(ctx context.Context, payload *model.ListMembersPayload) ([]model.Member, error) {
	return s.repo.ListMembers(ctx, payload.BoardID())
}

// UpdateMemberRole changes a member's role. An unknown role is rejected
// with 406 before anything is written. Updating a membership that does not
// exist is not an error.
func (s *MemberService) UpdateMemberRole(ctx context.Context, payload *model.UpdateMemberRolePayload) error {
	role := model.Role(payload.Role)
	if !role.IsValid() {
		return errs.NewNotAcceptableError(MessageUnknownRole)
	}

	boardID := payload.BoardID()

	member, err := s.repo.UpdateRole(ctx, boardID, payload.Member, role)
	if err != nil {
		return err
	}

	log := zerolog.Ctx(ctx)
	if member == nil {
		log.Debug().
			Int64("board_id", boardID).
			Str("member", payload.Member).
			Msg("role update matched no membership")
		return nil
	}

	log.Info().
		Int64("board_id", boardID).
		Str("member", payload.Member).
		Str("role", string(role)).
		Msg("member role updated")

	s.notify(ctx, func() (*asynq.Task, error) {
		return job.NewMemberRoleChangedTask(member.User.Email, member.User.Name, boardID, string(member.Role))
	})

	return nil
}

// DeleteMember removes a membership. SUPER_ADMIN memberships are never
// removed; they are reported the same way as a missing membership.
func (s *MemberService) DeleteMember(ctx context.Context, payload *model.DeleteMemberPayload) error {
	boardID := payload.BoardID()

	member, err := s.repo.RemoveMember(ctx, boardID, payload.Member)
	if err != nil {
		return err
	}

	if member == nil {
		code := CodeMemberNotRemovable
		return errs.NewBadRequestError(MessageNotRemovable, &code, nil)
	}

	zerolog.Ctx(ctx).Info().
		Int64("board_id", boardID).
		Str("member", payload.Member).
		Msg("member removed")

	s.notify(ctx, func() (*asynq.Task, error) {
		return job.NewMemberRemovedTask(member.User.Email, member.User.Name, boardID)
	})

	return nil
}

// notify enqueues a notification. Failures are logged only: the
// membership change has already been committed.
func (s *MemberService) notify(ctx context.Context, build func() (*asynq.Task, error)) {
	if s.jobs == nil {
		return
	}

	log := zerolog.Ctx(ctx)

	task, err := build()
	if err != nil {
		log.Error().Err(err).Msg("failed to build notification task")
		return
	}

	info, err := s.jobs.EnqueueContext(ctx, task)
	if err != nil {
		log.Error().Err(err).Str("task", task.Type()).Msg("failed to enqueue notification")
		return
	}

	log.Debug().Str("task", task.Type()).Str("task_id", info.ID).Msg("notification enqueued")
}
