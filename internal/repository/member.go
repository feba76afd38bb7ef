package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/boardhub/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MemberRepository reads and writes board memberships.
type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

const memberColumns = `bm.role, u.id::text, u.name, u.email`

func scanMember(row pgx.CollectableRow) (model.Member, error) {
	var m model.Member
	err := row.Scan(&m.Role, &m.User.ID, &m.User.Name, &m.User.Email)
	return m, err
}

// ListMembers returns the board's memberships in insertion order with
// their users resolved. A board that does not exist yields a nil slice
// and no error; a board without members yields an empty slice.
func (r *MemberRepository) ListMembers(ctx context.Context, boardID int64) ([]model.Member, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM boards WHERE id = $1)`, boardID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to look up board %d: %w", boardID, err)
	}
	if !exists {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM board_members bm
		JOIN users u ON u.id = bm.user_id
		WHERE bm.board_id = $1
		ORDER BY bm.position`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of board %d: %w", boardID, err)
	}

	members, err := pgx.CollectRows(rows, scanMember)
	if err != nil {
		return nil, fmt.Errorf("failed to scan members of board %d: %w", boardID, err)
	}
	if members == nil {
		members = []model.Member{}
	}

	return members, nil
}

// UpdateRole sets the role of the membership (boardID, userID) and returns
// it. It returns nil when no membership matched.
func (r *MemberRepository) UpdateRole(ctx context.Context, boardID int64, userID string, role model.Role) (*model.Member, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE board_members bm
		SET role = $3, updated_at = now()
		FROM users u
		WHERE bm.board_id = $1 AND bm.user_id = $2 AND u.id = bm.user_id
		RETURNING `+memberColumns, boardID, userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	member, err := pgx.CollectOneRow(rows, scanMember)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	return &member, nil
}

// RemoveMember deletes the membership (boardID, userID) unless its role is
// protected, and returns what was removed. It returns nil when nothing
// removable matched. The membership row is locked between the check and
// the delete.
func (r *MemberRepository) RemoveMember(ctx context.Context, boardID int64, userID string) (*model.Member, error) {
	var removed *model.Member

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT `+memberColumns+`
			FROM board_members bm
			JOIN users u ON u.id = bm.user_id
			WHERE bm.board_id = $1 AND bm.user_id = $2 AND bm.role <> $3
			FOR UPDATE OF bm`, boardID, userID, model.RoleSuperAdmin)
		if err != nil {
			return err
		}

		member, err := pgx.CollectOneRow(rows, scanMember)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`,
			boardID, userID); err != nil {
			return err
		}

		removed = &member
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return removed, nil
}
