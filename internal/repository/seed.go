package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/boardhub/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedMember describes a membership to create with Seeder.SeedBoard.
// Users are matched by email and created when missing.
type SeedMember struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// SeededBoard is the result of SeedBoard.
type SeededBoard struct {
	Board   model.Board    `json:"board"`
	Members []model.Member `json:"members"`
}

// Seeder creates fixture data. Memberships cannot be created through the
// HTTP API, so local environments and tests populate boards with it.
type Seeder struct {
	pool *pgxpool.Pool
}

func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{pool: pool}
}

// SeedBoard creates a board and adds members to it in the given order.
func (s *Seeder) SeedBoard(ctx context.Context, name string, members []SeedMember) (*SeededBoard, error) {
	out := &SeededBoard{Members: make([]model.Member, 0, len(members))}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO boards (name) VALUES ($1)
			RETURNING id, name, created_at, updated_at`, name,
		).Scan(&out.Board.ID, &out.Board.Name, &out.Board.CreatedAt, &out.Board.UpdatedAt)
		if err != nil {
			return err
		}

		for _, sm := range members {
			user := model.User{Name: sm.Name, Email: sm.Email}
			err := tx.QueryRow(ctx, `
				INSERT INTO users (name, email) VALUES ($1, $2)
				ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
				RETURNING id::text`, sm.Name, sm.Email,
			).Scan(&user.ID)
			if err != nil {
				return err
			}

			if _, err := tx.Exec(ctx,
				`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)`,
				out.Board.ID, user.ID, sm.Role); err != nil {
				return err
			}

			out.Members = append(out.Members, model.Member{Role: sm.Role, User: user})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed board %q: %w", name, err)
	}

	return out, nil
}
