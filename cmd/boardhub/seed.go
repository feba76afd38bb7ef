package main

import (
	"github.com/deppfellow/boardhub/internal/database"
	"github.com/deppfellow/boardhub/internal/lib/utils"
	"github.com/deppfellow/boardhub/internal/model"
	"github.com/deppfellow/boardhub/internal/repository"
	"github.com/spf13/cobra"
)

var demoMembers = []repository.SeedMember{
	{Name: "Ada Lovelace", Email: "ada@example.com", Role: model.RoleSuperAdmin},
	{Name: "Grace Hopper", Email: "grace@example.com", Role: model.RoleAdmin},
	{Name: "Linus Torvalds", Email: "linus@example.com", Role: model.RoleMember},
}

func newSeedCmd() *cobra.Command {
	var boardName string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo board with members and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			db, err := database.New(cfg, log, loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			seeded, err := repository.NewSeeder(db.Pool).SeedBoard(cmd.Context(), boardName, demoMembers)
			if err != nil {
				return err
			}

			log.Info().Int64("board_id", seeded.Board.ID).Msgf("seeded board with %d members", len(seeded.Members))
			utils.PrintJSON(seeded)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardName, "name", "Demo board", "name of the board to create")

	return cmd
}
