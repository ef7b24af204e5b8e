package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/iotagame/internal/api/request"
	"github.com/mcoot/iotagame/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameUndoCmd())
	cmd.AddCommand(newGameEndTurnCmd())
	cmd.AddCommand(newGameAbandonCmd())
	cmd.AddCommand(newGameHintsCmd())
	cmd.AddCommand(newGameCheckCmd())

	return cmd
}

func gamePath(id string) string {
	return "/api/v1/games/" + id
}

func newGameNewCmd() *cobra.Command {
	var req request.CreateGameRequest
	var duplicates, wildCards int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Deal a new game and save its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("duplicates") {
				req.Duplicates = &duplicates
			}
			if cmd.Flags().Changed("wild-cards") {
				req.WildCards = &wildCards
			}

			var result response.CreateGameResponse
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Shapes, "shapes", 0, "Number of shapes (3-6)")
	cmd.Flags().IntVar(&req.Colors, "colors", 0, "Number of colors (3-6)")
	cmd.Flags().IntVar(&req.Numbers, "numbers", 0, "Number of numbers (3-6)")
	cmd.Flags().IntVar(&req.HandSize, "hand-size", 0, "Cards held between turns")
	cmd.Flags().IntVar(&req.MaxPlacementsPerTurn, "max-placements", 0, "Most cards placed in one turn")
	cmd.Flags().IntVar(&duplicates, "duplicates", 0, "Extra copies of the first card")
	cmd.Flags().IntVar(&wildCards, "wild-cards", 0, "Wild cards in the deck")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show the board, hand and score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Get(gamePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/games"
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result response.GameList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Most games to list")

	return cmd
}

// parsePlacement reads the card and position arguments shared by place and check
func parsePlacement(args []string) (request.PlaceRequest, error) {
	row, err := strconv.Atoi(args[2])
	if err != nil {
		return request.PlaceRequest{}, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(args[3])
	if err != nil {
		return request.PlaceRequest{}, fmt.Errorf("invalid col: %w", err)
	}

	return request.PlaceRequest{CardID: args[1], Row: row, Col: col}, nil
}

func newGamePlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place <game-id> <card-id> <row> <col>",
		Short: "Place a card from your hand",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parsePlacement(args)
			if err != nil {
				return err
			}

			var result response.Game
			if err := client.Post(gamePath(args[0])+"/placements", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
	// Negative coordinates are arguments, not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newGameUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <game-id>",
		Short: "Take back the last card placed this turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Delete(gamePath(args[0])+"/placements/last", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameEndTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-turn <game-id>",
		Short: "Score this turn's cards and draw back up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TurnResult

			if err := client.Post(gamePath(args[0])+"/turns", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <game-id>",
		Short: "Abandon the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(gamePath(args[0]), nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Game abandoned")
			return nil
		},
	}
}

func newGameHintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hints <game-id>",
		Short: "List open and impossible squares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Hints

			if err := client.Get(gamePath(args[0])+"/hints", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <game-id> <card-id> <row> <col>",
		Short: "Check whether a card could be placed without placing it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parsePlacement(args)
			if err != nil {
				return err
			}

			var result response.Verdict
			if err := client.Post(gamePath(args[0])+"/check", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
