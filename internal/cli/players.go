package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster in API order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := client.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(RosterFromModel(players))
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := client.GetOne(cmd.Context(), model.PlayerID(args[0]))
			if err != nil {
				if errors.Is(err, model.ErrPlayerNotFound) {
					return fmt.Errorf("player %s not found", args[0])
				}
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(PlayerFromModel(*player))
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var draft model.PlayerDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player, then print the refreshed roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := draft.Validate(); err != nil {
				return fmt.Errorf("--name, --position and --image-url are required: %w", err)
			}

			created, createErr := client.Create(cmd.Context(), draft)
			players, listErr := client.ListAll(cmd.Context())
			if createErr != nil {
				return fmt.Errorf("failed to add player: %w", createErr)
			}
			if listErr != nil {
				return fmt.Errorf("player added but the roster could not be refreshed: %w", listErr)
			}

			result := MutationResult{Action: "added", Roster: RosterFromModel(players)}
			if created != nil {
				p := PlayerFromModel(*created)
				result.Player = &p
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&draft.Position, "position", "", "Player position, stored as the breed (required)")
	cmd.Flags().StringVar(&draft.ImageURL, "image-url", "", "Player image URL (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("image-url")

	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a player, then print the refreshed roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.PlayerID(args[0])

			deleteErr := client.Delete(cmd.Context(), id)
			players, listErr := client.ListAll(cmd.Context())
			if deleteErr != nil {
				if errors.Is(deleteErr, model.ErrPlayerNotFound) {
					return fmt.Errorf("player %s not found", id)
				}
				return fmt.Errorf("failed to remove player: %w", deleteErr)
			}
			if listErr != nil {
				return fmt.Errorf("player removed but the roster could not be refreshed: %w", listErr)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(MutationResult{
				Action: "removed " + string(id),
				Roster: RosterFromModel(players),
			})
			return nil
		},
	}
}
