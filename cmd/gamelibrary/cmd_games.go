package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"gamelibrary/models"
	"gamelibrary/services"
	"gamelibrary/utils/validation"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every game in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := services.NewCatalogStore(a.client, services.LogNotifier{Logger: a.logger}, a.logger)
			store.Load(cmd.Context())
			if status := store.Status(); status.Phase() == services.PhaseFailed {
				return errors.New(services.MsgLoadGamesFailed)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tYEAR\tRATING\tMULTIPLAYER")
			for _, game := range store.Records() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.1f\t%t\n",
					game.ID, game.Title, game.Category, game.ReleaseYear, game.Rating, game.IsMultiplayer)
			}
			return w.Flush()
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var candidate models.NewGame

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Validate a game and add it to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := services.NewCategoryStore(a.client, a.logger)
			categories.Load(cmd.Context())

			if violations := validation.ValidateGame(candidate, categories.Categories()); !violations.Empty() {
				for _, field := range violations.Fields() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, violations[field])
				}
				return violations
			}

			store := services.NewCatalogStore(a.client, services.LogNotifier{Logger: a.logger}, a.logger)
			result := store.Append(cmd.Context(), candidate)
			if !result.Success {
				return result.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q with id %d\n", result.Record.Title, result.Record.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&candidate.Title, "title", "", "game title (2-100 characters)")
	flags.StringVar(&candidate.Category, "category", "", "game category")
	flags.IntVar(&candidate.ReleaseYear, "year", 0, "release year (1971-2024)")
	flags.Float64Var(&candidate.Rating, "rating", 0, "rating (0-10)")
	flags.BoolVar(&candidate.IsMultiplayer, "multiplayer", false, "the game supports multiplayer")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the allowed game categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := services.NewCategoryStore(a.client, a.logger)
			store.Load(cmd.Context())
			if snapshot := store.Snapshot(); snapshot.Error != nil {
				return errors.New(*snapshot.Error)
			}
			for _, category := range store.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
			return nil
		},
	}
}
