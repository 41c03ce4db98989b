package main

import (
	"log/slog"

	"gamelibrary/config"
	"gamelibrary/services"

	"github.com/spf13/cobra"
)

// app carries what every command needs once the configuration is loaded
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	client *services.CatalogClient
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "gamelibrary",
		Short:        "Keep a session catalog of games in sync with the game library service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Logger()
			a.client = services.NewCatalogClient(cfg.CatalogURL, cfg.RemoteTimeout)
			slog.SetDefault(a.logger)
			return nil
		},
	}

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "List and add games",
	}
	gamesCmd.AddCommand(newListCmd(a), newAddCmd(a))

	rootCmd.AddCommand(newServeCmd(a), gamesCmd, newCategoriesCmd(a))
	return rootCmd
}
