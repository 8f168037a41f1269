package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noovas/games-catalog-api/internal/database"
	"github.com/noovas/games-catalog-api/internal/models"
	"github.com/noovas/games-catalog-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the catalog database schema.

Runs GORM auto migration for all catalog models. With --seed, a default
set of genres is inserted so the filter UI has something to offer on a
fresh install.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("seed", false, "insert default genres after migrating")
}

// seedGenres is the default genre set for a fresh catalog
var seedGenres = []models.Genre{
	{Name: "Action", Slug: "action"},
	{Name: "Adventure", Slug: "adventure"},
	{Name: "Indie", Slug: "indie"},
	{Name: "Multiplayer", Slug: "multiplayer"},
	{Name: "Platformer", Slug: "platformer"},
	{Name: "Puzzle", Slug: "puzzle"},
	{Name: "RPG", Slug: "rpg"},
	{Name: "Strategy", Slug: "strategy"},
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return err
	}
	fmt.Println("Migrations applied")

	seed, _ := cmd.Flags().GetBool("seed")
	if !seed {
		return nil
	}

	inserted := 0
	for _, genre := range seedGenres {
		result := db.Where("slug = ?", genre.Slug).FirstOrCreate(&genre)
		if result.Error != nil {
			return fmt.Errorf("seeding genre %s: %w", genre.Slug, result.Error)
		}
		if result.RowsAffected > 0 {
			inserted++
		}
	}
	fmt.Printf("Seeded %d genre(s)\n", inserted)

	return nil
}
