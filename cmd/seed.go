package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxislabs/praxis/internal/skills"
	"github.com/praxislabs/praxis/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the database and seed the language and skill catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Seed(context.Background()); err != nil {
			return fmt.Errorf("seed catalogs: %w", err)
		}

		fmt.Printf("Database ready at %s\n", dbPath)
		fmt.Printf("Seeded %d languages and %d skills.\n",
			len(skills.DefaultLanguages()), len(skills.DefaultCatalog()))
		return nil
	},
}
