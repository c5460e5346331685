package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/praxis/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		user, err := s.Users().ByUsername(ctx, username)
		if err != nil {
			return err
		}

		summary, err := s.Progress().Summary(ctx, user.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Progress for %s\n", user.Username)
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Attempts:             %d\n", summary.TotalAttempts)
		fmt.Printf("Completed challenges: %d\n", summary.CompletedChallenges)
		fmt.Printf("Average score:        %.2f\n", summary.AverageScore)
		fmt.Printf("Skills tracked:       %d\n", summary.SkillsTracked)
		fmt.Printf("Average proficiency:  %.2f\n", summary.AverageProficiency)

		weakest, err := s.Skills().Weakest(ctx, user.ID, 3)
		if err != nil {
			return err
		}
		if len(weakest) > 0 {
			fmt.Println("\nWeakest skills:")
			for _, sp := range weakest {
				fmt.Printf("  %-30s %.2f\n", sp.Name, sp.Proficiency)
			}
		}

		strongest, err := s.Skills().Strongest(ctx, user.ID, 3)
		if err != nil {
			return err
		}
		if len(strongest) > 0 {
			fmt.Println("\nStrongest skills:")
			for _, sp := range strongest {
				fmt.Printf("  %-30s %.2f\n", sp.Name, sp.Proficiency)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Username to show statistics for")
}
