package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shareprompts/internal/config"
	"shareprompts/internal/db"
	"shareprompts/internal/seeder"
)

var seedFlags struct {
	NoClear bool
	Quiet   bool
	Users   int
	Prompts int
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the share prompts database with sample data",
	Long: `Seed inserts sample users and prompts into the configured database.
Without a subcommand it performs a full reseed, the same as "seed all".`,
	Example: `  seed
  seed all --users=3 --prompts=10
  seed users --no-clear
  seed prompts --quiet`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd.Context(), (*seeder.Seeder).Run)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Clear and reseed both users and prompts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd.Context(), (*seeder.Seeder).Run)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Seed only users, leaving prompts untouched",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd.Context(), (*seeder.Seeder).SeedUsersOnly)
	},
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Seed only prompts, assigning creators from existing users",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd.Context(), (*seeder.Seeder).SeedPromptsOnly)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&seedFlags.NoClear, "no-clear", false, "Keep existing records instead of clearing first")
	rootCmd.PersistentFlags().BoolVar(&seedFlags.Quiet, "quiet", false, "Suppress progress output")
	rootCmd.PersistentFlags().IntVar(&seedFlags.Users, "users", 0, "Number of users to insert (default: whole dataset)")
	rootCmd.PersistentFlags().IntVar(&seedFlags.Prompts, "prompts", 0, "Number of prompts to insert (default: whole dataset)")

	rootCmd.AddCommand(allCmd, usersCmd, promptsCmd)
}

func run(ctx context.Context, mode func(*seeder.Seeder, context.Context) error) {
	opts := seeder.DefaultOptions()
	opts.ClearDatabase = !seedFlags.NoClear
	opts.Verbose = !seedFlags.Quiet
	opts.UserCount = seedFlags.Users
	opts.PromptCount = seedFlags.Prompts

	s := seeder.New(db.NewManager(config.Load()), opts)
	if err := mode(s, ctx); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
