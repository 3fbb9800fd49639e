package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/db"
)

var listProfilesCmd = &cobra.Command{
	Use:   "list-profiles",
	Short: "List stored candidate profiles",
	RunE:  runListProfiles,
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete-profile",
	Short: "Delete a stored candidate profile",
	RunE:  runDeleteProfile,
}

var (
	listProfilesDatabaseURL  string
	deleteProfileDatabaseURL string
	deleteProfileID          string
)

func init() {
	listProfilesCmd.Flags().StringVar(&listProfilesDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	deleteProfileCmd.Flags().StringVar(&deleteProfileDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	deleteProfileCmd.Flags().StringVar(&deleteProfileID, "profile-id", "", "Profile ID to delete (required)")
	_ = deleteProfileCmd.MarkFlagRequired("profile-id")

	rootCmd.AddCommand(listProfilesCmd)
	rootCmd.AddCommand(deleteProfileCmd)
}

func connectFromFlag(ctx context.Context, flagValue string) (*db.DB, error) {
	databaseURL := flagValue
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}
	return db.Connect(ctx, databaseURL)
}

func runListProfiles(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := connectFromFlag(ctx, listProfilesDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	summaries, err := database.ListProfiles(ctx)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No stored profiles.")
		return nil
	}

	for _, s := range summaries {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %s  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.CandidateName)
	}
	return nil
}

func runDeleteProfile(_ *cobra.Command, _ []string) error {
	id, err := uuid.Parse(deleteProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile-id: %w", err)
	}

	ctx := context.Background()
	database, err := connectFromFlag(ctx, deleteProfileDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteProfile(ctx, id); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Deleted profile %s\n", id)
	return nil
}
