package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/matching"
	"github.com/jonathan/interview-coach/internal/observability"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Group a profile's experiences into theme clusters",
	Long:  "Partition a profile's embedded accomplishments into theme clusters with k-means. Clustering runs on stored embeddings only and needs no API key.",
	RunE:  runCluster,
}

var (
	clusterProfileFile string
	clusterProfileID   string
	clusterDatabaseURL string
	clusterConfigFile  string
	clusterCount       int
	clusterJSON        bool
)

func init() {
	clusterCmd.Flags().StringVar(&clusterProfileFile, "profile", "", "Path to parsed profile JSON file")
	clusterCmd.Flags().StringVar(&clusterProfileID, "profile-id", "", "Stored profile ID to load from database")
	clusterCmd.Flags().StringVar(&clusterDatabaseURL, "db-url", "", "Database URL (required with --profile-id)")
	clusterCmd.Flags().StringVar(&clusterConfigFile, "config", "", "Path to JSON config file")
	clusterCmd.Flags().IntVarP(&clusterCount, "clusters", "n", 0, "Number of clusters (0 selects adaptively)")
	clusterCmd.Flags().BoolVar(&clusterJSON, "json", false, "Print clusters as JSON")

	rootCmd.AddCommand(clusterCmd)
}

func runCluster(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(clusterConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	resume, err := loadProfile(ctx, clusterProfileFile, clusterProfileID, clusterDatabaseURL)
	if err != nil {
		return err
	}

	clusters := matching.ClusterByTheme(resume.Embeddings.WorkExperience, matching.ClusterOptions{
		Count:       clusterCount,
		MaxClusters: cfg.MaxClusters,
	})

	if clusterJSON {
		return writeJSON("", clusters)
	}

	observability.NewPrinter(os.Stdout).PrintClusters(clusters)
	return nil
}
