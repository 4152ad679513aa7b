package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/jonathan/resume-tailor/internal/ats"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Recalculate ATS scores for all stored applications",
	Long:  "Rescans every stored application and recalculates its ATS score and keywords against the stored job description. Run after a scoring engine change to refresh persisted scores.",
	RunE:  runRescore,
}

var rescoreWorkers int

func init() {
	rescoreCmd.Flags().IntVar(&rescoreWorkers, "workers", 4, "Number of applications to rescore in parallel")
	rootCmd.AddCommand(rescoreCmd)
}

func runRescore(_ *cobra.Command, _ []string) error {
	if rescoreWorkers < 1 {
		return fmt.Errorf("--workers must be at least 1")
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	apps, err := database.ListAllApplications(ctx)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	if len(apps) == 0 {
		fmt.Fprintln(os.Stdout, "No applications to rescore")
		return nil
	}

	var changed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rescoreWorkers)

	for i := range apps {
		app := &apps[i]
		g.Go(func() error {
			result, err := ats.CalculateATSScore(&app.TailoredResume, app.JobDescription)
			if err != nil {
				return fmt.Errorf("failed to rescore application %s: %w", app.ID, err)
			}
			if result.Score == app.ATSScore {
				return nil
			}
			if err := database.UpdateApplicationScore(gctx, app.ID, result.Score, result.Keywords); err != nil {
				return fmt.Errorf("failed to save score for application %s: %w", app.ID, err)
			}
			changed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Rescored %d applications, %d scores changed\n", len(apps), changed.Load())
	return nil
}
