package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/ats"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a structured resume against a job description",
	Long:  "Scores a StructuredResume JSON file against a job description text file with the ATS keyword engine and prints the breakdown and recommendations.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreConfigFile string
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to StructuredResume JSON file")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to config JSON file (flags take precedence)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full ScoreResult as JSON instead of formatted output")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreConfigFile != "" {
		cfg, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if scoreResumeFile == "" {
			scoreResumeFile = cfg.Resume
		}
		if scoreJobFile == "" {
			scoreJobFile = cfg.Job
		}
	}
	if scoreResumeFile == "" {
		return fmt.Errorf("--resume is required (flag or config file)")
	}
	if scoreJobFile == "" {
		return fmt.Errorf("--job is required (flag or config file)")
	}

	resumeContent, err := os.ReadFile(scoreResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", scoreResumeFile, err)
	}

	if err := schemas.ValidateStructuredResume(resumeContent); err != nil {
		return fmt.Errorf("resume failed schema validation: %w", err)
	}

	var resume types.StructuredResume
	if err := json.Unmarshal(resumeContent, &resume); err != nil {
		return fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}

	jobContent, err := os.ReadFile(scoreJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", scoreJobFile, err)
	}

	result, err := ats.CalculateATSScore(&resume, string(jobContent))
	if err != nil {
		return fmt.Errorf("failed to calculate score: %w", err)
	}

	if scoreJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal score result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScore(result)
	printer.PrintKeywords(result)
	printer.PrintRecommendations(result)

	return nil
}
