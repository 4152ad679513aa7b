package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch a job posting from a URL",
	Long:  "Fetch a job posting from a URL, extract the posting text from the page, and print the cleaned text with guessed metadata.",
	RunE:  runIngest,
}

var (
	ingestURL        string
	ingestBrowser    bool
	ingestOutFile    string
	ingestConfigFile string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Allow headless browser rendering for JS-heavy pages")
	ingestCmd.Flags().StringVarP(&ingestOutFile, "out", "o", "", "Write the cleaned posting text to this file instead of stdout")
	ingestCmd.Flags().StringVarP(&ingestConfigFile, "config", "c", "", "Path to config JSON file (flags take precedence)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	if ingestConfigFile != "" {
		cfg, err := config.LoadConfig(ingestConfigFile)
		if err != nil {
			return err
		}
		if ingestURL == "" {
			ingestURL = cfg.JobURL
		}
		if cfg.UseBrowser {
			ingestBrowser = true
		}
	}
	if ingestURL == "" {
		return fmt.Errorf("--url is required (flag or config file)")
	}

	opts := ingestion.DefaultOptions()
	opts.UseBrowser = ingestBrowser

	result, err := ingestion.FetchJobPosting(context.Background(), ingestURL, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch job posting: %w", err)
	}

	meta := ingestion.GuessJobMetadata(result.Text, ingestURL)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobMetadata(meta)
	if result.Rendered {
		fmt.Fprintln(os.Stdout, "Page was rendered with a headless browser")
	}

	if ingestOutFile != "" {
		if err := os.WriteFile(ingestOutFile, []byte(result.Text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", ingestOutFile, err)
		}
		fmt.Fprintf(os.Stdout, "Cleaned text: %s\n", ingestOutFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, result.Text)
	return nil
}
