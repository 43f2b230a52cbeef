// Package main provides the doccheck CLI for inspecting the documentation
// catalog and probing live reachability of the docs origin.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
	"github.com/zkverify-community/docs-mcp/internal/config"
	"github.com/zkverify-community/docs-mcp/internal/docs"
	"github.com/zkverify-community/docs-mcp/internal/markdown"
	"github.com/zkverify-community/docs-mcp/internal/probe"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "doccheck",
	Short: "zkVerify documentation catalog inspection tool",
	Long:  "CLI tool for inspecting the bundled topic catalog and probing the live documentation origin",
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe live reachability of every topic",
	Long: `Fetches and extracts every topic's remote page with retries and
reports which topics would currently serve live content and which would
fall back to the bundled copy.

Environment variables:
  ZKVERIFY_DOCS_URL   Documentation origin (default: https://docs.zkverify.io/)
  FETCH_TIMEOUT_SECS  Per-request timeout (default: 10)
  MAX_CONTENT_LENGTH  Extracted text cap (default: 4000)`,
	RunE: runProbe,
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List catalog topics with their section outlines",
	RunE:  runTopics,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(topicsCmd)
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadDeps() (*config.Config, *catalog.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	store, err := catalog.New()
	if err != nil {
		return nil, nil, fmt.Errorf("catalog verification failed: %w", err)
	}
	return cfg, store, nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadDeps()
	if err != nil {
		return err
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	fetcher := docs.NewFetcher(cfg.BaseURL, docs.WithTimeout(cfg.FetchTimeout()))
	extractor := docs.NewExtractor(cfg.MaxContentLength)
	prober := probe.New(store, fetcher, extractor, log)

	fmt.Printf("Probing %d topics against %s\n\n", len(store.Topics()), cfg.BaseURL)

	result := prober.ProbeAll(context.Background())

	for _, status := range result.Statuses {
		switch {
		case status.Live:
			fmt.Printf("  live     %-16s %s (%d chars)\n", status.TopicID, status.RemotePath, status.Length)
		case status.StaticOnly:
			fmt.Printf("  static   %-16s (no remote path)\n", status.TopicID)
		default:
			fmt.Printf("  cached   %-16s %s: %s\n", status.TopicID, status.RemotePath, status.Reason)
		}
	}

	fmt.Println()
	fmt.Printf("Live: %d, fallback: %d\n", result.Live, result.Fallback)
	fmt.Printf("Duration: %s\n", result.Duration.Round(time.Millisecond))
	return nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	_, store, err := loadDeps()
	if err != nil {
		return err
	}

	outliner := markdown.NewOutliner()

	for _, topic := range store.Topics() {
		fmt.Printf("%s (%s)\n", topic.ID, topic.Title)
		if topic.RemotePath != "" {
			fmt.Printf("  remote: %s\n", topic.RemotePath)
		} else {
			fmt.Println("  remote: none (static only)")
		}

		sections, err := outliner.Outline([]byte(store.StaticText(topic)))
		if err != nil {
			return fmt.Errorf("outline topic %s: %w", topic.ID, err)
		}
		for _, section := range sections {
			switch section.Level {
			case 1:
				fmt.Printf("  # %s\n", section.Title)
			default:
				fmt.Printf("    ## %s\n", section.Title)
			}
		}
		fmt.Println()
	}
	return nil
}
