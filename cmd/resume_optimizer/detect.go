package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/assistant"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var (
	detectFile    string
	detectVerbose bool
)

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Classify text as a job description",
	Long:  `Run job-description detection on the given text (or a file via --file) and print the result as JSON. Extraction uses the configured generation backends when available.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectFile, "file", "", "Read the text from a file instead of the argument")
	detectCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	var text string
	switch {
	case detectFile != "":
		data, err := os.ReadFile(detectFile)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		return fmt.Errorf("provide text as an argument or via --file")
	}

	ctx := context.Background()

	var gen assistant.Generator
	creds := llm.CredentialsFromEnv()
	if creds.HasAny() {
		adapter, err := llm.NewAdapterFromCredentials(ctx, creds)
		if err == nil {
			defer func() { _ = adapter.Close() }()
			gen = adapter
		}
	}

	detector := assistant.NewDetector(gen)
	result := detector.Detect(ctx, text)

	if detectVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDetectionResult(result)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
