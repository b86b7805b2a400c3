package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/assistant"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var statusVerbose bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report generation backend availability",
	Long:  `Check which generation backends are configured and reachable, and print the assistant status as JSON.`,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	creds := llm.CredentialsFromEnv()
	status := assistant.Status{Model: "None"}

	if creds.HasAny() {
		adapter, err := llm.NewAdapterFromCredentials(ctx, creds)
		if err == nil {
			defer func() { _ = adapter.Close() }()
			svc := assistant.NewService(adapter, adapter.ActiveBackendName(), true)
			status = svc.GetStatus()
		} else {
			status.HasAPIKey = true
		}
	}

	if statusVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintStatus(status)
		return nil
	}

	out, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
