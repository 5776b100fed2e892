package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/render"
	"github.com/noah-isme/eval-report-engine/internal/service"
	"github.com/noah-isme/eval-report-engine/pkg/config"
	"github.com/noah-isme/eval-report-engine/pkg/logger"
	"github.com/noah-isme/eval-report-engine/pkg/pdfsurface"
	"github.com/noah-isme/eval-report-engine/pkg/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "report-engine",
		Short: "Render professor evaluation datasets into paginated PDF reports",
	}
	root.AddCommand(generateCmd(), cleanupCmd())
	return root
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one aggregated evaluation dataset into a PDF",
		RunE:  runGenerate,
	}
	f := cmd.Flags()
	f.StringP("input", "i", "", "Path to the aggregated dataset JSON (required)")
	f.StringP("output-dir", "o", "", "Report output directory (overrides REPORT_OUTPUT_DIR)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func cleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove stored reports older than the retention TTL",
		RunE:  runCleanup,
	}
	cmd.Flags().Duration("ttl", 0, "Override retention TTL (default from REPORT_RESULT_TTL)")
	return cmd
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *service.ReportService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	outputDir := cfg.Reports.OutputDir
	if override, _ := cmd.Flags().GetString("output-dir"); override != "" {
		outputDir = override
	}
	store, err := storage.NewLocalStorage(outputDir)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := service.NewReportService(
		store,
		func() render.Surface { return pdfsurface.New() },
		render.DefaultStyle(),
		service.ReportConfig{
			InstitutionName: cfg.Reports.InstitutionName,
			ResultTTL:       cfg.Reports.ResultTTL,
		},
		log,
	)
	return cfg, log, svc, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	input, _ := cmd.Flags().GetString("input")
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	var ds models.EvaluationDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	result, err := svc.Generate(cmd.Context(), &ds)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s (%d pages)\n", svc.Path(result.RelativePath), result.Pages)
	return nil
}

func runCleanup(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ttl, _ := cmd.Flags().GetDuration("ttl")
	deleted, err := svc.Cleanup(ttl)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d stale reports\n", len(deleted))
	return nil
}
