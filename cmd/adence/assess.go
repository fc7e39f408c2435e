package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shaolin23/adence-ai/internal/config"
	"github.com/Shaolin23/adence-ai/internal/engine"
	"github.com/Shaolin23/adence-ai/internal/insights"
	"github.com/Shaolin23/adence-ai/internal/llm"
	"github.com/Shaolin23/adence-ai/internal/logger"
	"github.com/Shaolin23/adence-ai/internal/occupation"
	"github.com/Shaolin23/adence-ai/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess AI vulnerability for a career or business profile",
	Long:  "Runs the full assessment pipeline over a resume or business description file and prints the result as JSON. With --enhanced, qualitative insights are generated through the configured text-generation model; without a reachable model the insights degrade to deterministic local synthesis.",
	RunE:  runAssess,
}

var (
	assessFile       string
	assessSubject    string
	assessLocation   string
	assessExperience string
	assessEnhanced   bool
	assessConfig     string
)

func init() {
	assessCmd.Flags().StringVarP(&assessFile, "file", "f", "", "Path to the profile text file (required)")
	assessCmd.Flags().StringVar(&assessSubject, "subject", "individual", "Subject type: individual or business")
	assessCmd.Flags().StringVar(&assessLocation, "location", "", "Free-text location hint")
	assessCmd.Flags().StringVar(&assessExperience, "experience", "", "Experience level override: entry, mid, or senior")
	assessCmd.Flags().BoolVar(&assessEnhanced, "enhanced", false, "Generate qualitative insights via the text-generation model")
	assessCmd.Flags().StringVar(&assessConfig, "config", "", "Path to an optional config file")

	if err := assessCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(assessConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	content, err := os.ReadFile(assessFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	catalog, err := occupation.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load occupation catalog: %w", err)
	}

	engineCfg := engine.Config{Logger: log}

	if assessEnhanced {
		if cfg.APIKey == "" {
			return reportError(&engine.ErrConfiguration{Missing: "text-generation credential"})
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create text-generation client: %w", err)
		}
		defer func() { _ = client.Close() }()

		augmentor, err := insights.New(client, insights.Options{
			CacheSize:   cfg.Insights.CacheSize,
			CacheTTL:    cfg.Insights.CacheTTL,
			BatchSize:   cfg.Insights.BatchSize,
			BatchWindow: cfg.Insights.BatchWindow,
			Tier:        llm.ModelTier(cfg.Insights.Tier),
		}, log)
		if err != nil {
			return fmt.Errorf("failed to create insight augmentor: %w", err)
		}
		defer augmentor.Close()

		engineCfg.Augmentor = augmentor
	}

	eng := engine.New(catalog, engineCfg)

	input := types.AssessmentInput{
		Content:         string(content),
		SubjectType:     types.SubjectType(assessSubject),
		Location:        assessLocation,
		ExperienceLevel: types.ExperienceLevel(assessExperience),
	}

	var result any
	if assessEnhanced {
		result, err = eng.AssessEnhanced(ctx, input)
	} else {
		result, err = eng.Assess(ctx, input)
	}
	if err != nil {
		return reportError(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

// reportError maps an engine failure to a user-facing message carrying the
// error class and a remediation hint.
func reportError(err error) error {
	class, remediation := engine.Classify(err)
	return fmt.Errorf("%s error: %v (%s)", class, err, remediation)
}
